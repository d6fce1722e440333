package i18n

// Message keys for user-facing storefront messages
const (
	MsgOrderDelivered     = "order.delivered"
	MsgOrderFailed        = "order.failed"
	MsgContactDelivered   = "contact.delivered"
	MsgContactFailed      = "contact.failed"
	MsgProductNotFound    = "error.product_not_found"
	MsgVariantNotFound    = "error.variant_not_found"
	MsgUnknownProduct     = "error.unknown_product"
	MsgInvalidQuantity    = "error.invalid_quantity"
	MsgBelowMinimumOrder  = "error.below_minimum_order"
	MsgInvalidCustomer    = "error.invalid_customer"
	MsgInvalidRequest     = "error.invalid_request"
	MsgInvalidSession     = "error.invalid_session"
	MsgEmptyCart          = "error.empty_cart"
	MsgRequestTooLarge    = "error.request_too_large"
	MsgNotFound           = "error.not_found"
	MsgTooManyRequests    = "error.too_many_requests"
	MsgInternal           = "error.internal"
	MsgCurrencySuffix     = "currency.suffix"
	MsgWeightUnit         = "unit.kg"
	MsgPieceUnit          = "unit.pcs"
	MsgMinimumQuoteNotice = "quote.minimum_notice"
)

var messages = map[string]LocalizedText{
	MsgOrderDelivered:     Text("Спасибо! Ваш заказ отправлен, мы скоро свяжемся с вами.", "Rahmat! Buyurtmangiz yuborildi, tez orada siz bilan bog'lanamiz."),
	MsgOrderFailed:        Text("Не удалось отправить заказ. Попробуйте ещё раз или позвоните нам.", "Buyurtmani yuborib bo'lmadi. Qayta urinib ko'ring yoki bizga qo'ng'iroq qiling."),
	MsgContactDelivered:   Text("Сообщение отправлено. Мы скоро ответим.", "Xabar yuborildi. Tez orada javob beramiz."),
	MsgContactFailed:      Text("Не удалось отправить сообщение. Попробуйте позже.", "Xabarni yuborib bo'lmadi. Keyinroq urinib ko'ring."),
	MsgProductNotFound:    Text("Товар не найден.", "Mahsulot topilmadi."),
	MsgVariantNotFound:    Text("Цвет недоступен.", "Rang mavjud emas."),
	MsgUnknownProduct:     Text("В заказе есть недоступный товар.", "Buyurtmada mavjud bo'lmagan mahsulot bor."),
	MsgInvalidQuantity:    Text("Количество должно быть больше нуля.", "Miqdor noldan katta bo'lishi kerak."),
	MsgBelowMinimumOrder:  Text("Количество меньше минимального заказа.", "Miqdor minimal buyurtmadan kam."),
	MsgInvalidCustomer:    Text("Укажите имя и номер телефона.", "Ism va telefon raqamini kiriting."),
	MsgInvalidRequest:     Text("Некорректный запрос.", "Noto'g'ri so'rov."),
	MsgInvalidSession:     Text("Корзина не найдена. Обновите страницу.", "Savat topilmadi. Sahifani yangilang."),
	MsgEmptyCart:          Text("Корзина пуста.", "Savat bo'sh."),
	MsgRequestTooLarge:    Text("Слишком большой запрос.", "So'rov juda katta."),
	MsgNotFound:           Text("Страница не найдена.", "Sahifa topilmadi."),
	MsgTooManyRequests:    Text("Слишком много запросов. Подождите немного.", "So'rovlar juda ko'p. Biroz kuting."),
	MsgInternal:           Text("Что-то пошло не так. Попробуйте позже.", "Nimadir xato ketdi. Keyinroq urinib ko'ring."),
	MsgCurrencySuffix:     Text("сум", "so'm"),
	MsgWeightUnit:         Text("кг", "kg"),
	MsgPieceUnit:          Text("шт", "dona"),
	MsgMinimumQuoteNotice: Text("Цена указана за минимальный заказ.", "Narx minimal buyurtma uchun ko'rsatilgan."),
}

// Message returns the localized message for key.
// An unknown key returns the key itself so a missing entry is visible
// instead of rendering blank.
func Message(key string, locale Locale) string {
	text, ok := messages[key]
	if !ok {
		return key
	}
	if v := text.In(locale); v != "" {
		return v
	}
	return key
}
