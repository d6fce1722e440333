package pricing

import (
	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/domain/shared/valueobject"
	"golang.org/x/text/message"
)

// FormatAmount renders money with locale digit grouping and the localized currency suffix,
// e.g. "187 000 сум" / "187 000 so'm".
func FormatAmount(m valueobject.Money, locale i18n.Locale) string {
	p := message.NewPrinter(locale.Tag())
	return p.Sprintf("%d %s", m.Int64(), currencySuffix(m.Currency(), locale))
}

// FormatQuantity renders a quantity with its localized unit, e.g. "5 кг"
func FormatQuantity(quantity int64, unit string, locale i18n.Locale) string {
	key := i18n.MsgPieceUnit
	if unit == UnitKilogram {
		key = i18n.MsgWeightUnit
	}
	p := message.NewPrinter(locale.Tag())
	return p.Sprintf("%d %s", quantity, i18n.Message(key, locale))
}

func currencySuffix(c valueobject.Currency, locale i18n.Locale) string {
	if c == valueobject.UZS {
		return i18n.Message(i18n.MsgCurrencySuffix, locale)
	}
	return string(c)
}
