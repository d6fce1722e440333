package pricing

import (
	"testing"

	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	ru := FormatAmount(valueobject.NewMoneyUZS(187000), i18n.LocaleRU)
	assert.Contains(t, ru, "187")
	assert.Contains(t, ru, "000")
	assert.Contains(t, ru, "сум")

	uz := FormatAmount(valueobject.NewMoneyUZS(187000), i18n.LocaleUZ)
	assert.Contains(t, uz, "so'm")

	usd, _ := valueobject.NewMoneyFromInt(12, valueobject.USD)
	assert.Contains(t, FormatAmount(usd, i18n.LocaleRU), "USD")
}

func TestFormatQuantity(t *testing.T) {
	assert.Contains(t, FormatQuantity(5, UnitKilogram, i18n.LocaleRU), "5")
	assert.Contains(t, FormatQuantity(5, UnitKilogram, i18n.LocaleRU), i18n.Message(i18n.MsgWeightUnit, i18n.LocaleRU))
	assert.Contains(t, FormatQuantity(2, UnitPiece, i18n.LocaleUZ), i18n.Message(i18n.MsgPieceUnit, i18n.LocaleUZ))
}
