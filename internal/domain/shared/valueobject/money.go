package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	UZS Currency = "UZS" // Uzbek sum (default)
	USD Currency = "USD" // US Dollar
	RUB Currency = "RUB" // Russian ruble
)

// DefaultCurrency is the currency the storefront quotes in.
// A deployment uses exactly one currency; there is no conversion logic.
const DefaultCurrency = UZS

var hundred = decimal.NewFromInt(100)

// Money is a value object representing a whole-unit monetary amount.
// Amounts are integers in the currency's major unit; fractional results are
// rounded half-up before they are stored. All operations return new values.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates Money, rounding the amount half-up to a whole unit
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{
		amount:   amount.Round(0),
		currency: currency,
	}, nil
}

// NewMoneyFromInt creates Money from an int64 amount in the given currency
func NewMoneyFromInt(amount int64, currency Currency) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount), currency)
}

// NewMoneyUZS creates Money in the default currency
func NewMoneyUZS(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount), currency: UZS}
}

// Zero returns a zero-value Money in the specified currency
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Int64 returns the amount as an integer
func (m Money) Int64() int64 {
	return m.amount.IntPart()
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Add returns a new Money with the sum of both amounts
// Returns error if currencies don't match
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot add money with different currencies: %s and %s", m.currency, other.currency)
	}
	return Money{
		amount:   m.amount.Add(other.amount),
		currency: m.currency,
	}, nil
}

// MultiplyByInt returns a new Money multiplied by an integer
func (m Money) MultiplyByInt(factor int64) Money {
	return Money{
		amount:   m.amount.Mul(decimal.NewFromInt(factor)),
		currency: m.currency,
	}
}

// ApplyDiscount returns round(amount * (100 - percent) / 100), rounding half-up.
// Percent must be within [0, 100].
func (m Money) ApplyDiscount(percent int) (Money, error) {
	if percent < 0 || percent > 100 {
		return Money{}, fmt.Errorf("discount percent must be between 0 and 100, got %d", percent)
	}
	if percent == 0 {
		return m, nil
	}
	factor := hundred.Sub(decimal.NewFromInt(int64(percent)))
	return Money{
		amount:   m.amount.Mul(factor).Div(hundred).Round(0),
		currency: m.currency,
	}, nil
}

// String returns a string representation of the Money
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(0), m.currency)
}

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   int64    `json:"amount"`
		Currency Currency `json:"currency"`
	}{
		Amount:   m.amount.IntPart(),
		Currency: m.currency,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
// An empty currency falls back to DefaultCurrency.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v struct {
		Amount   int64    `json:"amount"`
		Currency Currency `json:"currency"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Currency == "" {
		v.Currency = DefaultCurrency
	}
	m.amount = decimal.NewFromInt(v.Amount)
	m.currency = v.Currency
	return nil
}
