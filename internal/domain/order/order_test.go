package order

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerInfo_Validate(t *testing.T) {
	tests := []struct {
		name     string
		customer CustomerInfo
		wantErr  bool
	}{
		{"valid", CustomerInfo{Name: "Aziz", Phone: "+998901234567"}, false},
		{"with optional fields", CustomerInfo{Name: "Aziz", Phone: "901234567", Address: "Tashkent", Notes: "after 18:00"}, false},
		{"missing name", CustomerInfo{Phone: "+998901234567"}, true},
		{"blank name", CustomerInfo{Name: "   ", Phone: "+998901234567"}, true},
		{"missing phone", CustomerInfo{Name: "Aziz"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.customer.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, shared.ErrInvalidCustomer))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerInfo_Normalized(t *testing.T) {
	c := CustomerInfo{Name: " Aziz ", Phone: " 90 ", Address: "\tChilonzor\n", Notes: ""}.Normalized()
	assert.Equal(t, CustomerInfo{Name: "Aziz", Phone: "90", Address: "Chilonzor"}, c)
}

func TestPayload_WireFormat(t *testing.T) {
	p := Payload{
		Items: []LineItem{
			{Name: "Кашпо классическое 10 л", Quantity: 1, Variant: "Серый", Size: "10 л", Style: "Классический"},
			{Name: "Ротанг", Quantity: 5},
		},
		CustomerInfo: CustomerInfo{Name: "Aziz", Phone: "+998901234567"},
		Total:        "367 000 сум",
		Language:     i18n.LocaleRU,
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	assert.Equal(t, "ru", wire["language"])
	assert.Equal(t, "367 000 сум", wire["total"])

	customer := wire["customerInfo"].(map[string]any)
	assert.Equal(t, "Aziz", customer["name"])
	assert.NotContains(t, customer, "address")
	assert.NotContains(t, customer, "notes")

	items := wire["items"].([]any)
	require.Len(t, items, 2)
	second := items[1].(map[string]any)
	assert.Equal(t, float64(5), second["quantity"])
	assert.NotContains(t, second, "variant")
	assert.NotContains(t, second, "size")
	assert.NotContains(t, second, "style")
}

func TestPayload_ContactWireFormat(t *testing.T) {
	p := Payload{
		Items:        []LineItem{},
		CustomerInfo: CustomerInfo{Name: "Aziz", Phone: "+998901234567", Notes: "question"},
		Language:     i18n.LocaleUZ,
	}
	assert.True(t, p.IsContact())

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"customerInfo":{"name":"Aziz","phone":"+998901234567","notes":"question"},"language":"uz"}`, string(data))
}

func TestPayload_CloneAndFingerprint(t *testing.T) {
	p := Payload{
		Items:        []LineItem{{Name: "A", Quantity: 1}},
		CustomerInfo: CustomerInfo{Name: "Aziz", Phone: "1"},
		Language:     i18n.LocaleRU,
	}
	c := p.Clone()
	assert.Equal(t, p.Fingerprint(), c.Fingerprint())

	c.Items[0].Quantity = 2
	assert.Equal(t, int64(1), p.Items[0].Quantity)
	assert.NotEqual(t, p.Fingerprint(), c.Fingerprint())
}

func TestGatewayFunc(t *testing.T) {
	var got *Payload
	g := GatewayFunc(func(ctx context.Context, p *Payload) bool {
		got = p
		return true
	})
	p := &Payload{}
	assert.True(t, g.Deliver(context.Background(), p))
	assert.Same(t, p, got)
}
