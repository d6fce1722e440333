package order

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/kashpo/storefront/internal/domain/i18n"
)

// LineItem is one flattened, localized order line
type LineItem struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Variant  string `json:"variant,omitempty"`
	Size     string `json:"size,omitempty"`
	Style    string `json:"style,omitempty"`
}

// Payload is the order or contact submission as sent over the wire.
// It is a value snapshot: it holds only strings and numbers, never references
// to catalog entities.
type Payload struct {
	Items        []LineItem   `json:"items"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Total        string       `json:"total,omitempty"`
	Language     i18n.Locale  `json:"language"`
}

// IsContact returns true for a contact-form payload (no items)
func (p *Payload) IsContact() bool {
	return len(p.Items) == 0
}

// Clone returns a deep copy
func (p *Payload) Clone() Payload {
	out := *p
	out.Items = make([]LineItem, len(p.Items))
	copy(out.Items, p.Items)
	return out
}

// Fingerprint identifies the logical order: equal payloads share a fingerprint
func (p *Payload) Fingerprint() string {
	data, err := json.Marshal(p)
	if err != nil {
		// Payload holds only strings and integers
		panic(err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
