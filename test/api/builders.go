package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// DefaultBookID is the catalog entry orders are placed against unless overridden.
const DefaultBookID = "1"

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

// OrderPayloadBuilder builds order payloads for testing.
type OrderPayloadBuilder struct {
	payload OrderRequest
}

// NewOrderPayload creates a new order payload builder with a unique customer name.
func NewOrderPayload() *OrderPayloadBuilder {
	return &OrderPayloadBuilder{
		payload: OrderRequest{
			BookID:       DefaultBookID,
			CustomerName: generateRandomName("testautomation"),
		},
	}
}

// WithBookID sets the ordered book.
func (b *OrderPayloadBuilder) WithBookID(bookID string) *OrderPayloadBuilder {
	b.payload.BookID = BookRef(bookID)
	return b
}

// WithCustomerName sets the customer name.
func (b *OrderPayloadBuilder) WithCustomerName(name string) *OrderPayloadBuilder {
	b.payload.CustomerName = name
	return b
}

// Build returns the completed order payload.
func (b *OrderPayloadBuilder) Build() OrderRequest {
	return b.payload
}
