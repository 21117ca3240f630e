package cart

import "github.com/angelmondragon/gash-demo/internal/fixtures"

// Item is one cart line. Only the variant id is persisted; the variant chain, product
// name and price are filled in on read.
type Item struct {
	ID string `json:"_id"`
	fixtures.Line
	Quantity int `json:"quantity"`
}

// AddInput is the body of POST /cart.
type AddInput struct {
	VariantID string `json:"variantId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// UpdateInput is the body of PUT /cart/{variantId}.
type UpdateInput struct {
	Quantity int `json:"quantity" validate:"min=1"`
}
