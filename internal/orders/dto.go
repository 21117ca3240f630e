package orders

import (
	"strings"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
)

var errOrderNotFound = pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")

// Filter narrows order searches. Query is lower-cased and matched against the order id
// and the customer name; statuses match exactly.
type Filter struct {
	Query       string
	OrderStatus string
	PayStatus   string
}

func (f Filter) matches(o fixtures.Order) bool {
	if q := strings.ToLower(f.Query); q != "" {
		byID := strings.Contains(strings.ToLower(o.ID), q)
		byName := o.Customer != nil && o.Customer.Name != "" && strings.Contains(strings.ToLower(o.Customer.Name), q)
		if !byID && !byName {
			return false
		}
	}
	if f.OrderStatus != "" && o.OrderStatus != f.OrderStatus {
		return false
	}
	if f.PayStatus != "" && o.PayStatus != f.PayStatus {
		return false
	}
	return true
}

// UpdateStatusInput is the body of an order status change.
type UpdateStatusInput struct {
	OrderStatus enums.OrderStatus `json:"orderStatus" validate:"omitempty,oneof=pending confirmed shipping delivered cancelled"`
	PayStatus   enums.PayStatus   `json:"payStatus" validate:"omitempty,oneof=unpaid paid refunded"`
}
