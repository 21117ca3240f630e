package enums

import "fmt"

// OrderStatus is the fulfilment state the dashboard filters orders by.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusShipping,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValid reports whether the value matches the canonical order status enum.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// ParseOrderStatus converts the raw string to OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}

// PayStatus tracks payment collection for an order.
type PayStatus string

const (
	PayStatusUnpaid   PayStatus = "unpaid"
	PayStatusPaid     PayStatus = "paid"
	PayStatusRefunded PayStatus = "refunded"
)

var validPayStatuses = []PayStatus{PayStatusUnpaid, PayStatusPaid, PayStatusRefunded}

func (s PayStatus) IsValid() bool {
	for _, candidate := range validPayStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}
