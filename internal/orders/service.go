package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/internal/overlay"
	"github.com/angelmondragon/gash-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
)

// Service serves the session's order overlay.
type Service interface {
	List(ctx context.Context) ([]fixtures.Order, error)
	Search(ctx context.Context, filter Filter) ([]fixtures.Order, error)
	Get(ctx context.Context, id string) (fixtures.Order, error)
	UpdateStatus(ctx context.Context, id string, input UpdateStatusInput) (fixtures.Order, error)
	SearchDetails(ctx context.Context, query string) []fixtures.OrderDetail
}

type service struct {
	data   *fixtures.Dataset
	orders *overlay.Overlay[fixtures.Order]
}

// NewService wires the orders dependencies. The overlay must be seeded from the dataset.
func NewService(data *fixtures.Dataset, orders *overlay.Overlay[fixtures.Order]) (Service, error) {
	if data == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "fixture dataset required")
	}
	if orders == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "orders overlay required")
	}
	return &service{data: data, orders: orders}, nil
}

func (s *service) List(ctx context.Context) ([]fixtures.Order, error) {
	return s.orders.Load(ctx)
}

func (s *service) Search(ctx context.Context, filter Filter) ([]fixtures.Order, error) {
	all, err := s.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	return fixtures.Filter(all, filter.matches), nil
}

// Get returns the order with every line item enriched with its variant and product.
func (s *service) Get(ctx context.Context, id string) (fixtures.Order, error) {
	all, err := s.orders.Load(ctx)
	if err != nil {
		return fixtures.Order{}, err
	}
	for _, o := range all {
		if o.ID == id {
			return s.data.EnrichOrder(o), nil
		}
	}
	return fixtures.Order{}, errOrderNotFound
}

// UpdateStatus moves an order to a new fulfilment or payment state. Delivered and
// cancelled orders are terminal.
func (s *service) UpdateStatus(ctx context.Context, id string, input UpdateStatusInput) (fixtures.Order, error) {
	if input.OrderStatus == "" && input.PayStatus == "" {
		return fixtures.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "orderStatus or payStatus is required")
	}

	var updated fixtures.Order
	_, err := s.orders.Update(ctx, func(all []fixtures.Order) ([]fixtures.Order, error) {
		idx := indexOf(all, id)
		if idx < 0 {
			return nil, errOrderNotFound
		}
		current := all[idx]
		status := enums.OrderStatus(current.OrderStatus)
		if status.IsTerminal() && input.OrderStatus != "" && input.OrderStatus != status {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("order is already %s", status)).
				WithDetails(map[string]string{"from": string(status), "to": string(input.OrderStatus)})
		}
		if input.OrderStatus != "" {
			current.OrderStatus = string(input.OrderStatus)
		}
		if input.PayStatus != "" {
			current.PayStatus = string(input.PayStatus)
		}
		all[idx] = current
		updated = current
		return all, nil
	})
	if err != nil {
		return fixtures.Order{}, err
	}
	return s.data.EnrichOrder(updated), nil
}

// SearchDetails searches the fixture order details by id substring.
func (s *service) SearchDetails(_ context.Context, query string) []fixtures.OrderDetail {
	query = strings.ToLower(query)
	details := fixtures.Filter(s.data.OrderDetails.Values(), func(od fixtures.OrderDetail) bool {
		return strings.Contains(strings.ToLower(od.ID), query)
	})
	for i := range details {
		details[i] = s.data.EnrichOrderDetail(details[i])
	}
	return details
}

func indexOf(all []fixtures.Order, id string) int {
	for i := range all {
		if all[i].ID == id {
			return i
		}
	}
	return -1
}
