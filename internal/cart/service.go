package cart

import (
	"context"
	"fmt"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/internal/overlay"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/google/uuid"
)

var (
	errVariantNotFound = pkgerrors.New(pkgerrors.CodeNotFound, "Variant not found")
	errItemNotFound    = pkgerrors.New(pkgerrors.CodeNotFound, "Cart item not found")
)

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Data  *fixtures.Dataset
	Items *overlay.Overlay[Item]
	NewID func() string
}

// Service manages the session cart overlay. Lines are keyed by variant id.
type Service interface {
	List(ctx context.Context) ([]Item, error)
	Add(ctx context.Context, input AddInput) (Item, error)
	Update(ctx context.Context, variantID string, input UpdateInput) (Item, error)
	Remove(ctx context.Context, variantID string) error
	Clear(ctx context.Context) error
}

type service struct {
	data  *fixtures.Dataset
	items *overlay.Overlay[Item]
	newID func() string
}

func NewService(params ServiceParams) (Service, error) {
	if params.Data == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "fixture dataset required")
	}
	if params.Items == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "cart overlay required")
	}
	if params.NewID == nil {
		params.NewID = uuid.NewString
	}
	return &service{data: params.Data, items: params.Items, newID: params.NewID}, nil
}

func (s *service) List(ctx context.Context) ([]Item, error) {
	items, err := s.items.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = s.enrich(items[i])
	}
	return items, nil
}

// Add puts a variant in the cart, incrementing the quantity when the line exists.
func (s *service) Add(ctx context.Context, input AddInput) (Item, error) {
	variant, ok := s.data.ResolveVariant(input.VariantID)
	if !ok {
		return Item{}, errVariantNotFound
	}

	var added Item
	_, err := s.items.Update(ctx, func(items []Item) ([]Item, error) {
		idx := indexOf(items, variant.ID)
		if idx < 0 {
			items = append(items, Item{
				ID:   s.newID(),
				Line: fixtures.Line{Variant: fixtures.VariantRef{ID: variant.ID}},
			})
			idx = len(items) - 1
		}
		quantity := items[idx].Quantity + input.Quantity
		if err := checkStock(variant, quantity); err != nil {
			return nil, err
		}
		items[idx].Quantity = quantity
		added = items[idx]
		return items, nil
	})
	if err != nil {
		return Item{}, err
	}
	return s.enrich(added), nil
}

func (s *service) Update(ctx context.Context, variantID string, input UpdateInput) (Item, error) {
	if input.Quantity < 1 {
		return Item{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	var updated Item
	_, err := s.items.Update(ctx, func(items []Item) ([]Item, error) {
		idx := indexOf(items, variantID)
		if idx < 0 {
			return nil, errItemNotFound
		}
		if variant, ok := s.data.ResolveVariant(variantID); ok {
			if err := checkStock(variant, input.Quantity); err != nil {
				return nil, err
			}
		}
		items[idx].Quantity = input.Quantity
		updated = items[idx]
		return items, nil
	})
	if err != nil {
		return Item{}, err
	}
	return s.enrich(updated), nil
}

func (s *service) Remove(ctx context.Context, variantID string) error {
	_, err := s.items.Update(ctx, func(items []Item) ([]Item, error) {
		idx := indexOf(items, variantID)
		if idx < 0 {
			return nil, errItemNotFound
		}
		return append(items[:idx], items[idx+1:]...), nil
	})
	return err
}

func (s *service) Clear(ctx context.Context) error {
	return s.items.Save(ctx, []Item{})
}

func (s *service) enrich(item Item) Item {
	item.Line = s.data.EnrichLine(item.Line)
	return item
}

func checkStock(variant *fixtures.EnrichedVariant, quantity int) error {
	if quantity <= variant.StockQuantity {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeConflict,
		fmt.Sprintf("only %d left in stock", variant.StockQuantity)).
		WithDetails(map[string]int{"requested": quantity, "available": variant.StockQuantity})
}

func indexOf(items []Item, variantID string) int {
	for i := range items {
		if items[i].Variant.ID == variantID {
			return i
		}
	}
	return -1
}
