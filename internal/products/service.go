package products

import (
	"context"
	"strings"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
)

// Service serves the normalized product catalog and its variants.
type Service interface {
	List(ctx context.Context) []fixtures.Product
	Search(ctx context.Context, query string) []fixtures.Product
	Get(ctx context.Context, id string) (fixtures.Product, error)
	Variants(ctx context.Context, productID string) []fixtures.Variant
	Variant(ctx context.Context, id string) (fixtures.Variant, error)
}

type service struct {
	data *fixtures.Dataset
}

func NewService(data *fixtures.Dataset) (Service, error) {
	if data == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "fixture dataset required")
	}
	return &service{data: data}, nil
}

func (s *service) List(context.Context) []fixtures.Product {
	return s.data.Products.Values()
}

// Search matches a lower-cased substring of the product name.
func (s *service) Search(_ context.Context, query string) []fixtures.Product {
	query = strings.ToLower(query)
	return fixtures.Filter(s.data.Products.Values(), func(p fixtures.Product) bool {
		return strings.Contains(strings.ToLower(p.ProductName), query)
	})
}

func (s *service) Get(_ context.Context, id string) (fixtures.Product, error) {
	p, ok := s.data.Products.Get(id)
	if !ok {
		return fixtures.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}
	return p, nil
}

// Variants lists every variant, or only those of productID when it is set.
func (s *service) Variants(_ context.Context, productID string) []fixtures.Variant {
	all := s.data.Variants.Values()
	if productID == "" {
		return all
	}
	return fixtures.Filter(all, func(v fixtures.Variant) bool {
		return v.ProductID == productID
	})
}

func (s *service) Variant(_ context.Context, id string) (fixtures.Variant, error) {
	v, ok := s.data.Variants.Get(id)
	if !ok {
		return fixtures.Variant{}, pkgerrors.New(pkgerrors.CodeNotFound, "Variant not found")
	}
	return v, nil
}
