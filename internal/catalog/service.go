package catalog

import (
	"context"
	"strings"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
)

// Specification kinds accepted by SearchSpecifications.
const (
	KindColor = "color"
	KindSize  = "size"
)

// Service serves the read-only reference data: categories, specifications, vouchers
// and feedback.
type Service interface {
	Categories(ctx context.Context) []fixtures.Category
	Category(ctx context.Context, id string) (fixtures.Category, error)
	SearchCategories(ctx context.Context, query string) []fixtures.Category

	Colors(ctx context.Context) []fixtures.Color
	Color(ctx context.Context, id string) (fixtures.Color, error)
	Sizes(ctx context.Context) []fixtures.Size
	Size(ctx context.Context, id string) (fixtures.Size, error)
	SearchSpecifications(ctx context.Context, query, kind string) []any

	Vouchers(ctx context.Context) []fixtures.Voucher
	Voucher(ctx context.Context, id string) (fixtures.Voucher, error)

	Feedbacks(ctx context.Context) []fixtures.Feedback
	Feedback(ctx context.Context, id string) (fixtures.Feedback, error)
	FeedbackForProduct(ctx context.Context, productID string) []fixtures.Feedback
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

func (s *service) Categories(context.Context) []fixtures.Category {
	return s.data.Categories.Values()
}

func (s *service) Category(_ context.Context, id string) (fixtures.Category, error) {
	return lookup(s.data.Categories, id, "Category not found")
}

func (s *service) SearchCategories(_ context.Context, query string) []fixtures.Category {
	query = strings.ToLower(query)
	return fixtures.Filter(s.data.Categories.Values(), func(c fixtures.Category) bool {
		return strings.Contains(strings.ToLower(c.CategoryName), query)
	})
}

func (s *service) Colors(context.Context) []fixtures.Color {
	return s.data.Colors.Values()
}

func (s *service) Color(_ context.Context, id string) (fixtures.Color, error) {
	return lookup(s.data.Colors, id, "Color not found")
}

func (s *service) Sizes(context.Context) []fixtures.Size {
	return s.data.Sizes.Values()
}

func (s *service) Size(_ context.Context, id string) (fixtures.Size, error) {
	return lookup(s.data.Sizes, id, "Size not found")
}

// SearchSpecifications matches colors and sizes by name. An empty or unknown kind
// searches both, colors first.
func (s *service) SearchSpecifications(_ context.Context, query, kind string) []any {
	query = strings.ToLower(query)
	out := []any{}
	if kind != KindSize {
		for _, c := range s.data.Colors.Values() {
			if strings.Contains(strings.ToLower(c.ProductColorName), query) {
				out = append(out, c)
			}
		}
	}
	if kind != KindColor {
		for _, sz := range s.data.Sizes.Values() {
			if strings.Contains(strings.ToLower(sz.ProductSizeName), query) {
				out = append(out, sz)
			}
		}
	}
	return out
}

func (s *service) Vouchers(context.Context) []fixtures.Voucher {
	return s.data.Vouchers.Values()
}

func (s *service) Voucher(_ context.Context, id string) (fixtures.Voucher, error) {
	return lookup(s.data.Vouchers, id, "Voucher not found")
}

func (s *service) Feedbacks(context.Context) []fixtures.Feedback {
	return s.data.Feedbacks.Values()
}

func (s *service) Feedback(_ context.Context, id string) (fixtures.Feedback, error) {
	return lookup(s.data.Feedbacks, id, "Feedback not found")
}

func (s *service) FeedbackForProduct(_ context.Context, productID string) []fixtures.Feedback {
	return fixtures.Filter(s.data.Feedbacks.Values(), func(f fixtures.Feedback) bool {
		return f.ProductID == productID
	})
}

func lookup[T any](c *fixtures.Collection[T], id, notFound string) (T, error) {
	rec, ok := c.Get(id)
	if !ok {
		return rec, pkgerrors.New(pkgerrors.CodeNotFound, notFound)
	}
	return rec, nil
}
