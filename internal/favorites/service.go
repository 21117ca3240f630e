package favorites

import (
	"context"
	"time"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/internal/overlay"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/google/uuid"
)

var (
	errProductNotFound  = pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	errFavoriteNotFound = pkgerrors.New(pkgerrors.CodeNotFound, "Favorite not found")
)

// Favorite is the persisted form of a liked product.
type Favorite struct {
	ID        string    `json:"_id"`
	ProductID string    `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

// View is a favorite as returned to the dashboard. ProductID holds the embedded product,
// or the bare id when the product left the catalog.
type View struct {
	ID        string    `json:"_id"`
	ProductID any       `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddInput is the body of POST /favorites.
type AddInput struct {
	ProductID string `json:"productId" validate:"required"`
}

type ServiceParams struct {
	Data      *fixtures.Dataset
	Favorites *overlay.Overlay[Favorite]
	NewID     func() string
	Now       func() time.Time
}

// Service manages the session favorites overlay.
type Service interface {
	List(ctx context.Context) ([]View, error)
	Add(ctx context.Context, input AddInput) (View, error)
	Remove(ctx context.Context, productID string) error
}

type service struct {
	data      *fixtures.Dataset
	favorites *overlay.Overlay[Favorite]
	newID     func() string
	now       func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Data == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "fixture dataset required")
	}
	if params.Favorites == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "favorites overlay required")
	}
	if params.NewID == nil {
		params.NewID = uuid.NewString
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		data:      params.Data,
		favorites: params.Favorites,
		newID:     params.NewID,
		now:       params.Now,
	}, nil
}

func (s *service) List(ctx context.Context) ([]View, error) {
	favs, err := s.favorites.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]View, len(favs))
	for i, f := range favs {
		out[i] = s.view(f)
	}
	return out, nil
}

// Add likes a product. Liking an already liked product returns the existing favorite.
func (s *service) Add(ctx context.Context, input AddInput) (View, error) {
	product, ok := fixtures.Resolve(s.data.Products, input.ProductID)
	if !ok {
		return View{}, errProductNotFound
	}

	var fav Favorite
	_, err := s.favorites.Update(ctx, func(favs []Favorite) ([]Favorite, error) {
		if idx := indexOf(favs, product.ID); idx >= 0 {
			fav = favs[idx]
			return favs, nil
		}
		fav = Favorite{ID: s.newID(), ProductID: product.ID, CreatedAt: s.now().UTC()}
		return append(favs, fav), nil
	})
	if err != nil {
		return View{}, err
	}
	return s.view(fav), nil
}

func (s *service) Remove(ctx context.Context, productID string) error {
	_, err := s.favorites.Update(ctx, func(favs []Favorite) ([]Favorite, error) {
		idx := indexOf(favs, productID)
		if idx < 0 {
			return nil, errFavoriteNotFound
		}
		return append(favs[:idx], favs[idx+1:]...), nil
	})
	return err
}

func (s *service) view(f Favorite) View {
	v := View{ID: f.ID, ProductID: f.ProductID, CreatedAt: f.CreatedAt}
	if p := fixtures.ResolvePtr(s.data.Products, f.ProductID); p != nil {
		v.ProductID = p
	}
	return v
}

func indexOf(favs []Favorite, productID string) int {
	for i := range favs {
		if favs[i].ProductID == productID {
			return i
		}
	}
	return -1
}
