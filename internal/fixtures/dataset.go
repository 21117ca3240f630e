package fixtures

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"time"
)

//go:embed data/*.json
var embedded embed.FS

// File names of the Mongo exports the dataset is built from.
const (
	FileCategories   = "gash_categories.json"
	FileColors       = "gash_productcolors.json"
	FileSizes        = "gash_productsizes.json"
	FileImages       = "gash_productimages.json"
	FileVariants     = "gash_Productvariants.json"
	FileProducts     = "gash_products.json"
	FileAccounts     = "gash_accounts.json"
	FileOrders       = "gash_orders.json"
	FileOrderDetails = "gash_orderdetails.json"
	FileVouchers     = "gash_vouchers.json"
)

// Demo operator identity, constant for every environment.
const (
	OperatorID         = "admin-123"
	unknownProductName = "Unknown Product"
)

// Dataset is the normalized, cross-referenced fixture graph. It is built once and
// never mutated afterwards; callers receive copies from its collections.
type Dataset struct {
	Categories   *Collection[Category]
	Colors       *Collection[Color]
	Sizes        *Collection[Size]
	Images       *Collection[Image]
	Variants     *Collection[Variant]
	Products     *Collection[Product]
	Accounts     *Collection[Account]
	Orders       *Collection[Order]
	OrderDetails *Collection[OrderDetail]
	Vouchers     *Collection[Voucher]
	Feedbacks    *Collection[Feedback]
	Operator     Account
}

// Options tune dataset construction.
type Options struct {
	// Now stamps synthetic records. Defaults to time.Now.
	Now func() time.Time
}

// Embedded returns the fixture files compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("fixtures: embedded data missing: %v", err))
	}
	return sub
}

// LoadEmbedded builds the dataset from the compiled-in fixtures.
func LoadEmbedded(opts Options) (*Dataset, error) {
	return Load(Embedded(), opts)
}

// Load reads every fixture file from fsys and runs the normalization pass. Missing
// cross references never fail the pass: they resolve to nil or are dropped from lists.
func Load(fsys fs.FS, opts Options) (*Dataset, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	now := opts.Now().UTC()

	var (
		rawCategories   []rawCategory
		rawColors       []rawColor
		rawSizes        []rawSize
		rawImages       []rawImage
		rawVariants     []rawVariant
		rawProducts     []rawProduct
		rawAccounts     []rawAccount
		rawOrders       []rawOrder
		rawOrderDetails []rawOrderDetail
		rawVouchers     []rawVoucher
	)
	if err := firstErr(
		readFixture(fsys, FileCategories, &rawCategories),
		readFixture(fsys, FileColors, &rawColors),
		readFixture(fsys, FileSizes, &rawSizes),
		readFixture(fsys, FileImages, &rawImages),
		readFixture(fsys, FileVariants, &rawVariants),
		readFixture(fsys, FileProducts, &rawProducts),
		readFixture(fsys, FileAccounts, &rawAccounts),
		readFixture(fsys, FileOrders, &rawOrders),
		readFixture(fsys, FileOrderDetails, &rawOrderDetails),
		readFixture(fsys, FileVouchers, &rawVouchers),
	); err != nil {
		return nil, err
	}

	d := &Dataset{Operator: operatorAccount(now)}

	d.Categories = BuildCollection(AliasFields(mapSlice(rawCategories, func(r rawCategory) Category {
		return Category{ID: NormalizeID(r.ID), CategoryName: r.CategoryName, CreatedAt: NormalizeTime(r.CreatedAt)}
	})), func(c *Category) any { return c.ID }, func(c *Category, id string) { c.ID = id })

	d.Colors = BuildCollection(AliasFields(mapSlice(rawColors, func(r rawColor) Color {
		return Color{ID: NormalizeID(r.ID), ProductColorName: r.ProductColorName}
	})), func(c *Color) any { return c.ID }, func(c *Color, id string) { c.ID = id })

	d.Sizes = BuildCollection(AliasFields(mapSlice(rawSizes, func(r rawSize) Size {
		return Size{ID: NormalizeID(r.ID), ProductSizeName: r.ProductSizeName}
	})), func(s *Size) any { return s.ID }, func(s *Size, id string) { s.ID = id })

	d.Images = BuildCollection(mapSlice(rawImages, func(r rawImage) Image {
		return Image{ID: NormalizeID(r.ID), ProductID: NormalizeID(r.ProductID), ImageURL: r.ImageURL, IsMain: r.IsMain}
	}), func(i *Image) any { return i.ID }, func(i *Image, id string) { i.ID = id })

	d.Variants = BuildCollection(mapSlice(rawVariants, func(r rawVariant) Variant {
		return Variant{
			ID:            NormalizeID(r.ID),
			ProductID:     NormalizeID(r.ProductID),
			Color:         ResolvePtr(d.Colors, r.ProductColorID),
			Size:          ResolvePtr(d.Sizes, r.ProductSizeID),
			VariantPrice:  normalizeDecimal(r.VariantPrice),
			StockQuantity: normalizeInt(r.StockQuantity),
			VariantImage:  r.VariantImage,
			VariantStatus: r.VariantStatus,
		}
	}), func(v *Variant) any { return v.ID }, func(v *Variant, id string) { v.ID = id })

	d.Products = BuildCollection(AliasFields(mapSlice(rawProducts, func(r rawProduct) Product {
		return Product{
			ID:            NormalizeID(r.ID),
			ProductName:   r.ProductName,
			Description:   r.Description,
			ProductStatus: r.ProductStatus,
			Category:      ResolvePtr(d.Categories, r.CategoryID),
			Images:        ResolveAll(d.Images, r.ProductImageIDs),
			Variants:      ResolveAll(d.Variants, r.ProductVariantIDs),
			CreatedAt:     NormalizeTime(r.CreatedAt),
		}
	})), func(p *Product) any { return p.ID }, func(p *Product, id string) { p.ID = id })

	d.Accounts = BuildCollection(mapSlice(rawAccounts, func(r rawAccount) Account {
		return Account{
			ID:            NormalizeID(r.ID),
			Username:      r.Username,
			Name:          r.Name,
			Email:         r.Email,
			Phone:         r.Phone,
			Address:       r.Address,
			Role:          r.Role,
			AccountStatus: r.AccountStatus,
			Image:         r.Image,
			Gender:        r.Gender,
			Dob:           normalizeDateString(r.Dob),
			CreatedAt:     NormalizeTime(r.CreatedAt),
		}
	}), func(a *Account) any { return a.ID }, func(a *Account, id string) { a.ID = id })

	d.Vouchers = BuildCollection(mapSlice(rawVouchers, func(r rawVoucher) Voucher {
		return Voucher{
			ID:            NormalizeID(r.ID),
			Code:          r.Code,
			DiscountType:  r.DiscountType,
			DiscountValue: normalizeDecimal(r.DiscountValue),
			MinOrderValue: normalizeDecimal(r.MinOrderValue),
			MaxDiscount:   normalizeDecimal(r.MaxDiscount),
			StartDate:     NormalizeTime(r.StartDate),
			EndDate:       NormalizeTime(r.EndDate),
			UsageLimit:    normalizeInt(r.UsageLimit),
			UsedCount:     normalizeInt(r.UsedCount),
			IsDeleted:     r.IsDeleted,
		}
	}), func(v *Voucher) any { return v.ID }, func(v *Voucher, id string) { v.ID = id })

	d.OrderDetails = BuildCollection(mapSlice(rawOrderDetails, func(r rawOrderDetail) OrderDetail {
		return OrderDetail{
			ID:      NormalizeID(r.ID),
			OrderID: NormalizeID(r.OrderID),
			Line: Line{
				Variant:      VariantRef{ID: NormalizeID(r.VariantID)},
				ProductName:  r.ProductName,
				ProductPrice: normalizeDecimal(r.ProductPrice),
			},
			Quantity: normalizeInt(r.Quantity),
		}
	}), func(od *OrderDetail) any { return od.ID }, func(od *OrderDetail, id string) { od.ID = id })

	detailsByOrder := map[string][]OrderDetail{}
	for _, od := range d.OrderDetails.Values() {
		detailsByOrder[od.OrderID] = append(detailsByOrder[od.OrderID], od)
	}

	d.Orders = BuildCollection(mapSlice(rawOrders, func(r rawOrder) Order {
		id := NormalizeID(r.ID)
		details := detailsByOrder[id]
		if details == nil {
			details = []OrderDetail{}
		}
		return Order{
			ID:             id,
			AccountID:      NormalizeID(r.AccountID),
			Customer:       r.Customer,
			OrderStatus:    r.OrderStatus,
			PayStatus:      r.PayStatus,
			PaymentMethod:  r.PaymentMethod,
			TotalPrice:     normalizeDecimal(r.TotalPrice),
			DiscountAmount: normalizeDecimal(r.DiscountAmount),
			FinalPrice:     normalizeDecimal(r.FinalPrice),
			VoucherID:      NormalizeID(r.VoucherID),
			OrderDate:      NormalizeTime(r.OrderDate),
			OrderDetails:   details,
		}
	}), func(o *Order) any { return o.ID }, func(o *Order, id string) { o.ID = id })

	d.Feedbacks = BuildCollection(syntheticFeedback(d.Products.Keys(), now),
		func(f *Feedback) any { return f.ID }, func(f *Feedback, id string) { f.ID = id })

	return d, nil
}

// FindAccount looks up a fixture account, falling back to the operator identity.
func (d *Dataset) FindAccount(id string) (Account, bool) {
	if acc, ok := d.Accounts.Get(id); ok {
		return acc, true
	}
	if id == d.Operator.ID {
		return d.Operator, true
	}
	return Account{}, false
}

func operatorAccount(now time.Time) Account {
	return Account{
		ID:        OperatorID,
		Username:  "admin",
		Name:      "Administrator",
		Email:     "admin@gash.com",
		Phone:     "0123456789",
		Address:   "GASH Headquarters",
		Role:      "admin",
		Image:     "https://cdn-icons-png.flaticon.com/512/3135/3135715.png",
		Gender:    "male",
		Dob:       "1990-01-01",
		CreatedAt: &now,
	}
}

func syntheticFeedback(productIDs []string, now time.Time) []Feedback {
	seeds := []Feedback{
		{ID: "f1", UserID: "u1", Content: "Great product!", Rating: 5},
		{ID: "f2", UserID: "u2", Content: "Good quality.", Rating: 4},
	}
	out := make([]Feedback, 0, len(seeds))
	for i, fb := range seeds {
		if i >= len(productIDs) {
			break
		}
		fb.ProductID = productIDs[i]
		fb.CreatedAt = now
		out = append(out, fb)
	}
	return out
}

func normalizeDateString(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	if t := NormalizeTime(value); t != nil {
		return t.Format("2006-01-02")
	}
	return ""
}

func readFixture[T any](fsys fs.FS, name string, dest *[]T) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading fixture %s: %w", name, err)
	}
	recs, err := decodeRecords[T](name, data)
	if err != nil {
		return err
	}
	*dest = recs
	return nil
}

func mapSlice[S, T any](in []S, fn func(S) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
