package fixtures

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The dashboard does arithmetic on prices; emit them as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Category struct {
	ID           string     `json:"_id"`
	CategoryName string     `json:"categoryName"`
	CatName      string     `json:"cat_name"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

type Color struct {
	ID               string `json:"_id"`
	ProductColorName string `json:"productColorName"`
	ColorName        string `json:"color_name"`
}

type Size struct {
	ID              string `json:"_id"`
	ProductSizeName string `json:"productSizeName"`
	SizeName        string `json:"size_name"`
}

type Image struct {
	ID        string `json:"_id"`
	ProductID string `json:"productId,omitempty"`
	ImageURL  string `json:"imageUrl"`
	IsMain    bool   `json:"isMain"`
}

// Variant embeds its color and size after normalization. ProductID stays a
// back-reference; see EnrichedVariant for the product-embedded form.
type Variant struct {
	ID            string          `json:"_id"`
	ProductID     string          `json:"productId"`
	Color         *Color          `json:"productColorId"`
	Size          *Size           `json:"productSizeId"`
	VariantPrice  decimal.Decimal `json:"variantPrice"`
	StockQuantity int             `json:"stockQuantity"`
	VariantImage  string          `json:"variantImage,omitempty"`
	VariantStatus string          `json:"variantStatus,omitempty"`
}

type Product struct {
	ID            string     `json:"_id"`
	ProductName   string     `json:"productName"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	ProductStatus string     `json:"productStatus,omitempty"`
	Category      *Category  `json:"categoryId"`
	Images        []Image    `json:"productImageIds"`
	Variants      []Variant  `json:"productVariantIds"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

type Account struct {
	ID            string     `json:"_id"`
	Username      string     `json:"username"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	Address       string     `json:"address,omitempty"`
	Role          string     `json:"role"`
	AccountStatus string     `json:"accountStatus,omitempty"`
	Image         string     `json:"image,omitempty"`
	Gender        string     `json:"gender,omitempty"`
	Dob           string     `json:"dob,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

type Customer struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email,omitempty" bson:"email"`
	Phone   string `json:"phone,omitempty" bson:"phone"`
	Address string `json:"address,omitempty" bson:"address"`
}

type Order struct {
	ID             string          `json:"_id"`
	AccountID      string          `json:"accountId,omitempty"`
	Customer       *Customer       `json:"customer,omitempty"`
	OrderStatus    string          `json:"orderStatus"`
	PayStatus      string          `json:"payStatus"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	FinalPrice     decimal.Decimal `json:"finalPrice"`
	VoucherID      string          `json:"voucherId,omitempty"`
	OrderDate      *time.Time      `json:"orderDate,omitempty"`
	OrderDetails   []OrderDetail   `json:"orderDetails"`
}

// Line is the enrichable part shared by order details and cart items.
type Line struct {
	Variant      VariantRef      `json:"variantId"`
	ProductName  string          `json:"productName,omitempty"`
	ProductPrice decimal.Decimal `json:"productPrice"`
}

type OrderDetail struct {
	ID      string `json:"_id"`
	OrderID string `json:"orderId,omitempty"`
	Line
	Quantity int `json:"quantity"`
}

type Voucher struct {
	ID            string          `json:"_id"`
	Code          string          `json:"code"`
	DiscountType  string          `json:"discountType,omitempty"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	MinOrderValue decimal.Decimal `json:"minOrderValue"`
	MaxDiscount   decimal.Decimal `json:"maxDiscount"`
	StartDate     *time.Time      `json:"startDate,omitempty"`
	EndDate       *time.Time      `json:"endDate,omitempty"`
	UsageLimit    int             `json:"usageLimit"`
	UsedCount     int             `json:"usedCount"`
	IsDeleted     bool            `json:"isDeleted"`
}

type Feedback struct {
	ID        string    `json:"_id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// EnrichedVariant is a variant whose productId has been replaced by the product.
type EnrichedVariant struct {
	Variant
	Product *Product `json:"productId,omitempty"`
}

// VariantRef is either a bare variant id or, once enriched, the embedded variant.
// It always serializes back to something NormalizeID understands.
type VariantRef struct {
	ID      string
	Variant *EnrichedVariant
}

func (r VariantRef) MarshalJSON() ([]byte, error) {
	if r.Variant != nil {
		return json.Marshal(r.Variant)
	}
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

func (r *VariantRef) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.ID = NormalizeID(raw)
	r.Variant = nil
	return nil
}
