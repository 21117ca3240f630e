package fixtures

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Raw records mirror the Mongo exports. Identifier, date and money fields are left
// untyped because they arrive either as ext-JSON wrappers or as plain values.

type rawCategory struct {
	ID           any    `bson:"_id" json:"_id"`
	CategoryName string `bson:"categoryName" json:"categoryName"`
	CreatedAt    any    `bson:"createdAt" json:"createdAt"`
}

type rawColor struct {
	ID               any    `bson:"_id" json:"_id"`
	ProductColorName string `bson:"productColorName" json:"productColorName"`
}

type rawSize struct {
	ID              any    `bson:"_id" json:"_id"`
	ProductSizeName string `bson:"productSizeName" json:"productSizeName"`
}

type rawImage struct {
	ID        any    `bson:"_id" json:"_id"`
	ProductID any    `bson:"productId" json:"productId"`
	ImageURL  string `bson:"imageUrl" json:"imageUrl"`
	IsMain    bool   `bson:"isMain" json:"isMain"`
}

type rawVariant struct {
	ID             any    `bson:"_id" json:"_id"`
	ProductID      any    `bson:"productId" json:"productId"`
	ProductColorID any    `bson:"productColorId" json:"productColorId"`
	ProductSizeID  any    `bson:"productSizeId" json:"productSizeId"`
	VariantPrice   any    `bson:"variantPrice" json:"variantPrice"`
	StockQuantity  any    `bson:"stockQuantity" json:"stockQuantity"`
	VariantImage   string `bson:"variantImage" json:"variantImage"`
	VariantStatus  string `bson:"variantStatus" json:"variantStatus"`
}

type rawProduct struct {
	ID                any    `bson:"_id" json:"_id"`
	ProductName       string `bson:"productName" json:"productName"`
	Description       string `bson:"description" json:"description"`
	ProductStatus     string `bson:"productStatus" json:"productStatus"`
	CategoryID        any    `bson:"categoryId" json:"categoryId"`
	ProductImageIDs   []any  `bson:"productImageIds" json:"productImageIds"`
	ProductVariantIDs []any  `bson:"productVariantIds" json:"productVariantIds"`
	CreatedAt         any    `bson:"createdAt" json:"createdAt"`
}

type rawAccount struct {
	ID            any    `bson:"_id" json:"_id"`
	Username      string `bson:"username" json:"username"`
	Name          string `bson:"name" json:"name"`
	Email         string `bson:"email" json:"email"`
	Phone         string `bson:"phone" json:"phone"`
	Address       string `bson:"address" json:"address"`
	Role          string `bson:"role" json:"role"`
	AccountStatus string `bson:"accountStatus" json:"accountStatus"`
	Image         string `bson:"image" json:"image"`
	Gender        string `bson:"gender" json:"gender"`
	Dob           any    `bson:"dob" json:"dob"`
	CreatedAt     any    `bson:"createdAt" json:"createdAt"`
}

type rawOrder struct {
	ID             any       `bson:"_id" json:"_id"`
	AccountID      any       `bson:"accountId" json:"accountId"`
	Customer       *Customer `bson:"customer" json:"customer"`
	OrderStatus    string    `bson:"orderStatus" json:"orderStatus"`
	PayStatus      string    `bson:"payStatus" json:"payStatus"`
	PaymentMethod  string    `bson:"paymentMethod" json:"paymentMethod"`
	TotalPrice     any       `bson:"totalPrice" json:"totalPrice"`
	DiscountAmount any       `bson:"discountAmount" json:"discountAmount"`
	FinalPrice     any       `bson:"finalPrice" json:"finalPrice"`
	VoucherID      any       `bson:"voucherId" json:"voucherId"`
	OrderDate      any       `bson:"orderDate" json:"orderDate"`
}

type rawOrderDetail struct {
	ID           any    `bson:"_id" json:"_id"`
	OrderID      any    `bson:"orderId" json:"orderId"`
	VariantID    any    `bson:"variantId" json:"variantId"`
	ProductName  string `bson:"productName" json:"productName"`
	ProductPrice any    `bson:"productPrice" json:"productPrice"`
	Quantity     any    `bson:"quantity" json:"quantity"`
}

type rawVoucher struct {
	ID            any    `bson:"_id" json:"_id"`
	Code          string `bson:"code" json:"code"`
	DiscountType  string `bson:"discountType" json:"discountType"`
	DiscountValue any    `bson:"discountValue" json:"discountValue"`
	MinOrderValue any    `bson:"minOrderValue" json:"minOrderValue"`
	MaxDiscount   any    `bson:"maxDiscount" json:"maxDiscount"`
	StartDate     any    `bson:"startDate" json:"startDate"`
	EndDate       any    `bson:"endDate" json:"endDate"`
	UsageLimit    any    `bson:"usageLimit" json:"usageLimit"`
	UsedCount     any    `bson:"usedCount" json:"usedCount"`
	IsDeleted     bool   `bson:"isDeleted" json:"isDeleted"`
}

// decodeRecords splits a JSON array and decodes every element as relaxed extended JSON.
// Elements the ext-JSON reader rejects (for instance an `$oid` that is not 24 hex
// characters) are decoded as plain JSON and left for NormalizeID to unwrap.
func decodeRecords[T any](name string, data []byte) ([]T, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("fixture %s: expected a JSON array: %w", name, err)
	}
	out := make([]T, 0, len(elems))
	for i, elem := range elems {
		var rec T
		if err := bson.UnmarshalExtJSON(elem, false, &rec); err != nil {
			rec = *new(T)
			if jsonErr := json.Unmarshal(elem, &rec); jsonErr != nil {
				return nil, fmt.Errorf("fixture %s[%d]: %w", name, i, jsonErr)
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
