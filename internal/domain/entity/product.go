package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product categories accepted by the catalog.
const (
	CategoryElectronics = "Electronics"
	CategoryClothing    = "Clothing"
	CategoryFood        = "Food"
)

var Categories = []string{CategoryElectronics, CategoryClothing, CategoryFood}

// Product represents a catalog entry owned by the user that created it.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductName string             `bson:"productName" json:"productName"`
	Category    string             `bson:"category" json:"category"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	TotalValue  float64            `bson:"totalValue" json:"totalValue"`
	InStock     bool               `bson:"inStock" json:"inStock"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (Product) CollectionName() string {
	return "products"
}

// ComputeTotalValue is the single source of truth for the derived totalValue
// field. Every write path that touches price or quantity must go through it.
func ComputeTotalValue(price float64, quantity int) float64 {
	return price * float64(quantity)
}

// ProductPatch carries the fields of a partial update. Nil means "leave as is".
type ProductPatch struct {
	ProductName *string
	Category    *string
	Price       *float64
	Quantity    *int
	InStock     *bool
	Description *string
}

// TouchesValue reports whether the patch affects the totalValue computation.
func (p *ProductPatch) TouchesValue() bool {
	return p.Price != nil || p.Quantity != nil
}
