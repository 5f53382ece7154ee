package dto

import (
	"strings"
	"time"

	"product-catalog-api/internal/domain/entity"
	"product-catalog-api/pkg/pagination"
)

// Request DTOs

type CreateProductRequest struct {
	ProductName string   `json:"productName" validate:"required,min=3,max=100"`
	Category    string   `json:"category" validate:"required,oneof=Electronics Clothing Food"`
	Price       *float64 `json:"price" validate:"required,gte=0,lte=100000"`
	Quantity    *int     `json:"quantity" validate:"required,min=1"`
	InStock     *bool    `json:"inStock"`
	Description string   `json:"description" validate:"omitempty,max=1000"`
}

// Normalize trims user-entered text before validation, so the length rules
// apply to the value that gets persisted.
func (r *CreateProductRequest) Normalize() {
	r.ProductName = strings.TrimSpace(r.ProductName)
	r.Description = strings.TrimSpace(r.Description)
}

// UpdateProductRequest is the partial-patch shape: absent fields keep their
// stored value.
type UpdateProductRequest struct {
	ProductName *string  `json:"productName" validate:"omitnil,min=3,max=100"`
	Category    *string  `json:"category" validate:"omitnil,oneof=Electronics Clothing Food"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0,lte=100000"`
	Quantity    *int     `json:"quantity" validate:"omitnil,min=1"`
	InStock     *bool    `json:"inStock"`
	Description *string  `json:"description" validate:"omitnil,max=1000"`
}

// Normalize trims user-entered text before validation, so the length rules
// apply to the value that gets persisted.
func (r *UpdateProductRequest) Normalize() {
	if r.ProductName != nil {
		name := strings.TrimSpace(*r.ProductName)
		r.ProductName = &name
	}
	if r.Description != nil {
		description := strings.TrimSpace(*r.Description)
		r.Description = &description
	}
}

// Patch converts the request into a domain patch.
func (r *UpdateProductRequest) Patch() *entity.ProductPatch {
	return &entity.ProductPatch{
		ProductName: r.ProductName,
		Category:    r.Category,
		Price:       r.Price,
		Quantity:    r.Quantity,
		InStock:     r.InStock,
		Description: r.Description,
	}
}

type UpdateStockRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

// Response DTOs

type OwnerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ProductResponse struct {
	ID          string         `json:"id"`
	ProductName string         `json:"productName"`
	Category    string         `json:"category"`
	Price       float64        `json:"price"`
	Quantity    int            `json:"quantity"`
	TotalValue  float64        `json:"totalValue"`
	InStock     bool           `json:"inStock"`
	Description string         `json:"description,omitempty"`
	CreatedBy   *OwnerResponse `json:"createdBy,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination pagination.Meta   `json:"pagination"`
}

// GeneratedProduct is the shape the generation endpoint returns. It is never
// persisted; storing it is a separate, client-initiated create call.
type GeneratedProduct struct {
	ProductName string  `json:"productName"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
}
