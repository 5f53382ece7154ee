package converter

import (
	"product-catalog-api/internal/delivery/dto"
	"product-catalog-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductToResponse converts a Product entity to ProductResponse DTO. The
// owner may be nil when the owning account could not be resolved.
func ProductToResponse(product *entity.Product, owner *entity.User) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:          product.ID.Hex(),
		ProductName: product.ProductName,
		Category:    product.Category,
		Price:       product.Price,
		Quantity:    product.Quantity,
		TotalValue:  product.TotalValue,
		InStock:     product.InStock,
		Description: product.Description,
		CreatedBy:   UserToOwnerResponse(owner),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ProductsToResponses converts a page of products, resolving each owner from
// the supplied lookup.
func ProductsToResponses(products []entity.Product, owners map[primitive.ObjectID]entity.User) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i, product := range products {
		var owner *entity.User
		if u, ok := owners[product.CreatedBy]; ok {
			owner = &u
		}
		responses[i] = *ProductToResponse(&product, owner)
	}
	return responses
}
