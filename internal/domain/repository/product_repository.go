package repository

import (
	"context"

	"product-catalog-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	Insert(ctx context.Context, product *entity.Product) error
	FindPage(ctx context.Context, filter *entity.ProductFilter, skip, limit int64) ([]entity.Product, error)
	Count(ctx context.Context, filter *entity.ProductFilter) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error)
	// FindByName matches productName case-insensitively.
	FindByName(ctx context.Context, name string) (*entity.Product, error)
	// UpdateOwned applies the patch to the product only when it exists and is
	// owned by ownerID, recomputing totalValue in the same operation. Returns
	// (nil, nil) when no such product exists.
	UpdateOwned(ctx context.Context, id, ownerID primitive.ObjectID, patch *entity.ProductPatch) (*entity.Product, error)
	// DeleteOwned removes the product only when owned by ownerID and returns
	// the removed document, or (nil, nil) when no such product exists.
	DeleteOwned(ctx context.Context, id, ownerID primitive.ObjectID) (*entity.Product, error)
}
