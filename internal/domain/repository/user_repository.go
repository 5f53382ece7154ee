package repository

import (
	"context"

	"product-catalog-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Insert(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	// FindByIDs resolves a batch of user ids in one query.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
