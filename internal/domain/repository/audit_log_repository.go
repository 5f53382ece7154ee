package repository

import (
	"context"

	"product-catalog-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuditLogRepository interface {
	Insert(ctx context.Context, log *entity.AuditLog) error
	FindByUser(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]entity.AuditLog, error)
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
}
