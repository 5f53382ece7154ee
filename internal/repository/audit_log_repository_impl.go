package repository

import (
	"context"
	"time"

	"product-catalog-api/internal/domain/entity"
	domainRepo "product-catalog-api/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type auditLogRepository struct {
	collection *mongo.Collection
}

func NewAuditLogRepository(db *mongo.Database) domainRepo.AuditLogRepository {
	return &auditLogRepository{
		collection: db.Collection(entity.AuditLog{}.CollectionName()),
	}
}

func (r *auditLogRepository) Insert(ctx context.Context, log *entity.AuditLog) error {
	log.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return err
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		log.ID = id
	}
	return nil
}

func (r *auditLogRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]entity.AuditLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []entity.AuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userId": userID})
}
