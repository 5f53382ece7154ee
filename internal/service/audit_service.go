package service

import (
	"context"

	"product-catalog-api/internal/domain/entity"
	"product-catalog-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditService records who did what to which document. Writes are
// best-effort: a failed audit insert is logged and never fails the request
// that triggered it.
type AuditService interface {
	LogCreate(ctx context.Context, userID *primitive.ObjectID, action, entityName, entityID string, newValue any)
	LogUpdate(ctx context.Context, userID *primitive.ObjectID, action, entityName, entityID string, oldValue, newValue any)
	LogDelete(ctx context.Context, userID *primitive.ObjectID, action, entityName, entityID string, oldValue any)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogCreate(ctx context.Context, userID *primitive.ObjectID, action, entityName, entityID string, newValue any) {
	s.record(ctx, userID, action, entityName, entityID, nil, newValue)
}

func (s *auditService) LogUpdate(ctx context.Context, userID *primitive.ObjectID, action, entityName, entityID string, oldValue, newValue any) {
	s.record(ctx, userID, action, entityName, entityID, oldValue, newValue)
}

func (s *auditService) LogDelete(ctx context.Context, userID *primitive.ObjectID, action, entityName, entityID string, oldValue any) {
	s.record(ctx, userID, action, entityName, entityID, oldValue, nil)
}

func (s *auditService) record(ctx context.Context, userID *primitive.ObjectID, action, entityName, entityID string, oldValue, newValue any) {
	auditLog := &entity.AuditLog{
		UserID: userID,
		Action: action,
		Metadata: map[string]any{
			"entity":    entityName,
			"entity_id": entityID,
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	if err := s.auditRepo.Insert(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}
