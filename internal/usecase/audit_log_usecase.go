package usecase

import (
	"context"

	"product-catalog-api/internal/converter"
	"product-catalog-api/internal/delivery/dto"
	"product-catalog-api/internal/domain/repository"
	"product-catalog-api/pkg/pagination"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuditLogUsecase interface {
	GetUserAuditLogs(ctx context.Context, userID primitive.ObjectID, page, limit int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetUserAuditLogs(ctx context.Context, userID primitive.ObjectID, page, limit int) (*dto.AuditLogListResponse, error) {
	totalCount, err := u.auditLogRepo.CountByUser(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to count audit logs: %+v", err)
		return nil, err
	}

	meta := pagination.New(page, limit, totalCount)

	logs, err := u.auditLogRepo.FindByUser(ctx, userID, meta.Skip(), int64(limit))
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:       converter.AuditLogsToResponses(logs),
		Pagination: meta,
	}, nil
}
