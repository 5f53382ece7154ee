package handler

import (
	"net/http"
	"strconv"

	"product-catalog-api/internal/delivery/http/middleware"
	"product-catalog-api/internal/usecase"
	"product-catalog-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type AuditLogHandler struct {
	log             *logrus.Logger
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(log *logrus.Logger, auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		log:             log,
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetMyAuditLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.ValidationError(w, "page must be a positive integer", nil)
			return
		}
		page = parsed
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			response.ValidationError(w, "limit must be a positive integer between 1 and 100", nil)
			return
		}
		limit = parsed
	}

	result, err := h.auditLogUsecase.GetUserAuditLogs(r.Context(), userID, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", result)
}
