package dto

import (
	"time"

	"product-catalog-api/pkg/pagination"
)

// Response DTOs

type AuditLogResponse struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

type AuditLogListResponse struct {
	Logs       []AuditLogResponse `json:"logs"`
	Pagination pagination.Meta    `json:"pagination"`
}
