package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLog represents a system audit trail entry.
type AuditLog struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	Action    string              `bson:"action" json:"action"`
	Metadata  map[string]any      `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}

func (AuditLog) CollectionName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionUserRegister    = "user.register"
	AuditActionUserLogin       = "user.login"
	AuditActionUserLogout      = "user.logout"
	AuditActionProductCreate   = "product.create"
	AuditActionProductUpdate   = "product.update"
	AuditActionProductDelete   = "product.delete"
	AuditActionProductStock    = "product.stock_update"
	AuditActionProductGenerate = "product.generate"
)
