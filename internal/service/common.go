package service

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/apierror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode with stubs).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// parseID converts a request id string into a UUID or a typed input error.
func parseID(s, campo string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apierror.InvalidInput(campo + " inválido")
	}
	return id, nil
}

// Dispatcher enqueues best-effort async jobs after a mutation commits.
// The worker package provides the Redis-backed implementation; services
// tolerate a nil dispatcher (unit test mode).
type Dispatcher interface {
	EnqueueRecibo(ctx context.Context, ventaID uuid.UUID) error
	EnqueueAuditoria(ctx context.Context, clienteID uuid.UUID) error
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
