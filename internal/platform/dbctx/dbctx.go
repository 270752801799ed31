package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
// Document-store repos ignore Tx.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}
