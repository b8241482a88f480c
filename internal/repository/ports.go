package repository

import (
	"context"

	"gorm.io/gorm"
)

// Storage is the transactional store the ledger runs on.
type Storage interface {
	MigrateModels(models ...any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, orderBy string, entity any) error
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
