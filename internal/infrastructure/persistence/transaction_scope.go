package persistence

import (
	"context"

	appinventory "github.com/farmstore/backend/internal/application/inventory"
	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/farmstore/backend/internal/domain/sales"
	"gorm.io/gorm"
)

// GormTransactionScope runs ledger operations inside a database transaction.
// Repositories handed to the callback are bound to the transaction, so row
// locks taken by FindSellableForUpdate hold until commit or rollback.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn in a transaction, committing on nil and rolling back on error
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Batches() inventory.BatchRepository {
	return NewGormBatchRepository(r.tx)
}

func (r *gormTransactionalRepositories) WriteOffs() inventory.WriteOffRepository {
	return NewGormWriteOffRepository(r.tx)
}

func (r *gormTransactionalRepositories) Sales() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

var (
	_ appinventory.TransactionScope          = (*GormTransactionScope)(nil)
	_ appinventory.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)
