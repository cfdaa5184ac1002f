package inventory

import (
	"context"

	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/farmstore/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the ledger repositories.
// Every confirm operation (supply, sale, write-off) runs inside Execute so
// that all of its batch, sale and audit writes commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the ledger repositories within
// a transaction. All repositories returned share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// Batches returns the batch repository scoped to the current transaction
	Batches() inventory.BatchRepository
	// WriteOffs returns the write-off repository scoped to the current transaction
	WriteOffs() inventory.WriteOffRepository
	// Sales returns the sale repository scoped to the current transaction
	Sales() sales.SaleRepository
}

// NoOpTransactionScope runs the function without a real transaction. Useful
// for tests that assert service behavior against mocked repositories.
type NoOpTransactionScope struct {
	BatchRepo    inventory.BatchRepository
	WriteOffRepo inventory.WriteOffRepository
	SaleRepo     sales.SaleRepository
}

// Execute runs the function directly against the configured repositories.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Batches returns the batch repository.
func (s *NoOpTransactionScope) Batches() inventory.BatchRepository {
	return s.BatchRepo
}

// WriteOffs returns the write-off repository.
func (s *NoOpTransactionScope) WriteOffs() inventory.WriteOffRepository {
	return s.WriteOffRepo
}

// Sales returns the sale repository.
func (s *NoOpTransactionScope) Sales() sales.SaleRepository {
	return s.SaleRepo
}

var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
