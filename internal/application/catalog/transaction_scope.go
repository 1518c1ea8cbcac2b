package catalog

import (
	"context"

	"github.com/catalog/backend/internal/domain/catalog"
)

// TransactionScope provides transactional access to catalog repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically. Reparenting depends on this: the target update and the
// subtree level propagation must never be observable half-applied.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to catalog repositories that
// share one underlying database transaction.
type TransactionalRepositories interface {
	// Categories returns the category repository scoped to the current transaction
	Categories() catalog.CategoryRepository
}

// NoOpTransactionScope runs the function against plain repositories with
// no real transaction. Useful for tests and for stores that cannot open
// transactions.
type NoOpTransactionScope struct {
	categories catalog.CategoryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repository
func NewNoOpTransactionScope(categories catalog.CategoryRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{categories: categories}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Categories returns the category repository
func (s *NoOpTransactionScope) Categories() catalog.CategoryRepository {
	return s.categories
}

var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
