package repository

import "context"

// RepositoryFactory creates repository instances that are all bound to the
// same underlying transaction.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
	ProductRepo() ProductRepository
}

// TransactionManager executes a unit of work atomically. The callback
// receives a factory whose repositories share one transaction; returning an
// error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
