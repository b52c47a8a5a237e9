package mocks

import (
	"context"

	"catalog/internal/domain/repository"
)

// RepositoryFactory is a stub factory returning the given mock repositories.
type RepositoryFactory struct {
	AccountRepository *AccountRepository
	ProductRepository *ProductRepository
}

func (f *RepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.AccountRepository
}

func (f *RepositoryFactory) ProductRepo() repository.ProductRepository {
	return f.ProductRepository
}

// TransactionManager runs the transactional function directly against the
// stub factory, with no real transaction underneath.
type TransactionManager struct {
	Factory *RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
