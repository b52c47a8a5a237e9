package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a catalog listing. Zero values mean "no constraint".
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Skip     int
	Limit    int
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID, active or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns active products matching the filter, paginated.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Search returns active products whose name or description matches the
	// query string, case-insensitively.
	Search(ctx context.Context, query string, filter ProductFilter) ([]*entity.Product, error)

	// Categories returns the distinct non-empty categories of active products.
	Categories(ctx context.Context) ([]string, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error
}
