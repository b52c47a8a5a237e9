package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Category      string  `json:"category" validate:"max=100"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	ImageURL      string  `json:"image_url" validate:"omitempty,url,max=500"`
}

// UpdateProductInput defines a partial product update. Nil fields are left
// untouched.
type UpdateProductInput struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" validate:"omitempty,gt=0"`
	Category      *string  `json:"category" validate:"omitempty,max=100"`
	StockQuantity *int     `json:"stock_quantity" validate:"omitempty,gte=0"`
	ImageURL      *string  `json:"image_url" validate:"omitempty,url,max=500"`
	Active        *bool    `json:"is_active"`
}

// ListProductsInput defines catalog listing filters and pagination.
type ListProductsInput struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Skip     int
	Limit    int
}

// SearchProductsInput defines a free-text catalog search.
type SearchProductsInput struct {
	Query string
	Skip  int
	Limit int
}

// ProductUsecase defines the interface for catalog business operations.
// Mutations take the resolved caller identity; reads are public.
type ProductUsecase interface {
	List(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	Search(ctx context.Context, input *SearchProductsInput) ([]*entity.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, actor *entity.Account, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, actor *entity.Account, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, actor *entity.Account, id uuid.UUID) error
}
