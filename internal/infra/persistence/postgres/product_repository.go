package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID, whether active or not.
// Callers decide how to treat inactive products; the authorization flow needs
// the row either way to check existence before ownership.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List returns active products matching the filter, paginated.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("active = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var productMs []model.ProductModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainSlice(productMs), nil
}

// Search returns active products whose name or description matches the query, case-insensitively.
func (repo *productRepository) Search(ctx context.Context, query string, filter repository.ProductFilter) ([]*entity.Product, error) {
	pattern := "%" + query + "%"

	var productMs []model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductDomainSlice(productMs), nil
}

// Categories returns the distinct non-empty categories of active products.
func (repo *productRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("active = ? AND category <> ''", true).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list product categories")
	}

	return categories, nil
}

// Create persists a new product entity to the database.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductCreationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductCreationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product entity in the database.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Save(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductUpdateFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func toProductDomainSlice(productMs []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products
}
