package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeFilter clamps pagination to sane bounds. Limit falls back to the
// default page size when out of range, skip is floored at zero.
func normalizeFilter(filter repository.ProductFilter) repository.ProductFilter {
	if filter.Limit < 1 || filter.Limit > maxPageLimit {
		filter.Limit = defaultPageLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}

	return filter
}

// List returns active products matching the given filter.
func (srv *productService) List(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	filter := normalizeFilter(repository.ProductFilter{
		Category: input.Category,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Skip:     input.Skip,
		Limit:    input.Limit,
	})

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Search returns active products whose name or description matches the query.
func (srv *productService) Search(ctx context.Context, input *usecase.SearchProductsInput) ([]*entity.Product, error) {
	filter := normalizeFilter(repository.ProductFilter{
		Skip:  input.Skip,
		Limit: input.Limit,
	})

	products, err := srv.productRepo.Search(ctx, input.Query, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to search products", slog.String("query", input.Query), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// Categories returns the distinct categories of active products.
func (srv *productService) Categories(ctx context.Context) ([]string, error) {
	categories, err := srv.productRepo.Categories(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list product categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list product categories")
	}

	return categories, nil
}

// Get retrieves a single product by ID. Deactivated products are hidden from
// reads, so they surface as not found just like missing rows.
func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	if !product.Active {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
	}

	return product, nil
}

// Create stores a new product owned by the acting account.
func (srv *productService) Create(ctx context.Context, actor *entity.Account, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("name", input.Name), slog.Any("ownerID", actor.ID))

	product := &entity.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Category:      input.Category,
		StockQuantity: input.StockQuantity,
		ImageURL:      input.ImageURL,
		Active:        true,
		OwnerID:       actor.ID,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// Update applies the given partial changes to an existing product. Existence
// is checked before ownership so a non-owner probing a random ID cannot tell
// a missing product from a forbidden one by the order of the checks.
func (srv *productService) Update(ctx context.Context, actor *entity.Account, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	var updatedProduct *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, findErr := productRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product update failed")
			}

			return errors.Wrap(findErr, "failed to find product by id")
		}

		if !actor.CanMutate(product.OwnerID) {
			return errors.Wrap(domainerrors.ErrForbidden, "product update failed")
		}

		applyProductChanges(product, input)

		if updateErr := productRepo.Update(ctx, product); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update product")
		}

		updatedProduct = product

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute product update transaction", slog.Any("productID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Product updated", slog.Any("productID", id))

	return updatedProduct, nil
}

// Delete deactivates a product. The row is kept so existing references stay
// intact, it just stops showing up in reads.
func (srv *productService) Delete(ctx context.Context, actor *entity.Account, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, findErr := productRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product delete failed")
			}

			return errors.Wrap(findErr, "failed to find product by id")
		}

		if !actor.CanMutate(product.OwnerID) {
			return errors.Wrap(domainerrors.ErrForbidden, "product delete failed")
		}

		if !product.Active {
			// Already deactivated, treat as success.
			return nil
		}

		product.Active = false
		if updateErr := productRepo.Update(ctx, product); updateErr != nil {
			return errors.Wrap(updateErr, "failed to deactivate product")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute product delete transaction", slog.Any("productID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Product deactivated", slog.Any("productID", id))

	return nil
}

func applyProductChanges(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.Active != nil {
		product.Active = *input.Active
	}
}
