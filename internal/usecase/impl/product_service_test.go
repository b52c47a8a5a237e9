package impl

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/mocks"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixture struct {
	service     usecase.ProductUsecase
	productRepo *mocks.ProductRepository
}

func newProductServiceFixture() *productServiceFixture {
	productRepo := &mocks.ProductRepository{}
	txManager := &mocks.TransactionManager{
		Factory: &mocks.RepositoryFactory{ProductRepository: productRepo},
	}

	service := NewProductService(ProductServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		Logger:      discardLogger(),
	})

	return &productServiceFixture{
		service:     service,
		productRepo: productRepo,
	}
}

func appErrorCode(t *testing.T, err error) string {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)

	return appErr.ErrorCode()
}

func TestProductService_List_NormalizesPagination(t *testing.T) {
	tests := []struct {
		name      string
		skip      int
		limit     int
		wantSkip  int
		wantLimit int
	}{
		{name: "defaults applied", skip: 0, limit: 0, wantSkip: 0, wantLimit: 10},
		{name: "limit kept in range", skip: 5, limit: 25, wantSkip: 5, wantLimit: 25},
		{name: "limit above maximum falls back", skip: 0, limit: 101, wantSkip: 0, wantLimit: 10},
		{name: "limit at maximum kept", skip: 0, limit: 100, wantSkip: 0, wantLimit: 100},
		{name: "negative skip floored", skip: -3, limit: 10, wantSkip: 0, wantLimit: 10},
		{name: "negative limit falls back", skip: 0, limit: -1, wantSkip: 0, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProductServiceFixture()
			ctx := context.Background()

			f.productRepo.On("List", ctx, repository.ProductFilter{Skip: tt.wantSkip, Limit: tt.wantLimit}).
				Return([]*entity.Product{}, nil)

			_, err := f.service.List(ctx, &usecase.ListProductsInput{Skip: tt.skip, Limit: tt.limit})
			require.NoError(t, err)

			f.productRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_List_PassesFilters(t *testing.T) {
	f := newProductServiceFixture()
	ctx := context.Background()

	minPrice := 10.0
	maxPrice := 50.0
	expected := []*entity.Product{{ID: uuid.New(), Name: "Mug"}}

	f.productRepo.On("List", ctx, repository.ProductFilter{
		Category: "kitchen",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Skip:     0,
		Limit:    10,
	}).Return(expected, nil)

	products, err := f.service.List(ctx, &usecase.ListProductsInput{
		Category: "kitchen",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_Search(t *testing.T) {
	f := newProductServiceFixture()
	ctx := context.Background()

	expected := []*entity.Product{{ID: uuid.New(), Name: "Blue Mug"}}

	f.productRepo.On("Search", ctx, "mug", repository.ProductFilter{Limit: 10}).Return(expected, nil)

	products, err := f.service.Search(ctx, &usecase.SearchProductsInput{Query: "mug"})
	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_Categories(t *testing.T) {
	f := newProductServiceFixture()
	ctx := context.Background()

	f.productRepo.On("Categories", ctx).Return([]string{"kitchen", "office"}, nil)

	categories, err := f.service.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"kitchen", "office"}, categories)
}

func TestProductService_Get(t *testing.T) {
	f := newProductServiceFixture()
	ctx := context.Background()

	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Mug", Active: true}

	f.productRepo.On("FindByID", ctx, productID).Return(product, nil)

	got, err := f.service.Get(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestProductService_Get_MissingAndInactiveLookAlike(t *testing.T) {
	ctx := context.Background()

	f1 := newProductServiceFixture()
	missingID := uuid.New()
	f1.productRepo.On("FindByID", ctx, missingID).Return(nil, repository.ErrProductNotFound)

	_, err1 := f1.service.Get(ctx, missingID)
	require.Error(t, err1)

	f2 := newProductServiceFixture()
	inactiveID := uuid.New()
	f2.productRepo.On("FindByID", ctx, inactiveID).Return(&entity.Product{ID: inactiveID, Active: false}, nil)

	_, err2 := f2.service.Get(ctx, inactiveID)
	require.Error(t, err2)

	assert.Equal(t, appErrorCode(t, err1), appErrorCode(t, err2))
	assert.Equal(t, domainerrors.ErrProductNotFound.ErrorCode(), appErrorCode(t, err1))
}

func TestProductService_Create(t *testing.T) {
	f := newProductServiceFixture()
	ctx := context.Background()

	actor := &entity.Account{ID: uuid.New(), Active: true}

	f.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := f.service.Create(ctx, actor, &usecase.CreateProductInput{
		Name:          "Mug",
		Price:         12.5,
		Category:      "kitchen",
		StockQuantity: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, actor.ID, product.OwnerID)
	assert.True(t, product.Active)
	assert.Equal(t, "Mug", product.Name)
	assert.Equal(t, 12.5, product.Price)
}

func TestProductService_Update_OwnerCanUpdate(t *testing.T) {
	f := newProductServiceFixture()
	ctx := context.Background()

	actor := &entity.Account{ID: uuid.New(), Active: true}
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Mug", Price: 10, OwnerID: actor.ID, Active: true}

	f.productRepo.On("FindByID", ctx, productID).Return(product, nil)
	f.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	newName := "Big Mug"
	newPrice := 15.0
	updated, err := f.service.Update(ctx, actor, productID, &usecase.UpdateProductInput{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, "Big Mug", updated.Name)
	assert.Equal(t, 15.0, updated.Price)
	// Unspecified fields stay untouched.
	assert.True(t, updated.Active)
	assert.Equal(t, actor.ID, updated.OwnerID)
}

func TestProductService_Update_AdminCanUpdateAny(t *testing.T) {
	f := newProductServiceFixture()
	ctx := context.Background()

	admin := &entity.Account{ID: uuid.New(), Admin: true, Active: true}
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Mug", OwnerID: uuid.New(), Active: true}

	f.productRepo.On("FindByID", ctx, productID).Return(product, nil)
	f.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	newName := "Renamed"
	_, err := f.service.Update(ctx, admin, productID, &usecase.UpdateProductInput{Name: &newName})
	require.NoError(t, err)
}

func TestProductService_Update_NonOwnerForbidden(t *testing.T) {
	f := newProductServiceFixture()
	ctx := context.Background()

	actor := &entity.Account{ID: uuid.New(), Active: true}
	productID := uuid.New()
	product := &entity.Product{ID: productID, OwnerID: uuid.New(), Active: true}

	f.productRepo.On("FindByID", ctx, productID).Return(product, nil)

	newName := "Hijacked"
	_, err := f.service.Update(ctx, actor, productID, &usecase.UpdateProductInput{Name: &newName})
	require.Error(t, err)

	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErrorCode(t, err))
	f.productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_Update_MissingProductBeatsOwnership(t *testing.T) {
	f := newProductServiceFixture()
	ctx := context.Background()

	// Even a non-admin caller probing a missing ID gets not-found, not
	// forbidden. Existence is checked before ownership.
	actor := &entity.Account{ID: uuid.New(), Active: true}
	missingID := uuid.New()

	f.productRepo.On("FindByID", ctx, missingID).Return(nil, repository.ErrProductNotFound)

	newName := "Ghost"
	_, err := f.service.Update(ctx, actor, missingID, &usecase.UpdateProductInput{Name: &newName})
	require.Error(t, err)

	assert.Equal(t, domainerrors.ErrProductNotFound.ErrorCode(), appErrorCode(t, err))
}

func TestProductService_Delete_SoftDeletes(t *testing.T) {
	f := newProductServiceFixture()
	ctx := context.Background()

	actor := &entity.Account{ID: uuid.New(), Active: true}
	productID := uuid.New()
	product := &entity.Product{ID: productID, OwnerID: actor.ID, Active: true}

	f.productRepo.On("FindByID", ctx, productID).Return(product, nil)
	f.productRepo.On("Update", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == productID && !p.Active
	})).Return(nil)

	err := f.service.Delete(ctx, actor, productID)
	require.NoError(t, err)

	f.productRepo.AssertExpectations(t)
}

func TestProductService_Delete_AlreadyInactiveIsIdempotent(t *testing.T) {
	f := newProductServiceFixture()
	ctx := context.Background()

	actor := &entity.Account{ID: uuid.New(), Active: true}
	productID := uuid.New()
	product := &entity.Product{ID: productID, OwnerID: actor.ID, Active: false}

	f.productRepo.On("FindByID", ctx, productID).Return(product, nil)

	err := f.service.Delete(ctx, actor, productID)
	require.NoError(t, err)

	f.productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_Delete_NonOwnerForbidden(t *testing.T) {
	f := newProductServiceFixture()
	ctx := context.Background()

	actor := &entity.Account{ID: uuid.New(), Active: true}
	productID := uuid.New()
	product := &entity.Product{ID: productID, OwnerID: uuid.New(), Active: true}

	f.productRepo.On("FindByID", ctx, productID).Return(product, nil)

	err := f.service.Delete(ctx, actor, productID)
	require.Error(t, err)

	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErrorCode(t, err))
}
