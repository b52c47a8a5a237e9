package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the catalog listing request with optional filters.
func (h *ProductHandler) List(c echo.Context) error {
	minPrice, err := queryFloat(c, "min_price")
	if err != nil || (minPrice != nil && *minPrice < 0) {
		return response.BindingError(c, "INVALID_INPUT", "min_price must be a non-negative number")
	}
	maxPrice, err := queryFloat(c, "max_price")
	if err != nil || (maxPrice != nil && *maxPrice < 0) {
		return response.BindingError(c, "INVALID_INPUT", "max_price must be a non-negative number")
	}

	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "skip must be an integer")
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "limit must be an integer")
	}

	input := &usecase.ListProductsInput{
		Category: c.QueryParam("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Skip:     skip,
		Limit:    limit,
	}

	products, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products), "")
}

// Search handles the free-text catalog search request.
func (h *ProductHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BindingError(c, "INVALID_INPUT", "q query parameter is required")
	}

	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "skip must be an integer")
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "limit must be an integer")
	}

	input := &usecase.SearchProductsInput{
		Query: query,
		Skip:  skip,
		Limit: limit,
	}

	products, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products), "")
}

// Categories returns the distinct categories of listed products.
func (h *ProductHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// Get returns a single product by ID.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathProductID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "")
}

// Create handles the product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	actor, ok := middleware.CurrentAccount(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Create(c.Request().Context(), actor, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductView(product), "Product created successfully")
}

// Update handles the partial product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	actor, ok := middleware.CurrentAccount(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, err := pathProductID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Update(c.Request().Context(), actor, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product updated successfully")
}

// Delete handles the product removal request.
func (h *ProductHandler) Delete(c echo.Context) error {
	actor, ok := middleware.CurrentAccount(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, err := pathProductID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// pathProductID parses the :id path parameter.
func pathProductID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("product id must be a UUID")
	}

	return id, nil
}

// queryInt reads an integer query parameter. Absence yields the fallback,
// a non-integer value is an error.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}

	return value, nil
}

// queryFloat reads an optional float query parameter.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
