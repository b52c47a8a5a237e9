package handler

import (
	"time"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// accountView is the public shape of an account. The password digest never
// leaves the server.
type accountView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Active    bool      `json:"is_active"`
	Admin     bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newAccountView(account *entity.Account) accountView {
	return accountView{
		ID:        account.ID,
		Email:     account.Email,
		FullName:  account.FullName,
		Active:    account.Active,
		Admin:     account.Admin,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// loginView is the token envelope returned on a successful login.
type loginView struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type productView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	StockQuantity int       `json:"stock_quantity"`
	ImageURL      string    `json:"image_url"`
	Active        bool      `json:"is_active"`
	OwnerID       uuid.UUID `json:"owner_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newProductView(product *entity.Product) productView {
	return productView{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		Category:      product.Category,
		StockQuantity: product.StockQuantity,
		ImageURL:      product.ImageURL,
		Active:        product.Active,
		OwnerID:       product.OwnerID,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	return views
}
