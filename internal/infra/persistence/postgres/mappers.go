package postgres

import (
	"catalog/internal/domain/entity"
	"catalog/internal/infra/persistence/model"
)

// Mapping between persistence models and pure domain entities. Repositories
// never leak GORM models past this package.

func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		Active:       m.Active,
		Admin:        m.Admin,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		FullName:     a.FullName,
		Active:       a.Active,
		Admin:        a.Admin,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		Category:      m.Category,
		StockQuantity: m.StockQuantity,
		ImageURL:      m.ImageURL,
		Active:        m.Active,
		OwnerID:       m.OwnerID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		ImageURL:      p.ImageURL,
		Active:        p.Active,
		OwnerID:       p.OwnerID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
