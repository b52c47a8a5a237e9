package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. OwnerID references accounts.id (UUID).
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(255);not null;index"`
	Description   string    `gorm:"type:text"`
	Price         float64   `gorm:"not null"`
	Category      string    `gorm:"type:varchar(100);index"`
	StockQuantity int       `gorm:"not null;default:0"`
	ImageURL      string    `gorm:"type:varchar(500)"`
	Active        bool      `gorm:"not null;default:true;index"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
