package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. OwnerID is set once at creation to the account
// that created it and is never reassigned; Active doubles as the soft-delete
// flag, so deleted products simply disappear from public listings.
type Product struct {
	ID            uuid.UUID // The unique identifier for the product.
	Name          string    // Product name.
	Description   string    // Detailed product description.
	Price         float64   // Product price, must be positive.
	Category      string    // Category used for filtering, optional.
	StockQuantity int       // Available inventory count.
	ImageURL      string    // URL to a product image, optional.
	Active        bool      // False once soft-deleted or taken off sale.
	OwnerID       uuid.UUID // The account that created this product.
	CreatedAt     time.Time // Timestamp of when this product was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this product.
}
