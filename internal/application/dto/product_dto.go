package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	SupplierID     string          `json:"supplier_id"`
	CategoryID     string          `json:"category_id"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	PurchaseDate   *time.Time      `json:"purchase_date,omitempty"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil não são alterados.
type UpdateProductRequest struct {
	Name           *string          `json:"name,omitempty"`
	SupplierID     *string          `json:"supplier_id,omitempty"`
	CategoryID     *string          `json:"category_id,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Quantity       *int             `json:"quantity,omitempty"`
	ExpirationDate *time.Time       `json:"expiration_date,omitempty"`
}

// ProductResponse representação de Product nas respostas.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	SupplierID     string          `json:"supplier_id"`
	CategoryID     string          `json:"category_id"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	PurchaseDate   time.Time       `json:"purchase_date"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse listagem paginada de produtos.
type ProductListResponse struct {
	Items  []ProductResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
