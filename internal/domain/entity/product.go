package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo.
// Quantity é o saldo em mãos; é incrementado na completude de pedidos de compra
// e só deve ser mutado por UPDATEs atômicos no banco — incremento ou atribuição
// explícita — nunca por check-then-write.
type Product struct {
	ID             string
	Name           string // mínimo 3 caracteres
	SupplierID     string
	CategoryID     string
	Price          decimal.Decimal // >= 0
	Quantity       int             // >= 0
	PurchaseDate   time.Time
	ExpirationDate *time.Time // nil = não perecível
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate verifica os invariantes do produto.
func (p *Product) Validate() error {
	if len(p.Name) < 3 {
		return fieldError("name", "deve ter pelo menos 3 caracteres")
	}
	if p.SupplierID == "" {
		return fieldError("supplier_id", "é obrigatório")
	}
	if p.CategoryID == "" {
		return fieldError("category_id", "é obrigatório")
	}
	if p.Price.IsNegative() {
		return fieldError("price", "não pode ser negativo")
	}
	if p.Quantity < 0 {
		return fieldError("quantity", "não pode ser negativo")
	}
	return nil
}
