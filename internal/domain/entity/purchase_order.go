package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de um pedido de compra.
// Transições permitidas: PENDING -> COMPLETED e PENDING -> CANCELLED.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// PurchaseOrder representa um compromisso de recebimento de mercadoria de um
// fornecedor. Os itens pertencem exclusivamente ao pedido (cascade delete) e
// são imutáveis após a completude.
type PurchaseOrder struct {
	ID                   string
	SupplierID           string
	OrderDate            time.Time // fixado na criação
	ExpectedDeliveryDate time.Time
	Status               string
	Items                []PurchaseItem
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// PurchaseItem é uma linha (produto, quantidade, preço unitário) de um pedido.
type PurchaseItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int             // > 0
	UnitPrice decimal.Decimal // >= 0
}

// Validate verifica os invariantes de uma linha do pedido.
func (i *PurchaseItem) Validate() error {
	if i.ProductID == "" {
		return fieldError("product_id", "é obrigatório")
	}
	if i.Quantity <= 0 {
		return fieldError("quantity", "deve ser maior que zero")
	}
	if i.UnitPrice.IsNegative() {
		return fieldError("unit_price", "não pode ser negativo")
	}
	return nil
}

// Total devolve quantidade * preço unitário da linha.
func (i *PurchaseItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TotalAmount soma os totais de todas as linhas do pedido.
func (o *PurchaseOrder) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Total())
	}
	return total
}
