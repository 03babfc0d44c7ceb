package entity

import "time"

// Tipos de movimento do livro de estoque.
const (
	MovementInbound  = "INBOUND"
	MovementOutbound = "OUTBOUND"
)

// StockMovement é um registro imutável do livro de estoque: nunca é
// atualizado após a criação e só é removido quando o produto é removido.
// Para recebimentos de compra, SupplierID e PurchasedQty são preenchidos.
type StockMovement struct {
	ID           string
	ProductID    string
	SupplierID   string // vazio para movimentos sem fornecedor
	Quantity     int
	Type         string // INBOUND | OUTBOUND
	MovementDate time.Time
	PurchasedQty int // quantidade comprada que originou o movimento (recebimentos)
	CreatedAt    time.Time
}
