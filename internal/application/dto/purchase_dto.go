package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest uma linha do pedido na criação.
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseOrderRequest body para POST /api/purchases.
type CreatePurchaseOrderRequest struct {
	SupplierID           string                `json:"supplier_id"`
	ExpectedDeliveryDate time.Time             `json:"expected_delivery_date"`
	Items                []PurchaseItemRequest `json:"items"`
}

// PurchaseItemResponse uma linha do pedido nas respostas.
type PurchaseItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// PurchaseOrderResponse representação de PurchaseOrder nas respostas.
type PurchaseOrderResponse struct {
	ID                   string                 `json:"id"`
	SupplierID           string                 `json:"supplier_id"`
	OrderDate            time.Time              `json:"order_date"`
	ExpectedDeliveryDate time.Time              `json:"expected_delivery_date"`
	Status               string                 `json:"status"`
	Items                []PurchaseItemResponse `json:"items"`
	TotalAmount          decimal.Decimal        `json:"total_amount"`
}

// PurchaseSuggestionsResponse resultado da varredura de sugestões de compra:
// produtos com estoque baixo e produtos próximos do vencimento.
type PurchaseSuggestionsResponse struct {
	LowStock     []ProductResponse `json:"low_stock"`
	ExpiringSoon []ProductResponse `json:"expiring_soon"`
}
