package dto

import "time"

// StockMovementResponse representação de um movimento do livro de estoque.
type StockMovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	SupplierID   string    `json:"supplier_id,omitempty"`
	Quantity     int       `json:"quantity"`
	Type         string    `json:"type"`
	MovementDate time.Time `json:"movement_date"`
	PurchasedQty int       `json:"purchased_qty,omitempty"`
}
