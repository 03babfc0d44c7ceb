package postgres

import (
	"context"
	"fmt"

	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação do porto do livro de estoque sobre
// PostgreSQL. Append-only: não há UPDATE nesta tabela.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador do livro de estoque.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Append grava um movimento novo no livro.
func (r *StockMovementRepo) Append(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, supplier_id, quantity, type, movement_date, purchased_qty, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.SupplierID, movement.Quantity,
		movement.Type, movement.MovementDate, movement.PurchasedQty, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct devolve os movimentos do produto, do mais recente ao mais antigo.
func (r *StockMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, supplier_id, quantity, type, movement_date, purchased_qty, created_at
		FROM stock_movements WHERE product_id = $1 ORDER BY movement_date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.SupplierID, &m.Quantity, &m.Type,
			&m.MovementDate, &m.PurchasedQty, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DeleteByProduct remove em lote os movimentos do produto (cascade da remoção
// de produto).
func (r *StockMovementRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete stock movements: %w", err)
	}
	return nil
}
