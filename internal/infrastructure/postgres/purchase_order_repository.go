package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementação do porto PurchaseOrderRepository sobre
// PostgreSQL. As linhas vivem em purchase_items com FK ON DELETE CASCADE.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository constrói o adaptador de persistência para pedidos.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste o cabeçalho do pedido (as linhas entram via AddItem).
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, supplier_id, order_date, expected_delivery_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.SupplierID, order.OrderDate, order.ExpectedDeliveryDate,
		order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// AddItem persiste uma linha do pedido. seq preserva a ordem de inserção.
func (r *PurchaseOrderRepo) AddItem(item *entity.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (id, order_id, product_id, quantity, unit_price, seq)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(seq), 0) + 1 FROM purchase_items WHERE order_id = $2))`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert purchase item: %w", err)
	}
	return nil
}

// GetByID carrega o pedido com as linhas na ordem de inserção; nil se não existir.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, order_date, expected_delivery_date, status, created_at, updated_at
		FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.SupplierID, &o.OrderDate, &o.ExpectedDeliveryDate, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	items, err := r.itemsByOrder(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// List lista pedidos com paginação, linhas incluídas.
func (r *PurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, order_date, expected_delivery_date, status, created_at, updated_at
		FROM purchase_orders ORDER BY order_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.SupplierID, &o.OrderDate, &o.ExpectedDeliveryDate,
			&o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.itemsByOrder(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

// MarkCompleted faz o compare-and-set PENDING -> COMPLETED e devolve as linhas
// afetadas. O WHERE condicional decide a disputa entre completudes concorrentes:
// no máximo um UPDATE encontra PENDING.
func (r *PurchaseOrderRepo) MarkCompleted(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET status = 'COMPLETED', updated_at = now() WHERE id = $1 AND status = 'PENDING'`,
		id,
	)
	if err != nil {
		return 0, fmt.Errorf("mark purchase order completed: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// MarkCancelled faz o compare-and-set PENDING -> CANCELLED.
func (r *PurchaseOrderRepo) MarkCancelled(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET status = 'CANCELLED', updated_at = now() WHERE id = $1 AND status = 'PENDING'`,
		id,
	)
	if err != nil {
		return 0, fmt.Errorf("mark purchase order cancelled: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Exists informa se o pedido existe, em qualquer status.
func (r *PurchaseOrderRepo) Exists(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM purchase_orders WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("purchase order exists: %w", err)
	}
	return exists, nil
}

// Delete elimina o pedido; as linhas caem pelo ON DELETE CASCADE.
func (r *PurchaseOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) itemsByOrder(orderID string) ([]entity.PurchaseItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM purchase_items WHERE order_id = $1 ORDER BY seq ASC`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()
	var items []entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
