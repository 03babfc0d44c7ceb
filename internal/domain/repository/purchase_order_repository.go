package repository

import "github.com/estoque-pro/estoque-api/internal/domain/entity"

// PurchaseOrderRepository define o porto de persistência para PurchaseOrder
// e suas linhas (posse exclusiva, cascade delete).
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	AddItem(item *entity.PurchaseItem) error
	// GetByID carrega o pedido com as linhas na ordem de inserção; nil se não existir.
	GetByID(id string) (*entity.PurchaseOrder, error)
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
	// MarkCompleted faz o compare-and-set PENDING -> COMPLETED
	// (UPDATE ... WHERE id=$1 AND status='PENDING') e devolve as linhas afetadas.
	// Zero linhas: o pedido não existe ou não está PENDING — o caso de uso distingue.
	MarkCompleted(id string) (int64, error)
	// MarkCancelled faz o compare-and-set PENDING -> CANCELLED.
	MarkCancelled(id string) (int64, error)
	Exists(id string) (bool, error)
	Delete(id string) error
}
