package purchase

import (
	"context"

	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante a atomicidade da criação e
// da completude de pedidos: ou tudo é aplicado, ou nada é.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		productRepo repository.ProductRepository,
		stockRepo repository.StockMovementRepository,
	) error) error
}
