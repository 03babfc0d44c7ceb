package repository

import "github.com/estoque-pro/estoque-api/internal/domain/entity"

// StockMovementRepository define o porto do livro de estoque.
// Append-only: não há operação de atualização.
type StockMovementRepository interface {
	Append(movement *entity.StockMovement) error
	// ListByProduct devolve todos os movimentos do produto, do mais recente
	// ao mais antigo. Um produto acumula vários movimentos ao longo do tempo.
	ListByProduct(productID string) ([]*entity.StockMovement, error)
	// DeleteByProduct remove em lote os movimentos do produto; usado no
	// cascade da remoção de produto.
	DeleteByProduct(productID string) error
}
