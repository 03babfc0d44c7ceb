package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// UseCase expõe o livro de estoque: registros imutáveis de entradas e saídas.
// Não há API de mutação de registros existentes.
type UseCase struct {
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
}

// NewUseCase constrói o caso de uso do livro de estoque.
func NewUseCase(movementRepo repository.StockMovementRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{movementRepo: movementRepo, productRepo: productRepo}
}

// RegisterEntry grava uma entrada manual no livro, fotografando o saldo atual
// do produto como quantidade comprada.
func (uc *UseCase) RegisterEntry(ctx context.Context, productID string) (*dto.StockMovementResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		SupplierID:   product.SupplierID,
		Quantity:     product.Quantity,
		Type:         entity.MovementInbound,
		MovementDate: now,
		PurchasedQty: product.Quantity,
		CreatedAt:    now,
	}
	if err := uc.movementRepo.Append(mov); err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// ListByProduct devolve todos os movimentos do produto (lista, não registro único).
func (uc *UseCase) ListByProduct(ctx context.Context, productID string) ([]dto.StockMovementResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	return &dto.StockMovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		SupplierID:   m.SupplierID,
		Quantity:     m.Quantity,
		Type:         m.Type,
		MovementDate: m.MovementDate,
		PurchasedQty: m.PurchasedQty,
	}
}
