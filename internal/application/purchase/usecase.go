package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// Limiar de estoque baixo e janela de vencimento da varredura de sugestões.
const (
	lowStockThreshold = 10
	expiryWindowDays  = 30
)

// UseCase gerencia o ciclo de vida de pedidos de compra: criação atômica,
// completude com reconciliação do livro de estoque, cancelamento e leituras.
type UseCase struct {
	txRunner     TxRunner
	orderRepo    repository.PurchaseOrderRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	txRunner TxRunner,
	orderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// Create cria um pedido PENDING com orderDate=now e persiste as linhas na
// mesma transação: se qualquer produto não existir ou uma linha for inválida,
// nada é persistido.
func (uc *UseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:                   uuid.New().String(),
		SupplierID:           supplier.ID,
		OrderDate:            now,
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		Status:               entity.OrderStatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		productRepo repository.ProductRepository,
		_ repository.StockMovementRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, itemIn := range in.Items {
			product, err := productRepo.GetByID(itemIn.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			item := entity.PurchaseItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  itemIn.Quantity,
				UnitPrice: itemIn.UnitPrice,
			}
			if err := item.Validate(); err != nil {
				return err
			}
			if err := orderRepo.AddItem(&item); err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Complete transiciona o pedido PENDING -> COMPLETED e reconcilia o estoque:
// para cada linha, na ordem da lista, incrementa o saldo do produto e grava um
// movimento INBOUND no livro. Tudo na mesma transação — ou a completude é
// integral, ou o pedido permanece PENDING sem alteração de estoque.
//
// Não é idempotente: a segunda chamada falha com ErrInvalidState porque o
// compare-and-set no status não encontra mais PENDING. Duas completudes
// concorrentes do mesmo pedido disputam o mesmo UPDATE condicional; no máximo
// uma vence.
func (uc *UseCase) Complete(ctx context.Context, orderID string) (*dto.PurchaseOrderResponse, error) {
	var completed *entity.PurchaseOrder

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		productRepo repository.ProductRepository,
		stockRepo repository.StockMovementRepository,
	) error {
		affected, err := orderRepo.MarkCompleted(orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			exists, err := orderRepo.Exists(orderID)
			if err != nil {
				return err
			}
			if !exists {
				return domain.ErrNotFound
			}
			return fmt.Errorf("only PENDING orders can be completed: %w", domain.ErrInvalidState)
		}

		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		for _, item := range order.Items {
			if err := productRepo.IncrementQuantity(item.ProductID, item.Quantity); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:           uuid.New().String(),
				ProductID:    item.ProductID,
				SupplierID:   order.SupplierID,
				Quantity:     item.Quantity,
				Type:         entity.MovementInbound,
				MovementDate: now,
				PurchasedQty: item.Quantity,
				CreatedAt:    now,
			}
			if err := stockRepo.Append(mov); err != nil {
				return err
			}
		}
		completed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(completed), nil
}

// Cancel transiciona o pedido PENDING -> CANCELLED com o mesmo compare-and-set
// da completude. Não toca o estoque: um pedido PENDING ainda não movimentou
// saldo, portanto não há nada a reverter.
func (uc *UseCase) Cancel(ctx context.Context, orderID string) (*dto.PurchaseOrderResponse, error) {
	affected, err := uc.orderRepo.MarkCancelled(orderID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		exists, err := uc.orderRepo.Exists(orderID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("only PENDING orders can be cancelled: %w", domain.ErrInvalidState)
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID devolve o pedido com as linhas; ErrNotFound se não existir.
func (uc *UseCase) GetByID(ctx context.Context, orderID string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List devolve os pedidos com paginação.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]dto.PurchaseOrderResponse, error) {
	orders, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// Delete remove o pedido e suas linhas (cascade). Não há salvaguarda contra
// a remoção de pedidos COMPLETED.
func (uc *UseCase) Delete(ctx context.Context, orderID string) error {
	exists, err := uc.orderRepo.Exists(orderID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(orderID)
}

// Suggest varre o catálogo em busca de produtos com estoque baixo
// (quantity < 10) e produtos que vencem nos próximos 30 dias. Alimenta a
// varredura agendada das 09:00 e o endpoint de sugestões.
func (uc *UseCase) Suggest(ctx context.Context) (*dto.PurchaseSuggestionsResponse, error) {
	lowStock, err := uc.productRepo.ListLowStock(lowStockThreshold)
	if err != nil {
		return nil, err
	}
	expiring, err := uc.productRepo.ListExpiringBefore(time.Now().AddDate(0, 0, expiryWindowDays))
	if err != nil {
		return nil, err
	}

	out := &dto.PurchaseSuggestionsResponse{
		LowStock:     make([]dto.ProductResponse, 0, len(lowStock)),
		ExpiringSoon: make([]dto.ProductResponse, 0, len(expiring)),
	}
	for _, p := range lowStock {
		out.LowStock = append(out.LowStock, toProductResponse(p))
	}
	for _, p := range expiring {
		out.ExpiringSoon = append(out.ExpiringSoon, toProductResponse(p))
	}
	return out, nil
}

func toOrderResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.PurchaseItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.PurchaseItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total(),
		})
	}
	return &dto.PurchaseOrderResponse{
		ID:                   o.ID,
		SupplierID:           o.SupplierID,
		OrderDate:            o.OrderDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		Status:               o.Status,
		Items:                items,
		TotalAmount:          o.TotalAmount(),
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		SupplierID:     p.SupplierID,
		CategoryID:     p.CategoryID,
		Price:          p.Price,
		Quantity:       p.Quantity,
		PurchaseDate:   p.PurchaseDate,
		ExpirationDate: p.ExpirationDate,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
