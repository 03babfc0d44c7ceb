package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/application/purchase"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// ProductUseCase CRUD de produtos do catálogo. A remoção cascateia os
// movimentos do livro de estoque na mesma transação.
type ProductUseCase struct {
	txRunner     purchase.TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(
	txRunner purchase.TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	categoryRepo repository.CategoryRepository,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		categoryRepo: categoryRepo,
	}
}

// Create registra um produto novo; fornecedor e categoria devem existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	purchaseDate := now
	if in.PurchaseDate != nil {
		purchaseDate = *in.PurchaseDate
	}
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		SupplierID:     in.SupplierID,
		CategoryID:     in.CategoryID,
		Price:          in.Price,
		Quantity:       in.Quantity,
		PurchaseDate:   purchaseDate,
		ExpirationDate: in.ExpirationDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// GetByID devolve o produto; ErrNotFound se não existir.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(product)
	return &out, nil
}

// List devolve produtos com paginação.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items:  make([]dto.ProductResponse, 0, len(products)),
		Limit:  limit,
		Offset: offset,
	}
	for _, p := range products {
		out.Items = append(out.Items, toProductResponse(p))
	}
	return out, nil
}

// Update altera os campos enviados; referências novas devem existir. O saldo
// nunca entra no UPDATE cadastral: se a requisição trouxer quantity, ele é
// atribuído em um UPDATE atômico separado, de modo que uma edição sem quantity
// jamais sobrescreva um incremento de completude que chegou no meio.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		product.SupplierID = *in.SupplierID
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.ExpirationDate != nil {
		product.ExpirationDate = in.ExpirationDate
	}
	product.UpdatedAt = time.Now()

	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	if in.Quantity != nil {
		if err := uc.productRepo.SetQuantity(id, *in.Quantity); err != nil {
			return nil, err
		}
	}
	out := toProductResponse(product)
	return &out, nil
}

// Delete remove o produto e, na mesma transação, todos os seus movimentos do
// livro de estoque (o livro só perde registros neste cascade).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.PurchaseOrderRepository,
		productRepo repository.ProductRepository,
		stockRepo repository.StockMovementRepository,
	) error {
		if err := stockRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
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
