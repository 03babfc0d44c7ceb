package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// SupplierUseCase CRUD de fornecedores. CNPJ é único: duplicata vira ErrDuplicate.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
	categoryRepo repository.CategoryRepository
}

// NewSupplierUseCase constrói o caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository, categoryRepo repository.CategoryRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo, categoryRepo: categoryRepo}
}

// Create registra um fornecedor; a categoria deve existir e o CNPJ ser inédito.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	supplier := &entity.Supplier{
		ID:         uuid.New().String(),
		CNPJ:       in.CNPJ,
		SocialName: in.SocialName,
		CEP:        in.CEP,
		CategoryID: in.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID devolve o fornecedor; ErrNotFound se não existir.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List devolve fornecedores com paginação.
func (uc *SupplierUseCase) List(ctx context.Context, limit, offset int) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.supplierRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// Update altera os campos enviados. O CNPJ é imutável após o cadastro.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	if in.SocialName != nil {
		supplier.SocialName = *in.SocialName
	}
	if in.CEP != nil {
		supplier.CEP = *in.CEP
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		supplier.CategoryID = *in.CategoryID
	}
	supplier.UpdatedAt = time.Now()

	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete remove o fornecedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.supplierRepo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:         s.ID,
		CNPJ:       s.CNPJ,
		SocialName: s.SocialName,
		CEP:        s.CEP,
		CategoryID: s.CategoryID,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
