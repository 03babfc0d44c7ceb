package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/application/usecase"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

// prodStore estado compartilhado pelos fakes de produto e do livro.
type prodStore struct {
	products  map[string]entity.Product
	movements []entity.StockMovement
}

// prodRepo reproduz a semântica do adaptador real: Update grava só os campos
// cadastrais (o saldo armazenado é preservado); o saldo muda apenas por
// IncrementQuantity/SetQuantity. afterGet, quando definido, roda logo após
// GetByID, para intercalar uma escrita concorrente entre a leitura e o UPDATE.
type prodRepo struct {
	s        *prodStore
	afterGet func()
}

func (r *prodRepo) Create(p *entity.Product) error {
	r.s.products[p.ID] = *p
	return nil
}

func (r *prodRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	out := p
	if r.afterGet != nil {
		r.afterGet()
	}
	return &out, nil
}

func (r *prodRepo) Update(p *entity.Product) error {
	cur, ok := r.s.products[p.ID]
	if !ok {
		return nil
	}
	saved := *p
	saved.Quantity = cur.Quantity
	r.s.products[p.ID] = saved
	return nil
}

func (r *prodRepo) IncrementQuantity(productID string, delta int) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity += delta
	r.s.products[productID] = p
	return nil
}

func (r *prodRepo) SetQuantity(productID string, quantity int) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	r.s.products[productID] = p
	return nil
}

func (r *prodRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		prod := p
		out = append(out, &prod)
	}
	return out, nil
}

func (r *prodRepo) ListLowStock(threshold int) ([]*entity.Product, error)     { return nil, nil }
func (r *prodRepo) ListExpiringBefore(t time.Time) ([]*entity.Product, error) { return nil, nil }

func (r *prodRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

type prodStockRepo struct{ s *prodStore }

func (r *prodStockRepo) Append(m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r *prodStockRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			mov := m
			out = append(out, &mov)
		}
	}
	return out, nil
}

func (r *prodStockRepo) DeleteByProduct(productID string) error {
	var kept []entity.StockMovement
	for _, m := range r.s.movements {
		if m.ProductID != productID {
			kept = append(kept, m)
		}
	}
	r.s.movements = kept
	return nil
}

type prodSupplierRepo struct{ suppliers map[string]entity.Supplier }

func (r *prodSupplierRepo) Create(s *entity.Supplier) error                    { return nil }
func (r *prodSupplierRepo) GetByCNPJ(cnpj string) (*entity.Supplier, error)    { return nil, nil }
func (r *prodSupplierRepo) Update(s *entity.Supplier) error                    { return nil }
func (r *prodSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) { return nil, nil }
func (r *prodSupplierRepo) Delete(id string) error                             { return nil }

func (r *prodSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if s, ok := r.suppliers[id]; ok {
		out := s
		return &out, nil
	}
	return nil, nil
}

type prodCategoryRepo struct{ categories map[string]entity.Category }

func (r *prodCategoryRepo) Create(c *entity.Category) error                    { return nil }
func (r *prodCategoryRepo) Update(c *entity.Category) error                    { return nil }
func (r *prodCategoryRepo) List(limit, offset int) ([]*entity.Category, error) { return nil, nil }
func (r *prodCategoryRepo) Delete(id string) error                             { return nil }

func (r *prodCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		out := c
		return &out, nil
	}
	return nil, nil
}

// prodTxRunner executa fn direto sobre o estado (sem rollback; os casos de uso
// de catálogo testados aqui não dependem da reversão).
type prodTxRunner struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockMovementRepository
}

func (r *prodTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockMovementRepository,
) error) error {
	return fn(nil, r.productRepo, r.stockRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type prodFixture struct {
	store       *prodStore
	productRepo *prodRepo
	uc          *usecase.ProductUseCase

	supplierID string
	categoryID string
	productID  string
}

func newProdFixture(t *testing.T) *prodFixture {
	t.Helper()
	f := &prodFixture{
		store:      &prodStore{products: make(map[string]entity.Product)},
		supplierID: "sup-1",
		categoryID: "cat-1",
		productID:  "prod-1",
	}
	f.productRepo = &prodRepo{s: f.store}

	f.store.products[f.productID] = entity.Product{
		ID:         f.productID,
		Name:       "Arroz 5kg",
		SupplierID: f.supplierID,
		CategoryID: f.categoryID,
		Price:      decimal.NewFromFloat(24.90),
		Quantity:   8,
	}

	suppliers := &prodSupplierRepo{suppliers: map[string]entity.Supplier{
		f.supplierID: {ID: f.supplierID, SocialName: "Distribuidora Central LTDA"},
	}}
	categories := &prodCategoryRepo{categories: map[string]entity.Category{
		f.categoryID: {ID: f.categoryID, Name: "Alimentos"},
	}}
	stockRepo := &prodStockRepo{s: f.store}
	txRunner := &prodTxRunner{productRepo: f.productRepo, stockRepo: stockRepo}

	f.uc = usecase.NewProductUseCase(txRunner, f.productRepo, suppliers, categories)
	return f
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// ──────────────────────────────────────────────────────────────────────────────
// Update — o saldo nunca entra no UPDATE cadastral
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_EdicaoCadastralNaoApagaIncrementoConcorrente(t *testing.T) {
	f := newProdFixture(t)

	// Uma completude de pedido incrementa o saldo entre a leitura do caso de
	// uso e a escrita cadastral
	f.productRepo.afterGet = func() {
		f.productRepo.afterGet = nil
		require.NoError(t, f.productRepo.IncrementQuantity(f.productID, 20))
	}

	_, err := f.uc.Update(context.Background(), f.productID, dto.UpdateProductRequest{
		Name: strPtr("Arroz Integral 5kg"),
	})
	require.NoError(t, err)

	got := f.store.products[f.productID]
	assert.Equal(t, "Arroz Integral 5kg", got.Name)
	assert.Equal(t, 28, got.Quantity,
		"a edição sem quantity não pode sobrescrever o incremento concorrente")
}

func TestUpdate_QuantityExplicitaEhAtribuida(t *testing.T) {
	f := newProdFixture(t)

	out, err := f.uc.Update(context.Background(), f.productID, dto.UpdateProductRequest{
		Quantity: intPtr(100),
	})
	require.NoError(t, err)
	assert.Equal(t, 100, out.Quantity)
	assert.Equal(t, 100, f.store.products[f.productID].Quantity)
}

func TestUpdate_FornecedorInexistente(t *testing.T) {
	f := newProdFixture(t)

	_, err := f.uc.Update(context.Background(), f.productID, dto.UpdateProductRequest{
		SupplierID: strPtr("fornecedor-fantasma"),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, f.supplierID, f.store.products[f.productID].SupplierID)
}

func TestUpdate_ProdutoInexistente(t *testing.T) {
	f := newProdFixture(t)

	_, err := f.uc.Update(context.Background(), "produto-fantasma", dto.UpdateProductRequest{
		Name: strPtr("Qualquer"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — cascade do livro de estoque
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_RemoveProdutoEMovimentos(t *testing.T) {
	f := newProdFixture(t)
	f.store.movements = []entity.StockMovement{
		{ID: "mov-1", ProductID: f.productID, Quantity: 8, Type: entity.MovementInbound},
		{ID: "mov-2", ProductID: "outro-produto", Quantity: 3, Type: entity.MovementInbound},
	}

	require.NoError(t, f.uc.Delete(context.Background(), f.productID))

	_, ok := f.store.products[f.productID]
	assert.False(t, ok)
	require.Len(t, f.store.movements, 1, "só os movimentos do produto removido saem do livro")
	assert.Equal(t, "outro-produto", f.store.movements[0].ProductID)
}
