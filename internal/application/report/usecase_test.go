package report_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoque-pro/estoque-api/internal/application/report"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	infracsv "github.com/estoque-pro/estoque-api/internal/infrastructure/csv"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error               { return nil }
func (r *fakeProductRepo) Update(p *entity.Product) error               { return nil }
func (r *fakeProductRepo) IncrementQuantity(id string, delta int) error { return nil }
func (r *fakeProductRepo) SetQuantity(id string, quantity int) error    { return nil }
func (r *fakeProductRepo) ListLowStock(int) ([]*entity.Product, error)  { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                       { return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	if offset >= len(r.products) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.products) {
		end = len(r.products)
	}
	return r.products[offset:end], nil
}

func (r *fakeProductRepo) ListExpiringBefore(t time.Time) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.ExpirationDate != nil && p.ExpirationDate.Before(t) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error                    { return nil }
func (r *fakeSupplierRepo) GetByCNPJ(cnpj string) (*entity.Supplier, error)    { return nil, nil }
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error                    { return nil }
func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Delete(id string) error                             { return nil }

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error                    { return nil }
func (r *fakeCategoryRepo) Update(c *entity.Category) error                    { return nil }
func (r *fakeCategoryRepo) List(limit, offset int) ([]*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) Delete(id string) error                             { return nil }

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.categories[id], nil
}

type fakeOrderRepo struct {
	orders []*entity.PurchaseOrder
}

func (r *fakeOrderRepo) Create(o *entity.PurchaseOrder) error   { return nil }
func (r *fakeOrderRepo) AddItem(i *entity.PurchaseItem) error   { return nil }
func (r *fakeOrderRepo) MarkCompleted(id string) (int64, error) { return 0, nil }
func (r *fakeOrderRepo) MarkCancelled(id string) (int64, error) { return 0, nil }
func (r *fakeOrderRepo) Exists(id string) (bool, error)         { return false, nil }
func (r *fakeOrderRepo) Delete(id string) error                 { return nil }

func (r *fakeOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	if offset >= len(r.orders) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.orders) {
		end = len(r.orders)
	}
	return r.orders[offset:end], nil
}

type fakeReportRepo struct {
	saved []*entity.Report
}

func (r *fakeReportRepo) Create(rep *entity.Report) error {
	cp := *rep
	r.saved = append(r.saved, &cp)
	return nil
}

func (r *fakeReportRepo) GetByID(id string) (*entity.Report, error) {
	for _, rep := range r.saved {
		if rep.ID == id {
			return rep, nil
		}
	}
	return nil, nil
}

func (r *fakeReportRepo) List(limit, offset int) ([]*entity.Report, error) {
	return r.saved, nil
}

func newReportFixture() (*report.UseCase, *fakeReportRepo) {
	soon := time.Now().AddDate(0, 0, 10)
	far := time.Now().AddDate(0, 0, 90)

	products := &fakeProductRepo{products: []*entity.Product{
		{ID: "prod-1", Name: "Arroz 5kg", SupplierID: "sup-1", CategoryID: "cat-1", Quantity: 8, Price: decimal.NewFromFloat(24.90), ExpirationDate: &soon},
		{ID: "prod-2", Name: "Feijão 1kg", SupplierID: "sup-1", CategoryID: "cat-1", Quantity: 50, Price: decimal.NewFromFloat(7.80), ExpirationDate: &far},
		{ID: "prod-3", Name: "Sal 1kg", SupplierID: "sup-1", CategoryID: "cat-1", Quantity: 30, Price: decimal.NewFromFloat(3.20)},
	}}
	suppliers := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", SocialName: "Distribuidora Central LTDA"},
	}}
	categories := &fakeCategoryRepo{categories: map[string]*entity.Category{
		"cat-1": {ID: "cat-1", Name: "Alimentos"},
	}}
	orders := &fakeOrderRepo{orders: []*entity.PurchaseOrder{
		{
			ID:         "order-1",
			SupplierID: "sup-1",
			OrderDate:  time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			Status:     entity.OrderStatusPending,
			Items: []entity.PurchaseItem{
				{ProductID: "prod-1", Quantity: 20, UnitPrice: decimal.NewFromFloat(22.00)},
				{ProductID: "prod-2", Quantity: 10, UnitPrice: decimal.NewFromFloat(7.80)},
			},
		},
	}}
	reports := &fakeReportRepo{}

	uc := report.NewUseCase(products, suppliers, categories, orders, reports, map[string]report.Renderer{
		entity.ReportFormatCSV: infracsv.NewRenderer(),
	})
	return uc, reports
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_EstoqueEmCSVPersisteRelatorio(t *testing.T) {
	uc, reports := newReportFixture()

	out, err := uc.Generate(context.Background(), "user-1", entity.ReportTypeStock, entity.ReportFormatCSV, "")
	require.NoError(t, err)

	assert.Equal(t, entity.ReportTypeStock, out.Type)
	assert.Equal(t, entity.ReportFormatCSV, out.Format)
	assert.Equal(t, "user-1", out.GeneratedBy)
	assert.Greater(t, out.SizeBytes, 0)

	require.Len(t, reports.saved, 1, "cada geração persiste exatamente um relatório")
	content := string(reports.saved[0].Content)
	assert.Contains(t, content, "Produto,Fornecedor,Categoria")
	assert.Contains(t, content, "Arroz 5kg")
	assert.Contains(t, content, "Distribuidora Central LTDA")
	assert.Contains(t, content, "Alimentos")
}

func TestGenerate_ResumoDePedidosIncluiTotais(t *testing.T) {
	uc, reports := newReportFixture()

	_, err := uc.Generate(context.Background(), "user-1", entity.ReportTypePurchase, entity.ReportFormatCSV, "")
	require.NoError(t, err)

	require.Len(t, reports.saved, 1)
	content := string(reports.saved[0].Content)
	assert.Contains(t, content, "order-1")
	assert.Contains(t, content, "Distribuidora Central LTDA")
	assert.Contains(t, content, entity.OrderStatusPending)
	assert.Contains(t, content, "20/08/2026")
}

func TestGenerate_DetalheDePedidoListaItensETotalGeral(t *testing.T) {
	uc, reports := newReportFixture()

	_, err := uc.Generate(context.Background(), "user-1", entity.ReportTypePurchase, entity.ReportFormatCSV, "order-1")
	require.NoError(t, err)

	require.Len(t, reports.saved, 1)
	content := string(reports.saved[0].Content)
	assert.Contains(t, content, "Arroz 5kg")
	assert.Contains(t, content, "Feijão 1kg")
	assert.Contains(t, content, "Total geral")
}

func TestGenerate_DetalheDePedidoInexistente(t *testing.T) {
	uc, reports := newReportFixture()

	_, err := uc.Generate(context.Background(), "user-1", entity.ReportTypePurchase, entity.ReportFormatCSV, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, reports.saved)
}

func TestGenerate_VencimentoFiltraJanelaDe30Dias(t *testing.T) {
	uc, reports := newReportFixture()

	_, err := uc.Generate(context.Background(), "user-1", entity.ReportTypeExpiration, entity.ReportFormatCSV, "")
	require.NoError(t, err)

	require.Len(t, reports.saved, 1)
	content := string(reports.saved[0].Content)
	assert.Contains(t, content, "Arroz 5kg", "produto vencendo em 10 dias entra")
	assert.NotContains(t, content, "Feijão 1kg", "produto vencendo em 90 dias fica fora")
	assert.NotContains(t, content, "Sal 1kg", "produto sem validade fica fora")
}

func TestGenerate_TipoDesconhecido(t *testing.T) {
	uc, reports := newReportFixture()

	_, err := uc.Generate(context.Background(), "user-1", "AUDIT", entity.ReportFormatCSV, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, reports.saved)
}

func TestGenerate_FormatoNaoRegistrado(t *testing.T) {
	uc, reports := newReportFixture()

	_, err := uc.Generate(context.Background(), "user-1", entity.ReportTypeStock, entity.ReportFormatPDF, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, reports.saved)
}

func TestGetByID_DevolveBlobParaDownload(t *testing.T) {
	uc, _ := newReportFixture()

	out, err := uc.Generate(context.Background(), "user-1", entity.ReportTypeStock, entity.ReportFormatCSV, "")
	require.NoError(t, err)

	rep, err := uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, rep.Content)
	assert.True(t, strings.HasPrefix(string(rep.Content), "Produto,"))
}

func TestGetByID_Inexistente(t *testing.T) {
	uc, _ := newReportFixture()

	_, err := uc.GetByID(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
