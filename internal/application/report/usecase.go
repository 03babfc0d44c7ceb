package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// Página usada para varrer o catálogo inteiro ao montar relatórios.
const reportPageSize = 1000

// Janela de vencimento do relatório de expiração, igual à das sugestões.
const expiryWindowDays = 30

// UseCase gera relatórios (STOCK, PURCHASE, EXPIRATION) nos formatos
// registrados e persiste cada geração como um Report imutável.
type UseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	categoryRepo repository.CategoryRepository
	orderRepo    repository.PurchaseOrderRepository
	reportRepo   repository.ReportRepository
	renderers    map[string]Renderer
	printer      *message.Printer
}

// NewUseCase constrói o caso de uso com os renderizadores por formato.
func NewUseCase(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	categoryRepo repository.CategoryRepository,
	orderRepo repository.PurchaseOrderRepository,
	reportRepo repository.ReportRepository,
	renderers map[string]Renderer,
) *UseCase {
	return &UseCase{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		reportRepo:   reportRepo,
		renderers:    renderers,
		printer:      message.NewPrinter(language.BrazilianPortuguese),
	}
}

// Generate monta o relatório pedido, renderiza no formato escolhido e
// persiste o resultado. Para o tipo PURCHASE, orderID não vazio gera o
// detalhamento de um pedido; vazio gera o resumo de todos os pedidos.
// Tipo ou formato desconhecido vira ErrInvalidInput.
func (uc *UseCase) Generate(ctx context.Context, userID, reportType, format, orderID string) (*dto.ReportResponse, error) {
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	var (
		table *Table
		err   error
	)
	switch reportType {
	case entity.ReportTypeStock:
		table, err = uc.stockTable()
	case entity.ReportTypePurchase:
		if orderID != "" {
			table, err = uc.orderDetailTable(orderID)
		} else {
			table, err = uc.purchaseTable()
		}
	case entity.ReportTypeExpiration:
		table, err = uc.expirationTable()
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}

	content, err := renderer.Render(table)
	if err != nil {
		return nil, err
	}

	rep := &entity.Report{
		ID:          uuid.New().String(),
		Type:        reportType,
		Format:      format,
		GeneratedAt: time.Now(),
		GeneratedBy: userID,
		Content:     content,
	}
	if err := uc.reportRepo.Create(rep); err != nil {
		return nil, err
	}
	return toReportResponse(rep), nil
}

// GetByID devolve o relatório completo, com o blob, para download.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	rep, err := uc.reportRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, domain.ErrNotFound
	}
	return rep, nil
}

// List devolve os metadados das gerações anteriores.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]dto.ReportResponse, error) {
	reports, err := uc.reportRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, *toReportResponse(r))
	}
	return out, nil
}

func (uc *UseCase) stockTable() (*Table, error) {
	products, err := uc.allProducts()
	if err != nil {
		return nil, err
	}
	suppliers := newNameCache(func(id string) (string, error) {
		s, err := uc.supplierRepo.GetByID(id)
		if err != nil || s == nil {
			return "", err
		}
		return s.SocialName, nil
	})
	categories := newNameCache(func(id string) (string, error) {
		c, err := uc.categoryRepo.GetByID(id)
		if err != nil || c == nil {
			return "", err
		}
		return c.Name, nil
	})

	t := &Table{
		Title: "Relatório de Estoque",
		Headers: []string{
			"Produto", "Fornecedor", "Categoria", "Qtde",
			"Preço Unitário", "Valor Total", "Compra", "Validade",
		},
	}
	for _, p := range products {
		supplierName, err := suppliers.get(p.SupplierID)
		if err != nil {
			return nil, err
		}
		categoryName, err := categories.get(p.CategoryID)
		if err != nil {
			return nil, err
		}
		total := p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
		expiration := "-"
		if p.ExpirationDate != nil {
			expiration = p.ExpirationDate.Format("02/01/2006")
		}
		t.Rows = append(t.Rows, []string{
			p.Name,
			supplierName,
			categoryName,
			fmt.Sprintf("%d", p.Quantity),
			uc.money(p.Price.InexactFloat64()),
			uc.money(total.InexactFloat64()),
			p.PurchaseDate.Format("02/01/2006"),
			expiration,
		})
	}
	return t, nil
}

func (uc *UseCase) purchaseTable() (*Table, error) {
	var orders []*entity.PurchaseOrder
	for offset := 0; ; offset += reportPageSize {
		page, err := uc.orderRepo.List(reportPageSize, offset)
		if err != nil {
			return nil, err
		}
		orders = append(orders, page...)
		if len(page) < reportPageSize {
			break
		}
	}
	suppliers := newNameCache(func(id string) (string, error) {
		s, err := uc.supplierRepo.GetByID(id)
		if err != nil || s == nil {
			return "", err
		}
		return s.SocialName, nil
	})

	t := &Table{
		Title:   "Relatório de Pedidos de Compra",
		Headers: []string{"Pedido", "Fornecedor", "Data", "Status", "Itens", "Valor Total"},
	}
	for _, o := range orders {
		supplierName, err := suppliers.get(o.SupplierID)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, []string{
			o.ID,
			supplierName,
			o.OrderDate.Format("02/01/2006"),
			o.Status,
			fmt.Sprintf("%d", len(o.Items)),
			uc.money(o.TotalAmount().InexactFloat64()),
		})
	}
	return t, nil
}

// orderDetailTable monta o detalhamento de um pedido: uma linha por item e a
// linha final com o total geral.
func (uc *UseCase) orderDetailTable(orderID string) (*Table, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	supplierName := order.SupplierID
	if s, err := uc.supplierRepo.GetByID(order.SupplierID); err != nil {
		return nil, err
	} else if s != nil {
		supplierName = s.SocialName
	}
	products := newNameCache(func(id string) (string, error) {
		p, err := uc.productRepo.GetByID(id)
		if err != nil || p == nil {
			return "", err
		}
		return p.Name, nil
	})

	t := &Table{
		Title: fmt.Sprintf("Pedido de Compra %s — %s — %s — %s",
			order.ID, supplierName, order.OrderDate.Format("02/01/2006"), order.Status),
		Headers: []string{"Produto", "Quantidade", "Preço Unitário", "Total"},
	}
	for _, it := range order.Items {
		name, err := products.get(it.ProductID)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, []string{
			name,
			fmt.Sprintf("%d", it.Quantity),
			uc.money(it.UnitPrice.InexactFloat64()),
			uc.money(it.Total().InexactFloat64()),
		})
	}
	t.Rows = append(t.Rows, []string{
		"Total geral", "", "", uc.money(order.TotalAmount().InexactFloat64()),
	})
	return t, nil
}

func (uc *UseCase) expirationTable() (*Table, error) {
	products, err := uc.productRepo.ListExpiringBefore(time.Now().AddDate(0, 0, expiryWindowDays))
	if err != nil {
		return nil, err
	}
	t := &Table{
		Title:   "Relatório de Produtos a Vencer",
		Headers: []string{"Produto", "Quantidade", "Vencimento"},
	}
	for _, p := range products {
		expiration := "-"
		if p.ExpirationDate != nil {
			expiration = p.ExpirationDate.Format("02/01/2006")
		}
		t.Rows = append(t.Rows, []string{
			p.Name,
			fmt.Sprintf("%d", p.Quantity),
			expiration,
		})
	}
	return t, nil
}

func (uc *UseCase) allProducts() ([]*entity.Product, error) {
	var products []*entity.Product
	for offset := 0; ; offset += reportPageSize {
		page, err := uc.productRepo.List(reportPageSize, offset)
		if err != nil {
			return nil, err
		}
		products = append(products, page...)
		if len(page) < reportPageSize {
			break
		}
	}
	return products, nil
}

// nameCache memoiza lookups de nome por id dentro de uma única geração.
type nameCache struct {
	lookup func(id string) (string, error)
	byID   map[string]string
}

func newNameCache(lookup func(id string) (string, error)) *nameCache {
	return &nameCache{lookup: lookup, byID: make(map[string]string)}
}

func (c *nameCache) get(id string) (string, error) {
	if name, ok := c.byID[id]; ok {
		return name, nil
	}
	name, err := c.lookup(id)
	if err != nil {
		return "", err
	}
	if name == "" {
		name = id
	}
	c.byID[id] = name
	return name, nil
}

// money formata valores em reais no padrão pt-BR (R$ 1.234,56).
func (uc *UseCase) money(v float64) string {
	return uc.printer.Sprintf("R$ %.2f", v)
}

func toReportResponse(r *entity.Report) *dto.ReportResponse {
	return &dto.ReportResponse{
		ID:          r.ID,
		Type:        r.Type,
		Format:      r.Format,
		GeneratedAt: r.GeneratedAt,
		GeneratedBy: r.GeneratedBy,
		SizeBytes:   len(r.Content),
	}
}
