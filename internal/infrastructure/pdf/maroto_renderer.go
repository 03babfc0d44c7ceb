// Package pdf renderiza relatórios tabulares em PDF A4 usando Maroto v2:
// título, cabeçalho da tabela em destaque e uma linha por registro.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/estoque-pro/estoque-api/internal/application/report"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.Renderer = (*MarotoRenderer)(nil)

// MarotoRenderer implementa report.Renderer usando Maroto v2.
type MarotoRenderer struct{}

// NewMarotoRenderer constrói o renderizador.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// Render gera o PDF e devolve os bytes.
func (g *MarotoRenderer) Render(t *report.Table) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(t.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(t.Title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow(t.Headers))
	for _, r := range t.Rows {
		m.AddRows(dataRow(r, len(t.Headers)))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(t.Rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(title string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

func headerRow(headers []string) core.Row {
	width := columnWidth(len(headers))
	cols := make([]core.Col, 0, len(headers))
	for _, h := range headers {
		cols = append(cols, col.New(width).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func dataRow(cells []string, headerCount int) core.Row {
	width := columnWidth(headerCount)
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(width).Add(text.New(c, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func footerRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d registro(s)", count), props.Text{
				Size: 7, Color: colorGray, Top: 2, Align: align.Right,
			}),
		),
	)
}

// columnWidth distribui as 12 colunas da grade do Maroto entre as colunas da
// tabela (mínimo 1).
func columnWidth(headers int) int {
	if headers <= 0 {
		return 12
	}
	w := 12 / headers
	if w < 1 {
		w = 1
	}
	return w
}
