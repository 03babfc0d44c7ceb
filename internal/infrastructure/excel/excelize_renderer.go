// Package excel renderiza relatórios tabulares em XLSX usando excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/estoque-pro/estoque-api/internal/application/report"
)

const sheetName = "Relatório"

var _ report.Renderer = (*ExcelizeRenderer)(nil)

// ExcelizeRenderer implementa report.Renderer usando excelize.
type ExcelizeRenderer struct{}

// NewExcelizeRenderer constrói o renderizador.
func NewExcelizeRenderer() *ExcelizeRenderer { return &ExcelizeRenderer{} }

// Render gera a planilha e devolve os bytes. Linha 1: título; linha 2:
// cabeçalho em negrito; demais linhas: dados.
func (g *ExcelizeRenderer) Render(t *report.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: criar aba: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	if err := f.SetCellValue(sheetName, "A1", t.Title); err != nil {
		return nil, fmt.Errorf("excel: escrever título: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: criar estilo: %w", err)
	}

	for i, h := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, fmt.Errorf("excel: coordenada do cabeçalho: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: escrever cabeçalho: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, boldStyle); err != nil {
			return nil, fmt.Errorf("excel: estilizar cabeçalho: %w", err)
		}
	}

	for rowIdx, cells := range t.Rows {
		for colIdx, v := range cells {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+3)
			if err != nil {
				return nil, fmt.Errorf("excel: coordenada da célula: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: escrever célula: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar planilha: %w", err)
	}
	return buf.Bytes(), nil
}
