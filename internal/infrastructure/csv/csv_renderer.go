// Package csv renderiza relatórios tabulares em CSV (cabeçalho + linhas;
// o título não entra no arquivo).
package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/estoque-pro/estoque-api/internal/application/report"
)

var _ report.Renderer = (*Renderer)(nil)

// Renderer implementa report.Renderer com encoding/csv.
type Renderer struct{}

// NewRenderer constrói o renderizador.
func NewRenderer() *Renderer { return &Renderer{} }

// Render serializa a tabela em CSV.
func (g *Renderer) Render(t *report.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("csv: escrever cabeçalho: %w", err)
	}
	for _, r := range t.Rows {
		if err := w.Write(r); err != nil {
			return nil, fmt.Errorf("csv: escrever linha: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
