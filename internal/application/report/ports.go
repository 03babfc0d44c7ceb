package report

// Table é a forma neutra de um relatório antes da renderização: título,
// cabeçalho e linhas já formatadas como texto.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Renderer materializa uma Table em um formato de saída (PDF, EXCEL, CSV).
type Renderer interface {
	Render(t *Table) ([]byte, error)
}
