package entity

import "time"

// Tipos de relatório.
const (
	ReportTypeStock      = "STOCK"
	ReportTypePurchase   = "PURCHASE"
	ReportTypeExpiration = "EXPIRATION"
)

// Formatos de relatório.
const (
	ReportFormatPDF   = "PDF"
	ReportFormatExcel = "EXCEL"
	ReportFormatCSV   = "CSV"
)

// Report é o subproduto persistido de uma geração de relatório; imutável.
type Report struct {
	ID          string
	Type        string // STOCK | PURCHASE | EXPIRATION
	Format      string // PDF | EXCEL | CSV
	GeneratedAt time.Time
	GeneratedBy string // UserID
	Content     []byte
}
