package dto

import "time"

// ReportResponse metadados de um relatório gerado (sem o blob).
type ReportResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Format      string    `json:"format"`
	GeneratedAt time.Time `json:"generated_at"`
	GeneratedBy string    `json:"generated_by"`
	SizeBytes   int       `json:"size_bytes"`
}
