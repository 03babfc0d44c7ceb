package repository

import "github.com/estoque-pro/estoque-api/internal/domain/entity"

// ReportRepository define o porto de persistência para Report (imutável após criação).
type ReportRepository interface {
	Create(report *entity.Report) error
	GetByID(id string) (*entity.Report, error)
	List(limit, offset int) ([]*entity.Report, error)
}
