package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementação do porto ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository constrói o adaptador de persistência para relatórios.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Create persiste um relatório gerado, blob incluído.
func (r *ReportRepo) Create(report *entity.Report) error {
	query := `
		INSERT INTO reports (id, type, format, generated_at, generated_by, content)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.Type, report.Format, report.GeneratedAt, report.GeneratedBy, report.Content,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByID obtém um relatório com o blob; nil se não existir.
func (r *ReportRepo) GetByID(id string) (*entity.Report, error) {
	query := `SELECT id, type, format, generated_at, generated_by, content FROM reports WHERE id = $1`
	var rep entity.Report
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rep.ID, &rep.Type, &rep.Format, &rep.GeneratedAt, &rep.GeneratedBy, &rep.Content,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &rep, nil
}

// List lista relatórios com paginação, blob incluído (o caso de uso expõe só
// os metadados).
func (r *ReportRepo) List(limit, offset int) ([]*entity.Report, error) {
	query := `
		SELECT id, type, format, generated_at, generated_by, content
		FROM reports ORDER BY generated_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.Report
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(&rep.ID, &rep.Type, &rep.Format, &rep.GeneratedAt, &rep.GeneratedBy, &rep.Content); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}
