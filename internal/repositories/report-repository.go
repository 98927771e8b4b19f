package repositories

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportOrderRow é uma linha pronta para a planilha de exportação.
type ReportOrderRow struct {
	Numero         string
	Placa          string
	Modelo         string
	Descricao      string
	Status         string
	MechanicNome   null.String
	ExecutionOrder null.Int
	CreatedAt      time.Time
	UpdatedAt      null.Time
}

type ReportRepositoryInterface interface {
	ListOrdersForExport(ctx context.Context, from, to time.Time) ([]ReportOrderRow, error)
	CountOrdersByStatus(ctx context.Context) (map[string]uint64, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &ReportRepository{storage: storage}
}

func (r *ReportRepository) ListOrdersForExport(ctx context.Context, from, to time.Time) ([]ReportOrderRow, error) {
	query := `
		SELECT o.numero, v.placa, v.modelo, o.descricao, o.status, m.nome, o.execution_order, o.created_at, o.updated_at
		FROM work_orders o
		JOIN vehicles v ON v.id = o.vehicle_id
		LEFT JOIN mechanics m ON m.id = o.mechanic_id
		WHERE o.deleted_at IS NULL
		  AND o.created_at >= $1 AND o.created_at < $2
		ORDER BY o.created_at ASC, o.id ASC`
	rows, err := r.storage.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]ReportOrderRow, 0)
	for rows.Next() {
		var row ReportOrderRow
		if err := rows.Scan(&row.Numero, &row.Placa, &row.Modelo, &row.Descricao, &row.Status,
			&row.MechanicNome, &row.ExecutionOrder, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

func (r *ReportRepository) CountOrdersByStatus(ctx context.Context) (map[string]uint64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM work_orders
		WHERE deleted_at IS NULL
		GROUP BY status`
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]uint64)
	for rows.Next() {
		var status string
		var count uint64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
