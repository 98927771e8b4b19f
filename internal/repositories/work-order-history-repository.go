package repositories

import (
	"context"

	"fleet-system/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const historyFields = "id, work_order_id, tx_id, from_status, to_status, from_department, to_department, observacao, actor_id, actor_nome, created_at"

type WorkOrderHistoryRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, entry *entities.WorkOrderHistory) error
	FindByOrderID(ctx context.Context, orderID uint64) ([]entities.WorkOrderHistory, error)
	FindByOrderIDs(ctx context.Context, orderIDs []uint64) (map[uint64][]entities.WorkOrderHistory, error)
}

type WorkOrderHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewWorkOrderHistoryRepository(storage *pgxpool.Pool) WorkOrderHistoryRepositoryInterface {
	return &WorkOrderHistoryRepository{storage: storage}
}

func (r *WorkOrderHistoryRepository) CreateInTx(ctx context.Context, tx pgx.Tx, entry *entities.WorkOrderHistory) error {
	query := `
		INSERT INTO work_order_history (work_order_id, tx_id, from_status, to_status, from_department, to_department, observacao, actor_id, actor_nome)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := tx.Exec(ctx, query,
		entry.WorkOrderID, entry.TxID,
		entry.FromStatus, entry.ToStatus,
		entry.FromDepartment, entry.ToDepartment,
		entry.Observacao, entry.ActorID, entry.ActorNome)
	return err
}

func scanHistory(rows pgx.Rows) ([]entities.WorkOrderHistory, error) {
	entries := make([]entities.WorkOrderHistory, 0)
	for rows.Next() {
		var h entities.WorkOrderHistory
		if err := rows.Scan(
			&h.ID, &h.WorkOrderID, &h.TxID,
			&h.FromStatus, &h.ToStatus,
			&h.FromDepartment, &h.ToDepartment,
			&h.Observacao, &h.ActorID, &h.ActorNome, &h.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, h)
	}
	return entries, rows.Err()
}

// FindByOrderID devolve a trilha completa em ordem cronológica.
func (r *WorkOrderHistoryRepository) FindByOrderID(ctx context.Context, orderID uint64) ([]entities.WorkOrderHistory, error) {
	query := `
		SELECT ` + historyFields + `
		FROM work_order_history
		WHERE work_order_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.storage.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHistory(rows)
}

// FindByOrderIDs carrega a trilha de várias OS de uma vez, evitando uma
// consulta por ordem na resolução de departamento das OS em serviço externo.
func (r *WorkOrderHistoryRepository) FindByOrderIDs(ctx context.Context, orderIDs []uint64) (map[uint64][]entities.WorkOrderHistory, error) {
	if len(orderIDs) == 0 {
		return map[uint64][]entities.WorkOrderHistory{}, nil
	}
	query := `
		SELECT ` + historyFields + `
		FROM work_order_history
		WHERE work_order_id = ANY($1)
		ORDER BY created_at ASC, id ASC`
	rows, err := r.storage.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries, err := scanHistory(rows)
	if err != nil {
		return nil, err
	}
	grouped := make(map[uint64][]entities.WorkOrderHistory, len(orderIDs))
	for _, entry := range entries {
		grouped[entry.WorkOrderID] = append(grouped[entry.WorkOrderID], entry)
	}
	return grouped, nil
}
