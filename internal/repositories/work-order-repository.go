package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	workOrderTable  = "work_orders"
	workOrderFields = "o.id, o.numero, o.vehicle_id, o.descricao, o.status, o.mechanic_id, m.nome, o.execution_order, o.created_at, o.updated_at, o.deleted_at"
	workOrderJoins  = "LEFT JOIN mechanics m ON m.id = o.mechanic_id JOIN vehicles v ON v.id = o.vehicle_id"
)

// WorkOrderItem é a OS enriquecida com a placa do veículo para as listagens.
type WorkOrderItem struct {
	entities.WorkOrder
	Placa string
}

type WorkOrderRepositoryInterface interface {
	GetOrders(ctx context.Context, filter utils.Filter, statuses []constants.Status) ([]WorkOrderItem, uint64, error)
	FindOrder(ctx context.Context, id uint64) (*WorkOrderItem, error)
	FindOrderForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.WorkOrder, error)
	CreateOrder(ctx context.Context, order entities.WorkOrder) (*WorkOrderItem, error)
	UpdateOrder(ctx context.Context, id uint64, payload dto.UpdateWorkOrderDTO) (*WorkOrderItem, error)
	DeleteOrder(ctx context.Context, id uint64) error
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status constants.Status) error
	ListActiveWithMechanic(ctx context.Context) ([]WorkOrderItem, error)
	ListActiveByMechanic(ctx context.Context, mechanicID uint64) ([]WorkOrderItem, error)
	UpdateExecutionOrder(ctx context.Context, orderID, mechanicID uint64, rank int) error
	ReassignMechanic(ctx context.Context, orderID, fromMechanicID, toMechanicID uint64) error
}

type WorkOrderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewWorkOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) WorkOrderRepositoryInterface {
	return &WorkOrderRepository{storage: storage, logger: logger}
}

func scanWorkOrderItem(row pgx.Row, withPlaca bool) (*WorkOrderItem, error) {
	var o WorkOrderItem
	dest := []interface{}{
		&o.ID, &o.Numero, &o.VehicleID, &o.Descricao, &o.Status,
		&o.MechanicID, &o.MechanicNome, &o.ExecutionOrder,
		&o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
	}
	if withPlaca {
		dest = append(dest, &o.Placa)
	}
	err := row.Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear ordem de serviço: %w", err)
	}
	return &o, nil
}

func (r *WorkOrderRepository) GetOrders(ctx context.Context, filter utils.Filter, statuses []constants.Status) ([]WorkOrderItem, uint64, error) {
	where := sq.And{sq.Eq{"o.deleted_at": nil}}
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, string(s))
		}
		where = append(where, sq.Eq{"o.status": values})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"o.numero": like},
			sq.ILike{"o.descricao": like},
			sq.ILike{"v.placa": like},
		})
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").
		From(workOrderTable + " o").
		JoinClause(workOrderJoins).
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []WorkOrderItem{}, 0, nil
	}

	query, args, err := sq.Select(workOrderFields + ", v.placa").
		From(workOrderTable + " o").
		JoinClause(workOrderJoins).
		Where(where).
		OrderBy("o.created_at DESC", "o.id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]WorkOrderItem, 0)
	for rows.Next() {
		item, err := scanWorkOrderItem(rows, true)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *item)
	}
	return orders, total, rows.Err()
}

func (r *WorkOrderRepository) FindOrder(ctx context.Context, id uint64) (*WorkOrderItem, error) {
	query := fmt.Sprintf(`SELECT %s, v.placa FROM %s o %s WHERE o.id = $1 AND o.deleted_at IS NULL`,
		workOrderFields, workOrderTable, workOrderJoins)
	return scanWorkOrderItem(r.storage.QueryRow(ctx, query, id), true)
}

// FindOrderForUpdate trava a linha da OS até o fim da transação.
func (r *WorkOrderRepository) FindOrderForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.WorkOrder, error) {
	query := `
		SELECT o.id, o.numero, o.vehicle_id, o.descricao, o.status, o.mechanic_id, NULL::text, o.execution_order, o.created_at, o.updated_at, o.deleted_at
		FROM work_orders o
		WHERE o.id = $1 AND o.deleted_at IS NULL
		FOR UPDATE`
	item, err := scanWorkOrderItem(tx.QueryRow(ctx, query, id), false)
	if err != nil {
		return nil, err
	}
	return &item.WorkOrder, nil
}

func (r *WorkOrderRepository) CreateOrder(ctx context.Context, order entities.WorkOrder) (*WorkOrderItem, error) {
	query := `
		INSERT INTO work_orders (numero, vehicle_id, descricao, status, mechanic_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		order.Numero, order.VehicleID, order.Descricao, string(order.Status), order.MechanicID,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, apperrors.ErrConflict
			case "23503":
				return nil, apperrors.ErrNotFound
			}
		}
		return nil, err
	}
	return r.FindOrder(ctx, id)
}

func (r *WorkOrderRepository) UpdateOrder(ctx context.Context, id uint64, payload dto.UpdateWorkOrderDTO) (*WorkOrderItem, error) {
	updateBuilder := sq.Update(workOrderTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if payload.Descricao != nil {
		updateBuilder = updateBuilder.Set("descricao", *payload.Descricao)
		hasChanges = true
	}
	if payload.VehicleID != nil {
		updateBuilder = updateBuilder.Set("vehicle_id", *payload.VehicleID)
		hasChanges = true
	}
	if payload.MechanicID != nil {
		if *payload.MechanicID == 0 {
			updateBuilder = updateBuilder.Set("mechanic_id", nil).Set("execution_order", nil)
		} else {
			updateBuilder = updateBuilder.Set("mechanic_id", *payload.MechanicID)
		}
		hasChanges = true
	}
	if !hasChanges {
		return r.FindOrder(ctx, id)
	}

	query, args, err := updateBuilder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, err
	}
	var updatedID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return r.FindOrder(ctx, updatedID)
}

func (r *WorkOrderRepository) DeleteOrder(ctx context.Context, id uint64) error {
	query := `UPDATE work_orders SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *WorkOrderRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status constants.Status) error {
	query := `UPDATE work_orders SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`
	result, err := tx.Exec(ctx, query, string(status), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListActiveWithMechanic devolve todas as OS ativas já atribuídas a algum
// mecânico, insumo do quadro de planejamento.
func (r *WorkOrderRepository) ListActiveWithMechanic(ctx context.Context) ([]WorkOrderItem, error) {
	query := fmt.Sprintf(`
		SELECT %s, v.placa
		FROM %s o %s
		WHERE o.deleted_at IS NULL
		  AND o.mechanic_id IS NOT NULL
		  AND o.status NOT IN ($1, $2)
		ORDER BY o.mechanic_id, o.id`,
		workOrderFields, workOrderTable, workOrderJoins)

	rows, err := r.storage.Query(ctx, query,
		string(constants.StatusFinalizado), string(constants.StatusConcluida))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]WorkOrderItem, 0)
	for rows.Next() {
		item, err := scanWorkOrderItem(rows, true)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *item)
	}
	return orders, rows.Err()
}

func (r *WorkOrderRepository) ListActiveByMechanic(ctx context.Context, mechanicID uint64) ([]WorkOrderItem, error) {
	query := fmt.Sprintf(`
		SELECT %s, v.placa
		FROM %s o %s
		WHERE o.deleted_at IS NULL
		  AND o.mechanic_id = $1
		  AND o.status NOT IN ($2, $3)
		ORDER BY o.id`,
		workOrderFields, workOrderTable, workOrderJoins)

	rows, err := r.storage.Query(ctx, query, mechanicID,
		string(constants.StatusFinalizado), string(constants.StatusConcluida))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]WorkOrderItem, 0)
	for rows.Next() {
		item, err := scanWorkOrderItem(rows, true)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *item)
	}
	return orders, rows.Err()
}

// UpdateExecutionOrder grava a posição de uma única OS. O filtro por
// mechanic_id garante que uma reatribuição concorrente não seja sobrescrita.
func (r *WorkOrderRepository) UpdateExecutionOrder(ctx context.Context, orderID, mechanicID uint64, rank int) error {
	query := `UPDATE work_orders SET execution_order = $1, updated_at = NOW() WHERE id = $2 AND mechanic_id = $3 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, rank, orderID, mechanicID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrOrderNotInQueue
	}
	return nil
}

// ReassignMechanic move a OS para outra fila. A posição é zerada; a
// normalização posterior dá a ela o último lugar da fila de destino.
func (r *WorkOrderRepository) ReassignMechanic(ctx context.Context, orderID, fromMechanicID, toMechanicID uint64) error {
	query := `
		UPDATE work_orders
		SET mechanic_id = $1, execution_order = NULL, updated_at = NOW()
		WHERE id = $2 AND mechanic_id = $3 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, toMechanicID, orderID, fromMechanicID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrMechanicNotFound
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrOrderNotInQueue
	}
	return nil
}
