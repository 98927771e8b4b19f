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
)

const (
	mechanicTable  = "mechanics"
	mechanicFields = "id, nome, ativo, created_at, updated_at"
)

type MechanicRepositoryInterface interface {
	GetMechanics(ctx context.Context, filter utils.Filter) ([]entities.Mechanic, uint64, error)
	ListActive(ctx context.Context) ([]entities.Mechanic, error)
	FindMechanic(ctx context.Context, id uint64) (*entities.Mechanic, error)
	CreateMechanic(ctx context.Context, mechanic entities.Mechanic) (*entities.Mechanic, error)
	UpdateMechanic(ctx context.Context, id uint64, payload dto.UpdateMechanicDTO) (*entities.Mechanic, error)
	DeleteMechanic(ctx context.Context, id uint64) error
}

type MechanicRepository struct {
	storage *pgxpool.Pool
}

func NewMechanicRepository(storage *pgxpool.Pool) MechanicRepositoryInterface {
	return &MechanicRepository{storage: storage}
}

func scanMechanic(row pgx.Row) (*entities.Mechanic, error) {
	var m entities.Mechanic
	err := row.Scan(&m.ID, &m.Nome, &m.Ativo, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrMechanicNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear mecânico: %w", err)
	}
	return &m, nil
}

func (r *MechanicRepository) GetMechanics(ctx context.Context, filter utils.Filter) ([]entities.Mechanic, uint64, error) {
	where := sq.And{}
	if filter.Search != "" {
		where = append(where, sq.ILike{"nome": "%" + filter.Search + "%"})
	}

	countBuilder := sq.Select("COUNT(*)").From(mechanicTable).PlaceholderFormat(sq.Dollar)
	listBuilder := sq.Select(mechanicFields).From(mechanicTable).
		OrderBy("nome ASC").
		Limit(filter.Limit).Offset(filter.Offset).
		PlaceholderFormat(sq.Dollar)
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
		listBuilder = listBuilder.Where(where)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Mechanic{}, 0, nil
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	mechanics := make([]entities.Mechanic, 0)
	for rows.Next() {
		m, err := scanMechanic(rows)
		if err != nil {
			return nil, 0, err
		}
		mechanics = append(mechanics, *m)
	}
	return mechanics, total, rows.Err()
}

func (r *MechanicRepository) ListActive(ctx context.Context) ([]entities.Mechanic, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE ativo ORDER BY nome ASC`, mechanicFields, mechanicTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mechanics := make([]entities.Mechanic, 0)
	for rows.Next() {
		m, err := scanMechanic(rows)
		if err != nil {
			return nil, err
		}
		mechanics = append(mechanics, *m)
	}
	return mechanics, rows.Err()
}

func (r *MechanicRepository) FindMechanic(ctx context.Context, id uint64) (*entities.Mechanic, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, mechanicFields, mechanicTable)
	return scanMechanic(r.storage.QueryRow(ctx, query, id))
}

func (r *MechanicRepository) CreateMechanic(ctx context.Context, mechanic entities.Mechanic) (*entities.Mechanic, error) {
	query := fmt.Sprintf(`INSERT INTO mechanics (nome) VALUES ($1) RETURNING %s`, mechanicFields)
	created, err := scanMechanic(r.storage.QueryRow(ctx, query, mechanic.Nome))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *MechanicRepository) UpdateMechanic(ctx context.Context, id uint64, payload dto.UpdateMechanicDTO) (*entities.Mechanic, error) {
	updateBuilder := sq.Update(mechanicTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if payload.Nome != nil {
		updateBuilder = updateBuilder.Set("nome", *payload.Nome)
		hasChanges = true
	}
	if payload.Ativo != nil {
		updateBuilder = updateBuilder.Set("ativo", *payload.Ativo)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindMechanic(ctx, id)
	}

	query, args, err := updateBuilder.Suffix("RETURNING " + mechanicFields).ToSql()
	if err != nil {
		return nil, err
	}
	return scanMechanic(r.storage.QueryRow(ctx, query, args...))
}

// DeleteMechanic remove um mecânico sem fila ativa. OS ativas na fila
// bloqueiam a remoção.
func (r *MechanicRepository) DeleteMechanic(ctx context.Context, id uint64) error {
	var hasActive bool
	checkQuery := `
		SELECT EXISTS (
			SELECT 1 FROM work_orders
			WHERE mechanic_id = $1 AND deleted_at IS NULL AND status NOT IN ($2, $3)
		)`
	if err := r.storage.QueryRow(ctx, checkQuery, id,
		string(constants.StatusFinalizado), string(constants.StatusConcluida)).Scan(&hasActive); err != nil {
		return err
	}
	if hasActive {
		return apperrors.ErrConflict
	}

	query := `DELETE FROM mechanics WHERE id = $1`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrConflict
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrMechanicNotFound
	}
	return nil
}
