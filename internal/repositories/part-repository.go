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
	partTable  = "parts"
	partFields = "id, codigo, nome, unidade, saldo, minimo, custo, created_at, updated_at, deleted_at"
)

type PartRepositoryInterface interface {
	GetParts(ctx context.Context, filter utils.Filter) ([]entities.Part, uint64, error)
	FindPart(ctx context.Context, id uint64) (*entities.Part, error)
	CreatePart(ctx context.Context, part entities.Part) (*entities.Part, error)
	UpdatePart(ctx context.Context, id uint64, payload dto.UpdatePartDTO) (*entities.Part, error)
	DeletePart(ctx context.Context, id uint64) error
	CreateMovement(ctx context.Context, movement entities.PartMovement) (*entities.PartMovement, error)
	GetMovements(ctx context.Context, partID uint64, filter utils.Filter) ([]entities.PartMovement, uint64, error)
}

type PartRepository struct {
	storage *pgxpool.Pool
}

func NewPartRepository(storage *pgxpool.Pool) PartRepositoryInterface {
	return &PartRepository{storage: storage}
}

func scanPart(row pgx.Row) (*entities.Part, error) {
	var p entities.Part
	err := row.Scan(&p.ID, &p.Codigo, &p.Nome, &p.Unidade, &p.Saldo, &p.Minimo, &p.Custo, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear peça: %w", err)
	}
	return &p, nil
}

func (r *PartRepository) GetParts(ctx context.Context, filter utils.Filter) ([]entities.Part, uint64, error) {
	where := sq.And{sq.Eq{"deleted_at": nil}}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		where = append(where, sq.Or{sq.ILike{"codigo": like}, sq.ILike{"nome": like}})
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").From(partTable).
		Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Part{}, 0, nil
	}

	query, args, err := sq.Select(partFields).From(partTable).
		Where(where).
		OrderBy("codigo ASC").
		Limit(filter.Limit).Offset(filter.Offset).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	parts := make([]entities.Part, 0)
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, 0, err
		}
		parts = append(parts, *p)
	}
	return parts, total, rows.Err()
}

func (r *PartRepository) FindPart(ctx context.Context, id uint64) (*entities.Part, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND deleted_at IS NULL`, partFields, partTable)
	return scanPart(r.storage.QueryRow(ctx, query, id))
}

func (r *PartRepository) CreatePart(ctx context.Context, part entities.Part) (*entities.Part, error) {
	query := fmt.Sprintf(`
		INSERT INTO parts (codigo, nome, unidade, saldo, minimo, custo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, partFields)
	created, err := scanPart(r.storage.QueryRow(ctx, query,
		part.Codigo, part.Nome, part.Unidade, part.Saldo, part.Minimo, part.Custo))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *PartRepository) UpdatePart(ctx context.Context, id uint64, payload dto.UpdatePartDTO) (*entities.Part, error) {
	updateBuilder := sq.Update(partTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if payload.Nome != nil {
		updateBuilder = updateBuilder.Set("nome", *payload.Nome)
		hasChanges = true
	}
	if payload.Unidade != nil {
		updateBuilder = updateBuilder.Set("unidade", *payload.Unidade)
		hasChanges = true
	}
	if payload.Minimo != nil {
		updateBuilder = updateBuilder.Set("minimo", *payload.Minimo)
		hasChanges = true
	}
	if payload.Custo != nil {
		updateBuilder = updateBuilder.Set("custo", *payload.Custo)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindPart(ctx, id)
	}

	query, args, err := updateBuilder.Suffix("RETURNING " + partFields).ToSql()
	if err != nil {
		return nil, err
	}
	return scanPart(r.storage.QueryRow(ctx, query, args...))
}

func (r *PartRepository) DeletePart(ctx context.Context, id uint64) error {
	var hasMovements bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM part_movements WHERE part_id = $1)`
	if err := r.storage.QueryRow(ctx, checkQuery, id).Scan(&hasMovements); err != nil {
		return err
	}
	if hasMovements {
		return apperrors.ErrPartInUse
	}

	query := `UPDATE parts SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CreateMovement grava a movimentação e ajusta o saldo na mesma transação.
// Saídas maiores que o saldo disponível são rejeitadas.
func (r *PartRepository) CreateMovement(ctx context.Context, movement entities.PartMovement) (*entities.PartMovement, error) {
	var created entities.PartMovement
	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		var saldo int64
		lockQuery := `SELECT saldo FROM parts WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
		if err := tx.QueryRow(ctx, lockQuery, movement.PartID).Scan(&saldo); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return err
		}

		delta := movement.Quantidade
		if movement.Tipo == constants.MovementSaida {
			if saldo < movement.Quantidade {
				return apperrors.ErrInsufficientStock
			}
			delta = -movement.Quantidade
		}

		insertQuery := `
			INSERT INTO part_movements (part_id, work_order_id, tipo, quantidade, observacao, actor_id, actor_nome)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, part_id, work_order_id, tipo, quantidade, observacao, actor_id, actor_nome, created_at`
		if err := tx.QueryRow(ctx, insertQuery,
			movement.PartID, movement.WorkOrderID, movement.Tipo, movement.Quantidade,
			movement.Observacao, movement.ActorID, movement.ActorNome,
		).Scan(
			&created.ID, &created.PartID, &created.WorkOrderID, &created.Tipo, &created.Quantidade,
			&created.Observacao, &created.ActorID, &created.ActorNome, &created.CreatedAt,
		); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return apperrors.ErrNotFound
			}
			return err
		}

		updateQuery := `UPDATE parts SET saldo = saldo + $1, updated_at = NOW() WHERE id = $2`
		_, err := tx.Exec(ctx, updateQuery, delta, movement.PartID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *PartRepository) GetMovements(ctx context.Context, partID uint64, filter utils.Filter) ([]entities.PartMovement, uint64, error) {
	var total uint64
	countQuery := `SELECT COUNT(*) FROM part_movements WHERE part_id = $1`
	if err := r.storage.QueryRow(ctx, countQuery, partID).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.PartMovement{}, 0, nil
	}

	query := `
		SELECT id, part_id, work_order_id, tipo, quantidade, observacao, actor_id, actor_nome, created_at
		FROM part_movements
		WHERE part_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.storage.Query(ctx, query, partID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	movements := make([]entities.PartMovement, 0)
	for rows.Next() {
		var m entities.PartMovement
		if err := rows.Scan(&m.ID, &m.PartID, &m.WorkOrderID, &m.Tipo, &m.Quantidade,
			&m.Observacao, &m.ActorID, &m.ActorNome, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		movements = append(movements, m)
	}
	return movements, total, rows.Err()
}
