package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	vehicleTable  = "vehicles"
	vehicleFields = "id, placa, modelo, marca, ano, km_atual, ativo, created_at, updated_at, deleted_at"
)

type VehicleRepositoryInterface interface {
	GetVehicles(ctx context.Context, filter utils.Filter) ([]entities.Vehicle, uint64, error)
	FindVehicle(ctx context.Context, id uint64) (*entities.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle entities.Vehicle) (*entities.Vehicle, error)
	UpdateVehicle(ctx context.Context, id uint64, payload dto.UpdateVehicleDTO) (*entities.Vehicle, error)
	DeleteVehicle(ctx context.Context, id uint64) error
	UpdateKmIfGreater(ctx context.Context, id uint64, km int64) error
}

type VehicleRepository struct {
	storage *pgxpool.Pool
}

func NewVehicleRepository(storage *pgxpool.Pool) VehicleRepositoryInterface {
	return &VehicleRepository{storage: storage}
}

func scanVehicle(row pgx.Row) (*entities.Vehicle, error) {
	var v entities.Vehicle
	err := row.Scan(&v.ID, &v.Placa, &v.Modelo, &v.Marca, &v.Ano, &v.KmAtual, &v.Ativo, &v.CreatedAt, &v.UpdatedAt, &v.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear veículo: %w", err)
	}
	return &v, nil
}

func (r *VehicleRepository) GetVehicles(ctx context.Context, filter utils.Filter) ([]entities.Vehicle, uint64, error) {
	where := sq.And{sq.Eq{"deleted_at": nil}}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"placa": like},
			sq.ILike{"modelo": like},
			sq.ILike{"marca": like},
		})
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").From(vehicleTable).
		Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Vehicle{}, 0, nil
	}

	query, args, err := sq.Select(vehicleFields).From(vehicleTable).
		Where(where).
		OrderBy("placa ASC").
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

	vehicles := make([]entities.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, total, rows.Err()
}

func (r *VehicleRepository) FindVehicle(ctx context.Context, id uint64) (*entities.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND deleted_at IS NULL`, vehicleFields, vehicleTable)
	return scanVehicle(r.storage.QueryRow(ctx, query, id))
}

func (r *VehicleRepository) CreateVehicle(ctx context.Context, vehicle entities.Vehicle) (*entities.Vehicle, error) {
	query := fmt.Sprintf(`
		INSERT INTO vehicles (placa, modelo, marca, ano, km_atual)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, vehicleFields)
	created, err := scanVehicle(r.storage.QueryRow(ctx, query,
		vehicle.Placa, vehicle.Modelo, vehicle.Marca, vehicle.Ano, vehicle.KmAtual))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *VehicleRepository) UpdateVehicle(ctx context.Context, id uint64, payload dto.UpdateVehicleDTO) (*entities.Vehicle, error) {
	updateBuilder := sq.Update(vehicleTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if payload.Placa != nil {
		updateBuilder = updateBuilder.Set("placa", *payload.Placa)
		hasChanges = true
	}
	if payload.Modelo != nil {
		updateBuilder = updateBuilder.Set("modelo", *payload.Modelo)
		hasChanges = true
	}
	if payload.Marca != nil {
		updateBuilder = updateBuilder.Set("marca", *payload.Marca)
		hasChanges = true
	}
	if payload.Ano != nil {
		updateBuilder = updateBuilder.Set("ano", *payload.Ano)
		hasChanges = true
	}
	if payload.KmAtual != nil {
		updateBuilder = updateBuilder.Set("km_atual", *payload.KmAtual)
		hasChanges = true
	}
	if payload.Ativo != nil {
		updateBuilder = updateBuilder.Set("ativo", *payload.Ativo)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindVehicle(ctx, id)
	}

	query, args, err := updateBuilder.Suffix("RETURNING " + vehicleFields).ToSql()
	if err != nil {
		return nil, err
	}
	updated, err := scanVehicle(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return updated, nil
}

func (r *VehicleRepository) DeleteVehicle(ctx context.Context, id uint64) error {
	var hasOrders bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM work_orders WHERE vehicle_id = $1 AND deleted_at IS NULL)`
	if err := r.storage.QueryRow(ctx, checkQuery, id).Scan(&hasOrders); err != nil {
		return err
	}
	if hasOrders {
		return apperrors.ErrVehicleInUse
	}

	query := `UPDATE vehicles SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateKmIfGreater avança o hodômetro sem nunca retrocedê-lo.
func (r *VehicleRepository) UpdateKmIfGreater(ctx context.Context, id uint64, km int64) error {
	query := `UPDATE vehicles SET km_atual = $1, updated_at = NOW() WHERE id = $2 AND km_atual < $1 AND deleted_at IS NULL`
	_, err := r.storage.Exec(ctx, query, km, id)
	return err
}
