package repositories

import (
	"context"
	"errors"
	"fmt"

	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	oilChangeTable  = "oil_changes"
	oilChangeFields = "oc.id, oc.vehicle_id, oc.data_troca, oc.km_troca, oc.tipo_oleo, oc.proxima_troca_km, oc.proxima_troca_data, oc.observacao, oc.created_at"
)

// OilChangeItem carrega a troca com a placa e o hodômetro atual do veículo,
// necessários para calcular o vencimento.
type OilChangeItem struct {
	entities.OilChange
	Placa          string
	VehicleKmAtual int64
}

type OilChangeRepositoryInterface interface {
	GetOilChanges(ctx context.Context, filter utils.Filter, vehicleID uint64) ([]OilChangeItem, uint64, error)
	FindOilChange(ctx context.Context, id uint64) (*OilChangeItem, error)
	CreateOilChange(ctx context.Context, change entities.OilChange) (*OilChangeItem, error)
	DeleteOilChange(ctx context.Context, id uint64) error
	ListLatestPerVehicle(ctx context.Context) ([]OilChangeItem, error)
}

type OilChangeRepository struct {
	storage *pgxpool.Pool
}

func NewOilChangeRepository(storage *pgxpool.Pool) OilChangeRepositoryInterface {
	return &OilChangeRepository{storage: storage}
}

func scanOilChangeItem(row pgx.Row) (*OilChangeItem, error) {
	var oc OilChangeItem
	err := row.Scan(&oc.ID, &oc.VehicleID, &oc.DataTroca, &oc.KmTroca, &oc.TipoOleo,
		&oc.ProximaTrocaKm, &oc.ProximaTrocaData, &oc.Observacao, &oc.CreatedAt,
		&oc.Placa, &oc.VehicleKmAtual)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear troca de óleo: %w", err)
	}
	return &oc, nil
}

func (r *OilChangeRepository) GetOilChanges(ctx context.Context, filter utils.Filter, vehicleID uint64) ([]OilChangeItem, uint64, error) {
	whereClause := "WHERE v.deleted_at IS NULL"
	args := []interface{}{}
	if vehicleID != 0 {
		whereClause += " AND oc.vehicle_id = $1"
		args = append(args, vehicleID)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s oc JOIN vehicles v ON v.id = oc.vehicle_id %s`, oilChangeTable, whereClause)
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []OilChangeItem{}, 0, nil
	}

	argCounter := len(args) + 1
	query := fmt.Sprintf(`
		SELECT %s, v.placa, v.km_atual
		FROM %s oc
		JOIN vehicles v ON v.id = oc.vehicle_id
		%s
		ORDER BY oc.data_troca DESC, oc.id DESC
		LIMIT $%d OFFSET $%d`,
		oilChangeFields, oilChangeTable, whereClause, argCounter, argCounter+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	changes := make([]OilChangeItem, 0)
	for rows.Next() {
		oc, err := scanOilChangeItem(rows)
		if err != nil {
			return nil, 0, err
		}
		changes = append(changes, *oc)
	}
	return changes, total, rows.Err()
}

func (r *OilChangeRepository) FindOilChange(ctx context.Context, id uint64) (*OilChangeItem, error) {
	query := fmt.Sprintf(`
		SELECT %s, v.placa, v.km_atual
		FROM %s oc
		JOIN vehicles v ON v.id = oc.vehicle_id
		WHERE oc.id = $1`, oilChangeFields, oilChangeTable)
	return scanOilChangeItem(r.storage.QueryRow(ctx, query, id))
}

func (r *OilChangeRepository) CreateOilChange(ctx context.Context, change entities.OilChange) (*OilChangeItem, error) {
	query := `
		INSERT INTO oil_changes (vehicle_id, data_troca, km_troca, tipo_oleo, proxima_troca_km, proxima_troca_data, observacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		change.VehicleID, change.DataTroca, change.KmTroca, change.TipoOleo,
		change.ProximaTrocaKm, change.ProximaTrocaData, change.Observacao,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindOilChange(ctx, id)
}

func (r *OilChangeRepository) DeleteOilChange(ctx context.Context, id uint64) error {
	query := `DELETE FROM oil_changes WHERE id = $1`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListLatestPerVehicle devolve a troca mais recente de cada veículo ativo,
// base da listagem de trocas vencidas.
func (r *OilChangeRepository) ListLatestPerVehicle(ctx context.Context) ([]OilChangeItem, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT ON (oc.vehicle_id) %s, v.placa, v.km_atual
		FROM %s oc
		JOIN vehicles v ON v.id = oc.vehicle_id
		WHERE v.deleted_at IS NULL AND v.ativo
		ORDER BY oc.vehicle_id, oc.data_troca DESC, oc.id DESC`,
		oilChangeFields, oilChangeTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	changes := make([]OilChangeItem, 0)
	for rows.Next() {
		oc, err := scanOilChangeItem(rows)
		if err != nil {
			return nil, err
		}
		changes = append(changes, *oc)
	}
	return changes, rows.Err()
}
