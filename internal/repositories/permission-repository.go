package repositories

import (
	"context"
	"errors"

	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PermissionRepositoryInterface interface {
	GetPermissions(ctx context.Context) ([]entities.Permission, error)
	GetRolePermissionCodes(ctx context.Context, roleID uint64) ([]string, error)
	GetUserOverrides(ctx context.Context, userID uint64) ([]entities.UserPermissionOverride, error)
	SetUserOverride(ctx context.Context, userID, permissionID uint64, permitido bool) error
	DeleteUserOverride(ctx context.Context, userID, permissionID uint64) error
}

type PermissionRepository struct {
	storage *pgxpool.Pool
}

func NewPermissionRepository(storage *pgxpool.Pool) PermissionRepositoryInterface {
	return &PermissionRepository{storage: storage}
}

func (r *PermissionRepository) GetPermissions(ctx context.Context) ([]entities.Permission, error) {
	query := `SELECT id, codigo, descricao FROM permissions ORDER BY codigo`
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	permissions := make([]entities.Permission, 0)
	for rows.Next() {
		var p entities.Permission
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Descricao); err != nil {
			return nil, err
		}
		permissions = append(permissions, p)
	}
	return permissions, rows.Err()
}

func (r *PermissionRepository) GetRolePermissionCodes(ctx context.Context, roleID uint64) ([]string, error) {
	query := `
		SELECT p.codigo
		FROM role_permissions rp
		JOIN permissions p ON p.id = rp.permission_id
		WHERE rp.role_id = $1
		ORDER BY p.codigo`
	rows, err := r.storage.Query(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := make([]string, 0)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func (r *PermissionRepository) GetUserOverrides(ctx context.Context, userID uint64) ([]entities.UserPermissionOverride, error) {
	query := `
		SELECT o.user_id, o.permission_id, p.codigo, o.permitido
		FROM user_permission_overrides o
		JOIN permissions p ON p.id = o.permission_id
		WHERE o.user_id = $1
		ORDER BY p.codigo`
	rows, err := r.storage.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make([]entities.UserPermissionOverride, 0)
	for rows.Next() {
		var o entities.UserPermissionOverride
		if err := rows.Scan(&o.UserID, &o.PermissionID, &o.Codigo, &o.Permitido); err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, rows.Err()
}

func (r *PermissionRepository) SetUserOverride(ctx context.Context, userID, permissionID uint64, permitido bool) error {
	query := `
		INSERT INTO user_permission_overrides (user_id, permission_id, permitido)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, permission_id) DO UPDATE SET permitido = EXCLUDED.permitido`
	_, err := r.storage.Exec(ctx, query, userID, permissionID, permitido)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrNotFound
		}
	}
	return err
}

func (r *PermissionRepository) DeleteUserOverride(ctx context.Context, userID, permissionID uint64) error {
	query := `DELETE FROM user_permission_overrides WHERE user_id = $1 AND permission_id = $2`
	result, err := r.storage.Exec(ctx, query, userID, permissionID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
