package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

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
	roleTable  = "roles"
	roleFields = "id, nome, descricao, created_at"
)

// RoleItem é o perfil com os códigos das permissões do preset.
type RoleItem struct {
	entities.Role
	CreatedAt   string
	Permissions []string
}

type RoleRepositoryInterface interface {
	GetRoles(ctx context.Context, filter utils.Filter) ([]RoleItem, uint64, error)
	FindRole(ctx context.Context, id uint64) (*RoleItem, error)
	CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*RoleItem, error)
	UpdateRole(ctx context.Context, id uint64, payload dto.UpdateRoleDTO) (*RoleItem, error)
	DeleteRole(ctx context.Context, id uint64) error
}

type RoleRepository struct {
	storage *pgxpool.Pool
}

func NewRoleRepository(storage *pgxpool.Pool) RoleRepositoryInterface {
	return &RoleRepository{storage: storage}
}

func (r *RoleRepository) loadPermissions(ctx context.Context, q querier, roleID uint64) ([]string, error) {
	query := `
		SELECT p.codigo
		FROM role_permissions rp
		JOIN permissions p ON p.id = rp.permission_id
		WHERE rp.role_id = $1
		ORDER BY p.codigo`
	rows, err := q.Query(ctx, query, roleID)
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

func (r *RoleRepository) GetRoles(ctx context.Context, filter utils.Filter) ([]RoleItem, uint64, error) {
	where := sq.And{}
	if filter.Search != "" {
		where = append(where, sq.ILike{"nome": "%" + filter.Search + "%"})
	}

	countBuilder := sq.Select("COUNT(*)").From(roleTable).PlaceholderFormat(sq.Dollar)
	listBuilder := sq.Select(roleFields).From(roleTable).
		OrderBy("id ASC").
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
		return []RoleItem{}, 0, nil
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

	roles := make([]RoleItem, 0)
	for rows.Next() {
		var item RoleItem
		var createdAt time.Time
		if err := rows.Scan(&item.ID, &item.Nome, &item.Descricao, &createdAt); err != nil {
			return nil, 0, err
		}
		item.CreatedAt = createdAt.Local().Format("2006-01-02 15:04:05")
		roles = append(roles, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range roles {
		perms, err := r.loadPermissions(ctx, r.storage, roles[i].ID)
		if err != nil {
			return nil, 0, err
		}
		roles[i].Permissions = perms
	}
	return roles, total, nil
}

func (r *RoleRepository) FindRole(ctx context.Context, id uint64) (*RoleItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, roleFields, roleTable)
	var item RoleItem
	var createdAt time.Time
	err := r.storage.QueryRow(ctx, query, id).Scan(&item.ID, &item.Nome, &item.Descricao, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear perfil: %w", err)
	}
	item.CreatedAt = createdAt.Local().Format("2006-01-02 15:04:05")

	perms, err := r.loadPermissions(ctx, r.storage, id)
	if err != nil {
		return nil, err
	}
	item.Permissions = perms
	return &item, nil
}

func (r *RoleRepository) CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*RoleItem, error) {
	var roleID uint64
	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		query := `INSERT INTO roles (nome, descricao) VALUES ($1, $2) RETURNING id`
		if err := tx.QueryRow(ctx, query, payload.Nome, payload.Descricao).Scan(&roleID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return apperrors.ErrConflict
			}
			return err
		}
		return r.replacePermissions(ctx, tx, roleID, payload.PermissionIDs)
	})
	if err != nil {
		return nil, err
	}
	return r.FindRole(ctx, roleID)
}

func (r *RoleRepository) UpdateRole(ctx context.Context, id uint64, payload dto.UpdateRoleDTO) (*RoleItem, error) {
	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		updateBuilder := sq.Update(roleTable).
			PlaceholderFormat(sq.Dollar).
			Where(sq.Eq{"id": id})
		hasChanges := false
		if payload.Nome != nil {
			updateBuilder = updateBuilder.Set("nome", *payload.Nome)
			hasChanges = true
		}
		if payload.Descricao != nil {
			updateBuilder = updateBuilder.Set("descricao", *payload.Descricao)
			hasChanges = true
		}
		if hasChanges {
			query, args, err := updateBuilder.ToSql()
			if err != nil {
				return err
			}
			result, err := tx.Exec(ctx, query, args...)
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23505" {
					return apperrors.ErrConflict
				}
				return err
			}
			if result.RowsAffected() == 0 {
				return apperrors.ErrNotFound
			}
		}
		if payload.PermissionIDs != nil {
			return r.replacePermissions(ctx, tx, id, payload.PermissionIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindRole(ctx, id)
}

func (r *RoleRepository) replacePermissions(ctx context.Context, tx pgx.Tx, roleID uint64, permissionIDs []uint64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, roleID); err != nil {
		return err
	}
	for _, permissionID := range permissionIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2)`,
			roleID, permissionID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return apperrors.ErrNotFound
			}
			return err
		}
	}
	return nil
}

func (r *RoleRepository) DeleteRole(ctx context.Context, id uint64) error {
	var inUse bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM users WHERE role_id = $1 AND deleted_at IS NULL)`
	if err := r.storage.QueryRow(ctx, checkQuery, id).Scan(&inUse); err != nil {
		return err
	}
	if inUse {
		return apperrors.ErrConflict
	}

	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, id); err != nil {
			return err
		}
		result, err := tx.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}
