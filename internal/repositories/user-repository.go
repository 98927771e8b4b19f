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
	userTable  = "users"
	userFields = "u.id, u.nome, u.email, u.senha_hash, u.role_id, u.ativo, u.created_at, u.updated_at, u.deleted_at"
)

// UserItem é o usuário com o nome do perfil, para listagens e para o token.
type UserItem struct {
	entities.User
	RoleNome string
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter utils.Filter) ([]UserItem, uint64, error)
	FindUser(ctx context.Context, id uint64) (*UserItem, error)
	FindByEmail(ctx context.Context, email string) (*UserItem, error)
	CreateUser(ctx context.Context, user entities.User) (*UserItem, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO, senhaHash *string) (*UserItem, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func scanUserItem(row pgx.Row) (*UserItem, error) {
	var u UserItem
	err := row.Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.RoleID, &u.Ativo,
		&u.CreatedAt, &u.UpdatedAt, &u.DeletedAt, &u.RoleNome)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, filter utils.Filter) ([]UserItem, uint64, error) {
	where := sq.And{sq.Eq{"u.deleted_at": nil}}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		where = append(where, sq.Or{sq.ILike{"u.nome": like}, sq.ILike{"u.email": like}})
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").
		From(userTable + " u").
		Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []UserItem{}, 0, nil
	}

	query, args, err := sq.Select(userFields + ", r.nome").
		From(userTable + " u").
		JoinClause("JOIN roles r ON r.id = u.role_id").
		Where(where).
		OrderBy("u.nome ASC").
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

	users := make([]UserItem, 0)
	for rows.Next() {
		u, err := scanUserItem(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) FindUser(ctx context.Context, id uint64) (*UserItem, error) {
	query := fmt.Sprintf(`
		SELECT %s, r.nome
		FROM %s u
		JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1 AND u.deleted_at IS NULL`, userFields, userTable)
	return scanUserItem(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*UserItem, error) {
	query := fmt.Sprintf(`
		SELECT %s, r.nome
		FROM %s u
		JOIN roles r ON r.id = u.role_id
		WHERE LOWER(u.email) = LOWER($1) AND u.deleted_at IS NULL
		LIMIT 1`, userFields, userTable)
	return scanUserItem(r.storage.QueryRow(ctx, query, email))
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (*UserItem, error) {
	query := `
		INSERT INTO users (nome, email, senha_hash, role_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query, user.Nome, user.Email, user.SenhaHash, user.RoleID).Scan(&id)
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
	return r.FindUser(ctx, id)
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO, senhaHash *string) (*UserItem, error) {
	updateBuilder := sq.Update(userTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if payload.Nome != nil {
		updateBuilder = updateBuilder.Set("nome", *payload.Nome)
		hasChanges = true
	}
	if senhaHash != nil {
		updateBuilder = updateBuilder.Set("senha_hash", *senhaHash)
		hasChanges = true
	}
	if payload.RoleID != nil {
		updateBuilder = updateBuilder.Set("role_id", *payload.RoleID)
		hasChanges = true
	}
	if payload.Ativo != nil {
		updateBuilder = updateBuilder.Set("ativo", *payload.Ativo)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindUser(ctx, id)
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
	return r.FindUser(ctx, updatedID)
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	query := `UPDATE users SET deleted_at = NOW(), ativo = FALSE WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
