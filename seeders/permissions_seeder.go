package seeders

import (
	"context"
	"log"

	"fleet-system/internal/authz"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedPermissions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Populando a tabela 'permissions'...")

	query := `
		INSERT INTO permissions (codigo, descricao) VALUES ($1, $2)
		ON CONFLICT (codigo) DO UPDATE SET descricao = EXCLUDED.descricao`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	codes := append([]string{authz.Superuser}, authz.All...)
	for _, code := range codes {
		if _, err := tx.Exec(ctx, query, code, permissionDescriptions[code]); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
