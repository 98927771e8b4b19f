package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedRoles(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Populando a tabela 'roles'...")

	query := `
		INSERT INTO roles (nome, descricao) VALUES ($1, $2)
		ON CONFLICT (nome) DO NOTHING`

	for nome, descricao := range roleDescriptions {
		if _, err := db.Exec(ctx, query, nome, descricao); err != nil {
			return fmt.Errorf("erro ao inserir perfil %q: %w", nome, err)
		}
	}
	return nil
}

func seedRolePermissions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Vinculando permissões aos perfis...")

	query := `
		INSERT INTO role_permissions (role_id, permission_id)
		SELECT r.id, p.id
		FROM roles r, permissions p
		WHERE r.nome = $1 AND p.codigo = $2
		ON CONFLICT DO NOTHING`

	for roleName, codes := range rolePresets {
		for _, code := range codes {
			if _, err := db.Exec(ctx, query, roleName, code); err != nil {
				return fmt.Errorf("erro ao vincular %q ao perfil %q: %w", code, roleName, err)
			}
		}
	}
	return nil
}
