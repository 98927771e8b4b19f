package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedCore popula o catálogo de permissões, que não depende de nada.
func SeedCore(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶ Populando catálogos base...")

	if err := seedPermissions(ctx, db); err != nil {
		log.Fatalf("erro ao popular permissões: %v", err)
	}
	log.Println("✔ Catálogos base prontos.")
}

// SeedRolesAndAdmin cria os perfis, seus presets e o usuário administrador.
func SeedRolesAndAdmin(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶ Configurando perfis e administrador...")

	if err := seedRoles(ctx, db); err != nil {
		log.Fatalf("erro ao popular perfis: %v", err)
	}
	if err := seedRolePermissions(ctx, db); err != nil {
		log.Fatalf("erro ao vincular permissões aos perfis: %v", err)
	}
	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("erro ao criar administrador: %v", err)
	}
	log.Println("✔ Perfis e administrador prontos.")
}

// SeedDemo popula dados de demonstração para desenvolvimento local.
func SeedDemo(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶ Populando dados de demonstração...")

	if err := seedDemoFleet(ctx, db); err != nil {
		log.Fatalf("erro ao popular dados de demonstração: %v", err)
	}
	log.Println("✔ Dados de demonstração prontos.")
}
