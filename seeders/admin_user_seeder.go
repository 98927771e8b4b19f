package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Criando o usuário administrador...")

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@fleet.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("    - ADMIN_PASSWORD não definido, usando a senha padrão de desenvolvimento.")
	}

	var userID uint64
	err := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&userID)
	if err == nil {
		log.Println("    - Administrador já existe, pulando.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("erro ao verificar administrador existente: %w", err)
	}

	var roleID uint64
	if err := db.QueryRow(ctx, `SELECT id FROM roles WHERE nome = 'Administrador'`).Scan(&roleID); err != nil {
		return fmt.Errorf("perfil 'Administrador' não encontrado, rode o seeder de perfis antes: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (nome, email, senha_hash, role_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := db.QueryRow(ctx, query, "Administrador", email, string(hash), roleID).Scan(&userID); err != nil {
		return fmt.Errorf("erro ao criar administrador: %w", err)
	}

	log.Printf("    - Administrador criado (id=%d, email=%s).", userID, email)
	return nil
}
