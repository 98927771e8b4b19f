package main

import (
	"database/sql"
	"flag"
	"log"

	"fleet-system/pkg/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	command := flag.String("command", "up", "comando do goose: up, down, status, version")
	dir := flag.String("dir", "migrations", "diretório das migrações")
	flag.Parse()

	cfg := config.New()

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("erro ao abrir conexão: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("erro ao configurar dialeto: %v", err)
	}

	if err := goose.Run(*command, db, *dir); err != nil {
		log.Fatalf("goose %s: %v", *command, err)
	}
}
