package main

import (
	"flag"
	"log"

	"fleet-system/pkg/config"
	"fleet-system/pkg/database/postgresql"
	"fleet-system/seeders"
)

func main() {
	runCore := flag.Bool("core", false, "Popular o catálogo de permissões")
	runRoles := flag.Bool("roles", false, "Criar perfis, presets e o administrador")
	runDemo := flag.Bool("demo", false, "Popular frota, mecânicos e peças de demonstração")
	runAll := flag.Bool("all", false, "Rodar todos os seeders (equivale a -core -roles -demo)")

	flag.Parse()

	if !*runCore && !*runRoles && !*runDemo && !*runAll {
		log.Println("Nenhum seeder selecionado.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Exemplos:")
		log.Println("  go run ./seeders/cmd/seed -core -roles")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runCore {
		seeders.SeedCore(dbPool)
	}
	if *runAll || *runRoles {
		seeders.SeedRolesAndAdmin(dbPool)
	}
	if *runAll || *runDemo {
		seeders.SeedDemo(dbPool)
	}

	log.Println("Seeders concluídos.")
}
