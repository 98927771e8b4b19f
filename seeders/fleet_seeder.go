package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Dados de demonstração para ambientes de desenvolvimento.

var demoVehicles = []struct {
	Placa   string
	Modelo  string
	Marca   string
	Ano     int
	KmAtual int64
}{
	{"ABC1D23", "Atego 1719", "Mercedes-Benz", 2019, 184200},
	{"DEF4E56", "Constellation 24.280", "Volkswagen", 2021, 96500},
	{"GHI7F89", "FH 540", "Volvo", 2020, 310750},
	{"JKL0G12", "Accelo 815", "Mercedes-Benz", 2018, 240100},
}

var demoMechanics = []string{
	"Carlos Pereira",
	"João Batista",
	"Marcos Vinícius",
}

var demoParts = []struct {
	Codigo  string
	Nome    string
	Unidade string
	Saldo   int64
	Minimo  int64
	Custo   float64
}{
	{"FLT-001", "Filtro de óleo motor", "un", 24, 10, 45.90},
	{"FLT-002", "Filtro de ar", "un", 12, 6, 89.50},
	{"OLE-15W40", "Óleo 15W40 balde 20L", "bd", 8, 4, 420.00},
	{"PST-DIANT", "Pastilha de freio dianteira", "jg", 6, 2, 310.00},
}

func seedDemoFleet(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Populando frota, mecânicos e peças de demonstração...")

	vehicleQuery := `
		INSERT INTO vehicles (placa, modelo, marca, ano, km_atual)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (placa) DO NOTHING`
	for _, v := range demoVehicles {
		if _, err := db.Exec(ctx, vehicleQuery, v.Placa, v.Modelo, v.Marca, v.Ano, v.KmAtual); err != nil {
			return fmt.Errorf("erro ao inserir veículo %q: %w", v.Placa, err)
		}
	}

	mechanicQuery := `
		INSERT INTO mechanics (nome)
		SELECT $1 WHERE NOT EXISTS (SELECT 1 FROM mechanics WHERE nome = $1)`
	for _, nome := range demoMechanics {
		if _, err := db.Exec(ctx, mechanicQuery, nome); err != nil {
			return fmt.Errorf("erro ao inserir mecânico %q: %w", nome, err)
		}
	}

	partQuery := `
		INSERT INTO parts (codigo, nome, unidade, saldo, minimo, custo)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (codigo) DO NOTHING`
	for _, p := range demoParts {
		if _, err := db.Exec(ctx, partQuery, p.Codigo, p.Nome, p.Unidade, p.Saldo, p.Minimo, p.Custo); err != nil {
			return fmt.Errorf("erro ao inserir peça %q: %w", p.Codigo, err)
		}
	}
	return nil
}
