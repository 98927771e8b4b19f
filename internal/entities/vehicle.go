package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Vehicle struct {
	ID        uint64
	Placa     string
	Modelo    string
	Marca     string
	Ano       int
	KmAtual   int64
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt null.Time
	DeletedAt null.Time
}
