package entities

import (
	"time"

	"fleet-system/pkg/constants"

	"github.com/aarondl/null/v8"
)

// WorkOrder é uma ordem de serviço (OS).
//
// ExecutionOrder é a posição da ordem na fila do mecânico: inteiro positivo,
// denso (1..N) dentro da fila ativa; ausente significa "sem posição, depois
// de todas as ordenadas".
type WorkOrder struct {
	ID             uint64
	Numero         string
	VehicleID      uint64
	Descricao      string
	Status         constants.Status
	MechanicID     null.Uint64
	MechanicNome   null.String
	ExecutionOrder null.Int
	CreatedAt      time.Time
	UpdatedAt      null.Time
	DeletedAt      null.Time
}
