package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Part struct {
	ID        uint64
	Codigo    string
	Nome      string
	Unidade   string
	Saldo     int64
	Minimo    int64
	Custo     float64
	CreatedAt time.Time
	UpdatedAt null.Time
	DeletedAt null.Time
}

// PartMovement registra uma entrada ou saída de estoque, opcionalmente
// vinculada a uma ordem de serviço.
type PartMovement struct {
	ID          uint64
	PartID      uint64
	WorkOrderID null.Uint64
	Tipo        string
	Quantidade  int64
	Observacao  null.String
	ActorID     uint64
	ActorNome   string
	CreatedAt   time.Time
}
