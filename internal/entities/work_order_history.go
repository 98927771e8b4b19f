package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// WorkOrderHistory é um registro imutável da trilha de auditoria de uma OS.
// Registros gravados na mesma transação compartilham o TxID.
type WorkOrderHistory struct {
	ID             uint64
	WorkOrderID    uint64
	TxID           uuid.UUID
	FromStatus     null.String
	ToStatus       null.String
	FromDepartment null.String
	ToDepartment   null.String
	Observacao     null.String
	ActorID        uint64
	ActorNome      string
	CreatedAt      time.Time
}
