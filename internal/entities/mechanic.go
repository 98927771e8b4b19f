package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Mechanic não possui uma coleção física de ordens: a fila dele é
// materializada agrupando WorkOrders pelo campo MechanicID.
type Mechanic struct {
	ID        uint64
	Nome      string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt null.Time
}
