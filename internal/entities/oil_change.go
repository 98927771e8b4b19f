package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type OilChange struct {
	ID               uint64
	VehicleID        uint64
	DataTroca        time.Time
	KmTroca          int64
	TipoOleo         string
	ProximaTrocaKm   null.Int64
	ProximaTrocaData null.Time
	Observacao       null.String
	CreatedAt        time.Time
}
