package services

import (
	"testing"
	"time"

	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	change := func(kmLimite int64, dataLimite time.Time, kmAtual int64) repositories.OilChangeItem {
		item := repositories.OilChangeItem{VehicleKmAtual: kmAtual}
		item.OilChange = entities.OilChange{KmTroca: 100000}
		if kmLimite > 0 {
			item.ProximaTrocaKm = null.Int64From(kmLimite)
		}
		if !dataLimite.IsZero() {
			item.ProximaTrocaData = null.TimeFrom(dataLimite)
		}
		return item
	}

	assert.False(t, isOverdue(change(110000, time.Time{}, 105000), now), "abaixo do limite de km")
	assert.True(t, isOverdue(change(110000, time.Time{}, 110000), now), "limite de km atingido")
	assert.True(t, isOverdue(change(110000, time.Time{}, 123456), now), "limite de km ultrapassado")

	assert.False(t, isOverdue(change(0, now.AddDate(0, 0, 1), 105000), now), "antes da data limite")
	assert.True(t, isOverdue(change(0, now, 105000), now), "na data limite")
	assert.True(t, isOverdue(change(0, now.AddDate(0, -1, 0), 105000), now), "depois da data limite")

	// O que vencer primeiro manda.
	assert.True(t, isOverdue(change(110000, now.AddDate(0, 1, 0), 115000), now))
	assert.True(t, isOverdue(change(200000, now.AddDate(0, -1, 0), 115000), now))

	assert.False(t, isOverdue(change(0, time.Time{}, 999999), now), "sem limites não há vencimento")
}
