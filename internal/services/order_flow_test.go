package services

import (
	"testing"

	"fleet-system/internal/entities"
	"fleet-system/pkg/constants"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
)

func historyEntry(from, to constants.Department) entities.WorkOrderHistory {
	entry := entities.WorkOrderHistory{}
	if from != "" {
		entry.FromDepartment = null.StringFrom(string(from))
	}
	if to != "" {
		entry.ToDepartment = null.StringFrom(string(to))
	}
	return entry
}

func TestResolveExternalDepartmentUsesNewestDestination(t *testing.T) {
	history := []entities.WorkOrderHistory{
		historyEntry(constants.DepartmentOficina, constants.DepartmentAlmoxarifado),
		historyEntry(constants.DepartmentAlmoxarifado, constants.DepartmentCompras),
		historyEntry(constants.DepartmentCompras, constants.DepartmentServicoExterno),
	}

	// O destino mais recente que é um departamento emissor é Compras; o
	// marcador "Serviço Externo" não conta.
	assert.Equal(t, constants.DepartmentCompras, ResolveExternalDepartment(history))
}

func TestResolveExternalDepartmentFallsBackToOrigin(t *testing.T) {
	history := []entities.WorkOrderHistory{
		historyEntry(constants.DepartmentAlmoxarifado, constants.DepartmentServicoExterno),
	}

	// Nenhum destino é emissor, mas a origem da saída aponta o dono.
	assert.Equal(t, constants.DepartmentAlmoxarifado, ResolveExternalDepartment(history))
}

func TestResolveExternalDepartmentIgnoresFinalizados(t *testing.T) {
	history := []entities.WorkOrderHistory{
		historyEntry(constants.DepartmentOficina, constants.DepartmentFinalizados),
		historyEntry(constants.DepartmentFinalizados, constants.DepartmentServicoExterno),
	}

	// Finalizados não é emissor em nenhuma das passadas: a pista útil é a
	// origem Oficina do primeiro registro.
	assert.Equal(t, constants.DepartmentOficina, ResolveExternalDepartment(history))
}

func TestResolveExternalDepartmentDefaultsToOficina(t *testing.T) {
	assert.Equal(t, constants.DepartmentOficina, ResolveExternalDepartment(nil))
	assert.Equal(t, constants.DepartmentOficina, ResolveExternalDepartment([]entities.WorkOrderHistory{{}}))
}

func TestDepartmentOf(t *testing.T) {
	history := []entities.WorkOrderHistory{
		historyEntry(constants.DepartmentCompras, constants.DepartmentServicoExterno),
	}

	assert.Equal(t, constants.DepartmentOficina, DepartmentOf(constants.StatusEmServico, nil))
	assert.Equal(t, constants.DepartmentAlmoxarifado, DepartmentOf(constants.StatusAguardandoOS, nil))
	assert.Equal(t, constants.DepartmentFinalizados, DepartmentOf(constants.StatusFinalizado, nil))
	assert.Equal(t, constants.DepartmentCompras, DepartmentOf(constants.StatusServicoExterno, history))
}
