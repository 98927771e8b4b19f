package services

import (
	"fleet-system/internal/entities"
	"fleet-system/pkg/constants"
)

// issuingDepartments são os departamentos que podem mandar uma OS para
// serviço externo.
var issuingDepartments = map[string]constants.Department{
	string(constants.DepartmentOficina):      constants.DepartmentOficina,
	string(constants.DepartmentAlmoxarifado): constants.DepartmentAlmoxarifado,
	string(constants.DepartmentCompras):      constants.DepartmentCompras,
}

// ResolveExternalDepartment descobre a qual departamento uma OS em serviço
// externo pertence, varrendo o histórico do registro mais recente para o mais
// antigo em duas passadas: primeiro pelo departamento de destino, depois pelo
// de origem. Sem pista nenhuma, a OS fica com a Oficina.
func ResolveExternalDepartment(history []entities.WorkOrderHistory) constants.Department {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].ToDepartment.Valid {
			if dept, ok := issuingDepartments[history[i].ToDepartment.String]; ok {
				return dept
			}
		}
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].FromDepartment.Valid {
			if dept, ok := issuingDepartments[history[i].FromDepartment.String]; ok {
				return dept
			}
		}
	}
	return constants.DepartmentOficina
}

// DepartmentOf devolve o departamento de exibição da OS. Para serviço externo
// a resposta vem do histórico; para os demais status, do próprio status.
func DepartmentOf(status constants.Status, history []entities.WorkOrderHistory) constants.Department {
	if status == constants.StatusServicoExterno {
		return ResolveExternalDepartment(history)
	}
	if dept, ok := status.Department(); ok {
		return dept
	}
	return constants.DepartmentOficina
}
