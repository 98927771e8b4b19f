package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"oficina para fila de serviço", StatusAguardandoMecanico, StatusFilaDeServico, true},
		{"oficina manda para análise do almoxarifado", StatusEmServico, StatusEmAnalise, true},
		{"oficina finaliza direto", StatusFilaDeServico, StatusFinalizado, true},
		{"almoxarifado devolve para a oficina", StatusAguardandoOS, StatusAguardandoMecanico, true},
		{"almoxarifado encaminha para compras", StatusComprarNaRua, StatusEmAprovacao, true},
		{"almoxarifado não finaliza direto", StatusEmAnalise, StatusFinalizado, false},
		{"compras devolve para análise", StatusEmAprovacao, StatusEmAnalise, true},
		{"compras não pula para a oficina", StatusEmAprovacao, StatusEmServico, false},
		{"qualquer ativa vai para serviço externo", StatusEmAprovacao, StatusServicoExterno, true},
		{"serviço externo volta para a oficina", StatusServicoExterno, StatusEmServico, true},
		{"serviço externo volta para o almoxarifado", StatusServicoExterno, StatusAguardandoFornecedor, true},
		{"serviço externo pode finalizar", StatusServicoExterno, StatusFinalizado, true},
		{"finalizado não transita", StatusFinalizado, StatusEmServico, false},
		{"concluída não transita", StatusConcluida, StatusFilaDeServico, false},
		{"status para ele mesmo não é transição", StatusEmServico, StatusEmServico, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestFinalStatusesHaveNoExits(t *testing.T) {
	for status := range allStatuses {
		if !status.IsFinal() {
			continue
		}
		for target := range allStatuses {
			assert.Falsef(t, CanTransition(status, target),
				"%s não deveria transitar para %s", status, target)
		}
	}
}

func TestCanReopen(t *testing.T) {
	assert.True(t, CanReopen(StatusAguardandoMecanico))
	assert.True(t, CanReopen(StatusEmAnalise))
	assert.True(t, CanReopen(StatusEmAprovacao))

	assert.False(t, CanReopen(StatusFinalizado), "reabrir para status final não faz sentido")
	assert.False(t, CanReopen(StatusConcluida))
	assert.False(t, CanReopen(StatusServicoExterno), "reabertura direta para serviço externo é proibida")
	assert.False(t, CanReopen(Status("Inexistente")))
}

func TestStatusDepartment(t *testing.T) {
	testCases := []struct {
		status Status
		dept   Department
	}{
		{StatusAguardandoMecanico, DepartmentOficina},
		{StatusFilaDeServico, DepartmentOficina},
		{StatusEmServico, DepartmentOficina},
		{StatusAguardandoAprovacao, DepartmentOficina},
		{StatusEmAnalise, DepartmentAlmoxarifado},
		{StatusAguardandoOS, DepartmentAlmoxarifado},
		{StatusAguardandoFornecedor, DepartmentAlmoxarifado},
		{StatusComprarNaRua, DepartmentAlmoxarifado},
		{StatusEmAprovacao, DepartmentCompras},
		{StatusFinalizado, DepartmentFinalizados},
		{StatusConcluida, DepartmentFinalizados},
	}

	for _, tc := range testCases {
		dept, ok := tc.status.Department()
		assert.True(t, ok, string(tc.status))
		assert.Equal(t, tc.dept, dept, string(tc.status))
	}

	_, ok := StatusServicoExterno.Department()
	assert.False(t, ok, "serviço externo depende do histórico, não do status")
}

func TestQueueStatusesCoverAllNonExternalStatuses(t *testing.T) {
	covered := make(map[Status]bool)
	for _, statuses := range QueueStatuses {
		for _, status := range statuses {
			assert.False(t, covered[status], "status %s em mais de uma fila", status)
			covered[status] = true
		}
	}
	for status := range allStatuses {
		if status == StatusServicoExterno || status == StatusConcluida {
			continue
		}
		assert.Truef(t, covered[status], "status %s sem fila", status)
	}
}
