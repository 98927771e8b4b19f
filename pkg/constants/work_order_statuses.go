package constants

// Status é o status de uma ordem de serviço. Os rótulos batem com os valores
// gravados no banco e exibidos nas telas.
type Status string

const (
	StatusAguardandoMecanico   Status = "Aguardando Mecânico"
	StatusFilaDeServico        Status = "Fila de Serviço"
	StatusEmServico            Status = "Em Serviço"
	StatusAguardandoAprovacao  Status = "Aguardando aprovação"
	StatusEmAprovacao          Status = "Em Aprovação"
	StatusEmAnalise            Status = "Em Análise"
	StatusAguardandoOS         Status = "Aguardando OS"
	StatusAguardandoFornecedor Status = "Aguardando Fornecedor"
	StatusComprarNaRua         Status = "Comprar na Rua"
	StatusServicoExterno       Status = "Serviço Externo"
	StatusFinalizado           Status = "Finalizado"

	// StatusConcluida é um rótulo terminal legado que ainda aparece em
	// registros antigos; tratado como Finalizado nas filas ativas.
	StatusConcluida Status = "Concluída"
)

// Department é a fila departamental derivada do status.
type Department string

const (
	DepartmentOficina      Department = "Oficina"
	DepartmentAlmoxarifado Department = "Almoxarifado"
	DepartmentCompras      Department = "Compras"
	DepartmentFinalizados  Department = "Finalizados"

	// DepartmentServicoExterno só existe na trilha de auditoria, como marcador
	// de destino quando a OS sai para serviço externo.
	DepartmentServicoExterno Department = "Serviço Externo"
)

// Slugs usados na API (?departamento=...).
const (
	QueueOficina      = "oficina"
	QueueAlmoxarifado = "almoxarifado"
	QueueCompras      = "compras"
	QueueFinalizados  = "finalizados"
)

var workshopStatuses = []Status{
	StatusAguardandoMecanico,
	StatusFilaDeServico,
	StatusEmServico,
	StatusAguardandoAprovacao,
}

var warehouseStatuses = []Status{
	StatusEmAnalise,
	StatusAguardandoOS,
	StatusAguardandoFornecedor,
	StatusComprarNaRua,
}

var purchasingStatuses = []Status{
	StatusEmAprovacao,
}

// QueueStatuses mapeia cada fila para os status que a compõem. Ordens em
// "Serviço Externo" não aparecem aqui: o departamento delas é resolvido pelo
// histórico.
var QueueStatuses = map[string][]Status{
	QueueOficina:      workshopStatuses,
	QueueAlmoxarifado: warehouseStatuses,
	QueueCompras:      purchasingStatuses,
	QueueFinalizados:  {StatusFinalizado},
}

var allStatuses = map[Status]struct{}{
	StatusAguardandoMecanico:   {},
	StatusFilaDeServico:        {},
	StatusEmServico:            {},
	StatusAguardandoAprovacao:  {},
	StatusEmAprovacao:          {},
	StatusEmAnalise:            {},
	StatusAguardandoOS:         {},
	StatusAguardandoFornecedor: {},
	StatusComprarNaRua:         {},
	StatusServicoExterno:       {},
	StatusFinalizado:           {},
	StatusConcluida:            {},
}

func (s Status) Valid() bool {
	_, ok := allStatuses[s]
	return ok
}

// IsFinal indica um status terminal, excluído de todas as filas ativas.
func (s Status) IsFinal() bool {
	return s == StatusFinalizado || s == StatusConcluida
}

// Department devolve a fila derivada do status. Para Serviço Externo devolve
// string vazia e ok=false: o chamador precisa resolver pelo histórico.
func (s Status) Department() (Department, bool) {
	switch s {
	case StatusAguardandoMecanico, StatusFilaDeServico, StatusEmServico, StatusAguardandoAprovacao:
		return DepartmentOficina, true
	case StatusEmAnalise, StatusAguardandoOS, StatusAguardandoFornecedor, StatusComprarNaRua:
		return DepartmentAlmoxarifado, true
	case StatusEmAprovacao:
		return DepartmentCompras, true
	case StatusFinalizado, StatusConcluida:
		return DepartmentFinalizados, true
	}
	return "", false
}

// allowedTransitions é a única fonte de verdade das transições operadas pelas
// telas. Reabertura de ordem finalizada não passa por aqui: é uma operação
// explícita (ver CanReopen).
var allowedTransitions = map[Status][]Status{
	StatusAguardandoMecanico: {StatusFilaDeServico, StatusEmServico, StatusAguardandoAprovacao, StatusFinalizado, StatusEmAnalise, StatusServicoExterno},
	StatusFilaDeServico:      {StatusAguardandoMecanico, StatusEmServico, StatusAguardandoAprovacao, StatusFinalizado, StatusEmAnalise, StatusServicoExterno},
	StatusEmServico:          {StatusAguardandoMecanico, StatusFilaDeServico, StatusAguardandoAprovacao, StatusFinalizado, StatusEmAnalise, StatusServicoExterno},
	StatusAguardandoAprovacao: {StatusAguardandoMecanico, StatusFilaDeServico, StatusEmServico, StatusFinalizado, StatusEmAnalise, StatusServicoExterno},

	StatusEmAnalise:            {StatusAguardandoOS, StatusAguardandoFornecedor, StatusComprarNaRua, StatusEmAprovacao, StatusAguardandoMecanico, StatusServicoExterno},
	StatusAguardandoOS:         {StatusEmAnalise, StatusAguardandoFornecedor, StatusComprarNaRua, StatusEmAprovacao, StatusAguardandoMecanico, StatusServicoExterno},
	StatusAguardandoFornecedor: {StatusEmAnalise, StatusAguardandoOS, StatusComprarNaRua, StatusEmAprovacao, StatusAguardandoMecanico, StatusServicoExterno},
	StatusComprarNaRua:         {StatusEmAnalise, StatusAguardandoOS, StatusAguardandoFornecedor, StatusEmAprovacao, StatusAguardandoMecanico, StatusServicoExterno},

	StatusEmAprovacao: {StatusEmAnalise, StatusServicoExterno},

	StatusServicoExterno: {
		StatusAguardandoMecanico, StatusFilaDeServico, StatusEmServico, StatusAguardandoAprovacao,
		StatusEmAnalise, StatusAguardandoOS, StatusAguardandoFornecedor, StatusComprarNaRua,
		StatusEmAprovacao, StatusFinalizado,
	},

	// Finalizado/Concluída não têm saídas aqui: qualquer movimento exige a
	// operação de reabertura.
	StatusFinalizado: {},
	StatusConcluida:  {},
}

func CanTransition(from, to Status) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CanReopen valida o destino de uma reabertura explícita de ordem finalizada.
func CanReopen(to Status) bool {
	return to.Valid() && !to.IsFinal() && to != StatusServicoExterno
}
