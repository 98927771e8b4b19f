package events

import "fleet-system/pkg/constants"

// OrderStatusChangedEvent é publicado após o commit de uma transição de
// status, incluindo reaberturas e envio para serviço externo.
type OrderStatusChangedEvent struct {
	OrderID    uint64
	Numero     string
	FromStatus constants.Status
	ToStatus   constants.Status
	ActorID    uint64
	ActorNome  string
	Observacao string
}

func (e OrderStatusChangedEvent) Name() string {
	return constants.EventOrderStatusChanged
}

// OrderReassignedEvent é publicado quando uma OS troca de mecânico no
// planejamento.
type OrderReassignedEvent struct {
	OrderID      uint64
	Numero       string
	FromMechanic string
	ToMechanic   string
	ActorID      uint64
	ActorNome    string
}

func (e OrderReassignedEvent) Name() string {
	return constants.EventOrderReassigned
}
