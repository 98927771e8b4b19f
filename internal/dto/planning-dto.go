package dto

// MechanicQueueDTO é um mecânico com sua fila ativa já normalizada.
type MechanicQueueDTO struct {
	ID     uint64         `json:"id"`
	Nome   string         `json:"nome"`
	Ordens []WorkOrderDTO `json:"ordens"`
}

// ReorderDTO move uma OS da posição DePosicao para ParaPosicao dentro da fila
// ativa (filtrada) do mecânico.
type ReorderDTO struct {
	MechanicID  uint64 `json:"mechanic_id" validate:"required"`
	DePosicao   int    `json:"de_posicao" validate:"gte=0"`
	ParaPosicao int    `json:"para_posicao" validate:"gte=0"`
}

// ReassignDTO transfere uma OS da fila de um mecânico para outra.
type ReassignDTO struct {
	OrderID        uint64 `json:"order_id" validate:"required"`
	DeMechanicID   uint64 `json:"de_mechanic_id" validate:"required"`
	ParaMechanicID uint64 `json:"para_mechanic_id" validate:"required"`
}

// DisplayOrderDTO define a ordem visual dos cartões de mecânico na sessão
// atual. Nunca é persistida.
type DisplayOrderDTO struct {
	MechanicIDs []uint64 `json:"mechanic_ids" validate:"required,min=1"`
}

// PlanningResultDTO é a resposta de toda mutação do planejamento: o resultado
// do lote mais a coleção recarregada do banco (a "fonte da verdade").
type PlanningResultDTO struct {
	Total       int                `json:"total"`
	Atualizadas int                `json:"atualizadas"`
	Mecanicos   []MechanicQueueDTO `json:"mecanicos"`
}
