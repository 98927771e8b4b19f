package constants

// Tipos de movimentação de estoque.
const (
	MovementEntrada = "entrada"
	MovementSaida   = "saida"
)

// Eventos publicados no eventbus.
const (
	EventOrderStatusChanged = "order.status_changed"
	EventOrderReassigned    = "order.reassigned"
)
