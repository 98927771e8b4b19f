package websocket

import "time"

// Envelope embrulha toda mensagem enviada ao front-end.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// OrderEventPayload notifica mudanças em ordens de serviço.
type OrderEventPayload struct {
	OrderID    uint64 `json:"orderId"`
	Numero     string `json:"numero"`
	DeStatus   string `json:"deStatus,omitempty"`
	ParaStatus string `json:"paraStatus,omitempty"`
	Mecanico   string `json:"mecanico,omitempty"`
	Ator       string `json:"ator"`
	Mensagem   string `json:"mensagem"`
}
