package listeners

import (
	"context"
	"fmt"

	"fleet-system/internal/events"
	"fleet-system/pkg/constants"
	"fleet-system/pkg/eventbus"
	"fleet-system/pkg/websocket"

	"go.uber.org/zap"
)

// NotificationListener traduz eventos de domínio em mensagens websocket para
// os painéis abertos.
type NotificationListener struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

func NewNotificationListener(hub *websocket.Hub, logger *zap.Logger) *NotificationListener {
	return &NotificationListener{hub: hub, logger: logger}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(constants.EventOrderStatusChanged, l.handleStatusChanged)
	bus.Subscribe(constants.EventOrderReassigned, l.handleReassigned)
}

func (l *NotificationListener) handleStatusChanged(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderStatusChangedEvent)
	if !ok {
		return fmt.Errorf("payload inesperado para %s: %T", event.Name(), event)
	}

	payload := websocket.OrderEventPayload{
		OrderID:    e.OrderID,
		Numero:     e.Numero,
		DeStatus:   string(e.FromStatus),
		ParaStatus: string(e.ToStatus),
		Ator:       e.ActorNome,
		Mensagem:   fmt.Sprintf("OS %s mudou de %s para %s", e.Numero, e.FromStatus, e.ToStatus),
	}
	return l.hub.Broadcast(payload, constants.EventOrderStatusChanged)
}

func (l *NotificationListener) handleReassigned(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderReassignedEvent)
	if !ok {
		return fmt.Errorf("payload inesperado para %s: %T", event.Name(), event)
	}

	payload := websocket.OrderEventPayload{
		OrderID:  e.OrderID,
		Numero:   e.Numero,
		Mecanico: e.ToMechanic,
		Ator:     e.ActorNome,
		Mensagem: fmt.Sprintf("OS %s transferida de %s para %s", e.Numero, e.FromMechanic, e.ToMechanic),
	}
	return l.hub.Broadcast(payload, constants.EventOrderReassigned)
}
