package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event é qualquer evento publicado no barramento.
type Event interface {
	Name() string
}

// Listener processa um evento; erros são logados, nunca propagados ao
// publicador.
type Listener func(ctx context.Context, event Event) error

type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger,
	}
}

func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish entrega o evento de forma assíncrona a todos os inscritos.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	eventName := event.Name()
	for _, listener := range b.listeners[eventName] {
		go func(l Listener) {
			ctxWithTimeout, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			if err := l(ctxWithTimeout, event); err != nil {
				b.logger.Error("erro em listener de evento",
					zap.String("event", eventName),
					zap.Error(err),
				)
			}
		}(listener)
	}
}
