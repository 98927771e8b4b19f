package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Hub mantém os clientes conectados e distribui as notificações.
type Hub struct {
	clients     map[*Client]bool
	userClients map[uint64][]*Client
	broadcast   chan []byte
	Register    chan *Client
	unregister  chan *Client
	mu          sync.RWMutex
	logger      *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		userClients: make(map[uint64][]*Client),
		broadcast:   make(chan []byte),
		Register:    make(chan *Client),
		unregister:  make(chan *Client),
		logger:      logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.userClients[client.UserID] = append(h.userClients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Debug("cliente websocket conectado", zap.Uint64("userID", client.UserID))
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				clients := h.userClients[client.UserID]
				for i, c := range clients {
					if c == client {
						h.userClients[client.UserID] = append(clients[:i], clients[i+1:]...)
						break
					}
				}
				if len(h.userClients[client.UserID]) == 0 {
					delete(h.userClients, client.UserID)
				}
			}
			h.mu.Unlock()
			h.logger.Debug("cliente websocket desconectado", zap.Uint64("userID", client.UserID))
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast envia o payload para todos os clientes conectados.
func (h *Hub) Broadcast(payload interface{}, messageType string) error {
	envelope := Envelope{
		Type:      messageType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
	messageBytes, err := json.Marshal(envelope)
	if err != nil {
		h.logger.Error("erro ao serializar mensagem websocket", zap.Error(err))
		return err
	}
	h.broadcast <- messageBytes
	return nil
}
