package controllers

import (
	"net/http"

	"fleet-system/pkg/service"
	appwebsocket "fleet-system/pkg/websocket"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketController struct {
	hub        *appwebsocket.Hub
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewWebSocketController(hub *appwebsocket.Hub, jwtService service.JWTService, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{
		hub:        hub,
		jwtService: jwtService,
		logger:     logger,
	}
}

// ServeWs autentica pelo token na query string, já que o handshake do
// navegador não envia o header Authorization.
func (c *WebSocketController) ServeWs(ctx echo.Context) error {
	tokenString := ctx.QueryParam("token")
	if tokenString == "" {
		return ctx.String(http.StatusUnauthorized, "token ausente")
	}

	claims, err := c.jwtService.ValidateToken(tokenString)
	if err != nil || claims.IsRefreshToken {
		return ctx.String(http.StatusUnauthorized, "token inválido")
	}

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Error("falha ao promover conexão para websocket", zap.Error(err))
		return err
	}

	client := appwebsocket.NewClient(c.hub, conn, claims.UserID)
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	c.logger.Info("cliente websocket conectado", zap.Uint64("userID", claims.UserID))
	return nil
}
