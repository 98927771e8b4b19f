package routes

import (
	"fleet-system/internal/authz"
	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
	"fleet-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runWorkOrderRouter(
	secureGroup *echo.Group,
	orderService *services.WorkOrderService,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	orderController := controllers.NewWorkOrderController(orderService, logger)

	secureGroup.GET("/ordens", orderController.GetOrders, authMW.AuthorizeAny(authz.OrdensView))
	secureGroup.GET("/ordens/:id", orderController.FindOrder, authMW.AuthorizeAny(authz.OrdensView))
	secureGroup.GET("/ordens/:id/historico", orderController.GetHistory, authMW.AuthorizeAny(authz.OrdensView))
	secureGroup.POST("/ordens", orderController.CreateOrder, authMW.AuthorizeAny(authz.OrdensCreate))
	secureGroup.PUT("/ordens/:id", orderController.UpdateOrder, authMW.AuthorizeAny(authz.OrdensUpdate))
	secureGroup.DELETE("/ordens/:id", orderController.DeleteOrder, authMW.AuthorizeAny(authz.OrdensDelete))

	secureGroup.PUT("/ordens/:id/status", orderController.UpdateStatus, authMW.AuthorizeAny(authz.OrdensStatus))
	secureGroup.PUT("/ordens/:id/servico-externo", orderController.SendToExternal, authMW.AuthorizeAny(authz.OrdensStatus))
	secureGroup.PUT("/ordens/:id/reabrir", orderController.Reopen, authMW.AuthorizeAny(authz.OrdensReabrir))
	secureGroup.POST("/ordens/:id/observacoes", orderController.AddObservation, authMW.AuthorizeAny(authz.OrdensObservacao))
}
