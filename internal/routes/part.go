package routes

import (
	"fleet-system/internal/authz"
	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
	"fleet-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runPartRouter(
	secureGroup *echo.Group,
	partService *services.PartService,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	partController := controllers.NewPartController(partService, logger)

	secureGroup.GET("/pecas", partController.GetParts, authMW.AuthorizeAny(authz.EstoqueView))
	secureGroup.GET("/pecas/:id", partController.FindPart, authMW.AuthorizeAny(authz.EstoqueView))
	secureGroup.POST("/pecas", partController.CreatePart, authMW.AuthorizeAny(authz.EstoqueManage))
	secureGroup.PUT("/pecas/:id", partController.UpdatePart, authMW.AuthorizeAny(authz.EstoqueManage))
	secureGroup.DELETE("/pecas/:id", partController.DeletePart, authMW.AuthorizeAny(authz.EstoqueManage))

	secureGroup.GET("/pecas/:id/movimentacoes", partController.GetMovements, authMW.AuthorizeAny(authz.EstoqueView))
	secureGroup.POST("/pecas/:id/movimentacoes", partController.CreateMovement, authMW.AuthorizeAny(authz.EstoqueMove))
}
