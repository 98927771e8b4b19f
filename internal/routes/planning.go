package routes

import (
	"fleet-system/internal/authz"
	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
	"fleet-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runPlanningRouter(
	secureGroup *echo.Group,
	planningService *services.PlanningService,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	planningController := controllers.NewPlanningController(planningService, logger)

	secureGroup.GET("/planejamento", planningController.GetBoard, authMW.AuthorizeAny(authz.PlanejamentoView))
	secureGroup.PUT("/planejamento/reorder", planningController.Reorder, authMW.AuthorizeAny(authz.PlanejamentoReorder))
	secureGroup.PUT("/planejamento/reassign", planningController.Reassign, authMW.AuthorizeAny(authz.PlanejamentoReassign))
	secureGroup.PUT("/planejamento/display-order", planningController.SetDisplayOrder, authMW.AuthorizeAny(authz.PlanejamentoView))
}
