package routes

import (
	"fleet-system/internal/authz"
	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
	"fleet-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runMechanicRouter(
	secureGroup *echo.Group,
	mechanicService *services.MechanicService,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	mechanicController := controllers.NewMechanicController(mechanicService, logger)

	secureGroup.GET("/mecanicos", mechanicController.GetMechanics, authMW.AuthorizeAny(authz.MecanicosView))
	secureGroup.GET("/mecanicos/:id", mechanicController.FindMechanic, authMW.AuthorizeAny(authz.MecanicosView))
	secureGroup.POST("/mecanicos", mechanicController.CreateMechanic, authMW.AuthorizeAny(authz.MecanicosManage))
	secureGroup.PUT("/mecanicos/:id", mechanicController.UpdateMechanic, authMW.AuthorizeAny(authz.MecanicosManage))
	secureGroup.DELETE("/mecanicos/:id", mechanicController.DeleteMechanic, authMW.AuthorizeAny(authz.MecanicosManage))
}
