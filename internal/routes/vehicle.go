package routes

import (
	"fleet-system/internal/authz"
	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
	"fleet-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runVehicleRouter(
	secureGroup *echo.Group,
	vehicleService *services.VehicleService,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	vehicleController := controllers.NewVehicleController(vehicleService, logger)

	secureGroup.GET("/veiculos", vehicleController.GetVehicles, authMW.AuthorizeAny(authz.VeiculosView))
	secureGroup.GET("/veiculos/:id", vehicleController.FindVehicle, authMW.AuthorizeAny(authz.VeiculosView))
	secureGroup.POST("/veiculos", vehicleController.CreateVehicle, authMW.AuthorizeAny(authz.VeiculosCreate))
	secureGroup.PUT("/veiculos/:id", vehicleController.UpdateVehicle, authMW.AuthorizeAny(authz.VeiculosUpdate))
	secureGroup.DELETE("/veiculos/:id", vehicleController.DeleteVehicle, authMW.AuthorizeAny(authz.VeiculosDelete))
}
