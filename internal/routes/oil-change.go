package routes

import (
	"fleet-system/internal/authz"
	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
	"fleet-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runOilChangeRouter(
	secureGroup *echo.Group,
	oilChangeService *services.OilChangeService,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	oilChangeController := controllers.NewOilChangeController(oilChangeService, logger)

	secureGroup.GET("/trocas-oleo", oilChangeController.GetOilChanges, authMW.AuthorizeAny(authz.TrocasView))
	secureGroup.GET("/trocas-oleo/vencidas", oilChangeController.GetOverdue, authMW.AuthorizeAny(authz.TrocasView))
	secureGroup.POST("/trocas-oleo", oilChangeController.CreateOilChange, authMW.AuthorizeAny(authz.TrocasManage))
	secureGroup.DELETE("/trocas-oleo/:id", oilChangeController.DeleteOilChange, authMW.AuthorizeAny(authz.TrocasManage))
}
