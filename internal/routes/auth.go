package routes

import (
	"fleet-system/internal/controllers"
	"fleet-system/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runAuthRouter(
	api *echo.Group,
	secureGroup *echo.Group,
	authService *services.AuthService,
	logger *zap.Logger,
) {
	authController := controllers.NewAuthController(authService, logger)

	api.POST("/auth/login", authController.Login)
	api.POST("/auth/refresh", authController.Refresh)

	secureGroup.GET("/auth/perfil", authController.Profile)
}
