package routes

import (
	"fleet-system/internal/authz"
	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
	"fleet-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runReportRouter(
	secureGroup *echo.Group,
	reportService services.ReportServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	reportController := controllers.NewReportController(reportService, logger)

	secureGroup.GET("/relatorios/ordens", reportController.GetOrdersReport, authMW.AuthorizeAny(authz.RelatoriosView))
	secureGroup.GET("/relatorios/status", reportController.GetStatusSummary, authMW.AuthorizeAny(authz.RelatoriosView))
}
