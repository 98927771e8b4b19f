package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/authz"
	"fleet-system/internal/controllers"
	"fleet-system/internal/listeners"
	"fleet-system/internal/repositories"
	"fleet-system/internal/services"
	"fleet-system/pkg/eventbus"
	"fleet-system/pkg/middleware"
	"fleet-system/pkg/service"
	"fleet-system/pkg/websocket"
)

// InitRouter monta todas as dependências e registra as rotas da API.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	authPermissionService services.AuthPermissionServiceInterface,
) {
	api := e.Group("/api")
	gatekeeper := authz.NewGatekeeper()
	authMW := middleware.NewAuthMiddleware(jwtSvc, authPermissionService, gatekeeper, logger)

	// Barramento de eventos e hub de notificações em tempo real.
	bus := eventbus.New(logger)
	hub := websocket.NewHub(logger)
	go hub.Run()
	listeners.NewNotificationListener(hub, logger).Register(bus)

	// Repositórios.
	vehicleRepo := repositories.NewVehicleRepository(dbConn)
	mechanicRepo := repositories.NewMechanicRepository(dbConn)
	orderRepo := repositories.NewWorkOrderRepository(dbConn, logger)
	historyRepo := repositories.NewWorkOrderHistoryRepository(dbConn)
	partRepo := repositories.NewPartRepository(dbConn)
	oilChangeRepo := repositories.NewOilChangeRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	roleRepo := repositories.NewRoleRepository(dbConn)
	permissionRepo := repositories.NewPermissionRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)

	// Serviços.
	authService := services.NewAuthService(userRepo, authPermissionService, jwtSvc, logger)
	vehicleService := services.NewVehicleService(vehicleRepo, logger)
	mechanicService := services.NewMechanicService(mechanicRepo, logger)
	orderService := services.NewWorkOrderService(dbConn, orderRepo, historyRepo, vehicleRepo, bus, logger)
	planningService := services.NewPlanningService(orderRepo, mechanicRepo, bus, logger)
	partService := services.NewPartService(partRepo, logger)
	oilChangeService := services.NewOilChangeService(oilChangeRepo, vehicleRepo, logger)
	userService := services.NewUserService(userRepo, permissionRepo, authPermissionService, logger)
	roleService := services.NewRoleService(roleRepo, permissionRepo, logger)
	reportService := services.NewReportService(reportRepo, logger)

	// Rotas.
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authService, logger)
	runWorkOrderRouter(secureGroup, orderService, logger, authMW)
	runPlanningRouter(secureGroup, planningService, logger, authMW)
	runVehicleRouter(secureGroup, vehicleService, logger, authMW)
	runMechanicRouter(secureGroup, mechanicService, logger, authMW)
	runPartRouter(secureGroup, partService, logger, authMW)
	runOilChangeRouter(secureGroup, oilChangeService, logger, authMW)
	runReportRouter(secureGroup, reportService, logger, authMW)
	runUserRouter(secureGroup, userService, logger, authMW)
	runRoleRouter(secureGroup, roleService, logger, authMW)

	// O handshake do websocket autentica pelo token na query string.
	wsController := controllers.NewWebSocketController(hub, jwtSvc, logger)
	e.GET("/ws", wsController.ServeWs)

	logger.Info("rotas registradas")
}
