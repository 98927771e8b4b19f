package main

import (
	"context"
	"net/http"

	"fleet-system/internal/repositories"
	"fleet-system/internal/routes"
	"fleet-system/internal/services"
	"fleet-system/pkg/config"
	"fleet-system/pkg/customvalidator"
	"fleet-system/pkg/database/postgresql"
	apperrors "fleet-system/pkg/errors"
	applogger "fleet-system/pkg/logger"
	"fleet-system/pkg/service"
	"fleet-system/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("pânico capturado",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Erro interno do servidor", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Session-ID"},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("erro ao registrar validações customizadas", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("não foi possível conectar ao Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	userRepo := repositories.NewUserRepository(dbConn)
	permissionRepo := repositories.NewPermissionRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	authPermissionService := services.NewAuthPermissionService(
		userRepo, permissionRepo, cacheRepo, logger, cfg.Auth.PermissionsCacheTTL)

	routes.InitRouter(e, dbConn, jwtSvc, logger, authPermissionService)

	logger.Info("servidor iniciado", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("erro ao iniciar o servidor", zap.Error(err))
	}
}
