package controllers

import (
	"net/http"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService *services.AuthService
	logger      *zap.Logger
}

func NewAuthController(authService *services.AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	tokens, err := c.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, tokens, "Login realizado com sucesso", http.StatusOK)
}

func (c *AuthController) Refresh(ctx echo.Context) error {
	var payload dto.RefreshTokenDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	tokens, err := c.authService.Refresh(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, tokens, "Tokens renovados com sucesso", http.StatusOK)
}

// Profile devolve o usuário autenticado com o conjunto efetivo de permissões.
func (c *AuthController) Profile(ctx echo.Context) error {
	actor, err := utils.ActorFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	profile, err := c.authService.Profile(ctx.Request().Context(), actor.ID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, profile, "Perfil carregado com sucesso", http.StatusOK)
}
