package controllers

import (
	"net/http"
	"strconv"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserController struct {
	userService *services.UserService
	logger      *zap.Logger
}

func NewUserController(userService *services.UserService, logger *zap.Logger) *UserController {
	return &UserController{userService: userService, logger: logger}
}

func (c *UserController) GetUsers(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	users, total, err := c.userService.GetUsers(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, users, "Usuários listados com sucesso", http.StatusOK, total)
}

func (c *UserController) FindUser(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	user, err := c.userService.FindUser(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, user, "Usuário encontrado", http.StatusOK)
}

func (c *UserController) CreateUser(ctx echo.Context) error {
	var payload dto.CreateUserDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	user, err := c.userService.CreateUser(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, user, "Usuário criado com sucesso", http.StatusCreated)
}

func (c *UserController) UpdateUser(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateUserDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	user, err := c.userService.UpdateUser(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, user, "Usuário atualizado com sucesso", http.StatusOK)
}

func (c *UserController) DeleteUser(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.userService.DeleteUser(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Usuário excluído com sucesso", http.StatusOK)
}

// GetUserPermissions mostra preset, exceções e conjunto efetivo do usuário.
func (c *UserController) GetUserPermissions(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	permissions, err := c.userService.GetUserPermissions(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, permissions, "Permissões do usuário listadas com sucesso", http.StatusOK)
}

func (c *UserController) SetOverride(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.OverrideDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.userService.SetOverride(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Exceção de permissão gravada com sucesso", http.StatusOK)
}

func (c *UserController) RemoveOverride(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	permissionID, err := strconv.ParseUint(ctx.Param("permissionId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "formato de ID inválido"), c.logger)
	}
	if err := c.userService.RemoveOverride(ctx.Request().Context(), id, permissionID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Exceção de permissão removida com sucesso", http.StatusOK)
}
