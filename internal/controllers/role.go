package controllers

import (
	"net/http"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RoleController struct {
	roleService *services.RoleService
	logger      *zap.Logger
}

func NewRoleController(roleService *services.RoleService, logger *zap.Logger) *RoleController {
	return &RoleController{roleService: roleService, logger: logger}
}

func (c *RoleController) GetRoles(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	roles, total, err := c.roleService.GetRoles(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, roles, "Perfis listados com sucesso", http.StatusOK, total)
}

func (c *RoleController) FindRole(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	role, err := c.roleService.FindRole(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, role, "Perfil encontrado", http.StatusOK)
}

func (c *RoleController) CreateRole(ctx echo.Context) error {
	var payload dto.CreateRoleDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	role, err := c.roleService.CreateRole(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, role, "Perfil criado com sucesso", http.StatusCreated)
}

func (c *RoleController) UpdateRole(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateRoleDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	role, err := c.roleService.UpdateRole(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, role, "Perfil atualizado com sucesso", http.StatusOK)
}

func (c *RoleController) DeleteRole(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.roleService.DeleteRole(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Perfil excluído com sucesso", http.StatusOK)
}

// GetPermissions lista o catálogo completo de permissões do sistema.
func (c *RoleController) GetPermissions(ctx echo.Context) error {
	permissions, err := c.roleService.GetPermissions(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, permissions, "Permissões listadas com sucesso", http.StatusOK)
}
