package controllers

import (
	"net/http"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MechanicController struct {
	mechanicService *services.MechanicService
	logger          *zap.Logger
}

func NewMechanicController(mechanicService *services.MechanicService, logger *zap.Logger) *MechanicController {
	return &MechanicController{mechanicService: mechanicService, logger: logger}
}

func (c *MechanicController) GetMechanics(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	mechanics, total, err := c.mechanicService.GetMechanics(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, mechanics, "Mecânicos listados com sucesso", http.StatusOK, total)
}

func (c *MechanicController) FindMechanic(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	mechanic, err := c.mechanicService.FindMechanic(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, mechanic, "Mecânico encontrado", http.StatusOK)
}

func (c *MechanicController) CreateMechanic(ctx echo.Context) error {
	var payload dto.CreateMechanicDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	mechanic, err := c.mechanicService.CreateMechanic(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, mechanic, "Mecânico cadastrado com sucesso", http.StatusCreated)
}

func (c *MechanicController) UpdateMechanic(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateMechanicDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	mechanic, err := c.mechanicService.UpdateMechanic(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, mechanic, "Mecânico atualizado com sucesso", http.StatusOK)
}

func (c *MechanicController) DeleteMechanic(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.mechanicService.DeleteMechanic(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Mecânico excluído com sucesso", http.StatusOK)
}
