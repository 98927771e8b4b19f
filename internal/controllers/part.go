package controllers

import (
	"net/http"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PartController struct {
	partService *services.PartService
	logger      *zap.Logger
}

func NewPartController(partService *services.PartService, logger *zap.Logger) *PartController {
	return &PartController{partService: partService, logger: logger}
}

func (c *PartController) GetParts(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	parts, total, err := c.partService.GetParts(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, parts, "Peças listadas com sucesso", http.StatusOK, total)
}

func (c *PartController) FindPart(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	part, err := c.partService.FindPart(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, part, "Peça encontrada", http.StatusOK)
}

func (c *PartController) CreatePart(ctx echo.Context) error {
	var payload dto.CreatePartDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	part, err := c.partService.CreatePart(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, part, "Peça cadastrada com sucesso", http.StatusCreated)
}

func (c *PartController) UpdatePart(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdatePartDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	part, err := c.partService.UpdatePart(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, part, "Peça atualizada com sucesso", http.StatusOK)
}

func (c *PartController) DeletePart(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.partService.DeletePart(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Peça excluída com sucesso", http.StatusOK)
}

// CreateMovement registra entrada ou saída de estoque da peça :id.
func (c *PartController) CreateMovement(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.CreateMovementDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	actor, err := utils.ActorFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	movement, err := c.partService.CreateMovement(ctx.Request().Context(), id, payload, actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, movement, "Movimentação registrada com sucesso", http.StatusCreated)
}

func (c *PartController) GetMovements(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	movements, total, err := c.partService.GetMovements(ctx.Request().Context(), id, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, movements, "Movimentações listadas com sucesso", http.StatusOK, total)
}
