package controllers

import (
	"fmt"
	"net/http"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PlanningController struct {
	planningService *services.PlanningService
	logger          *zap.Logger
}

func NewPlanningController(planningService *services.PlanningService, logger *zap.Logger) *PlanningController {
	return &PlanningController{planningService: planningService, logger: logger}
}

func batchMessage(result *dto.PlanningResultDTO, fallback string) string {
	if result.Total > 0 && result.Atualizadas < result.Total {
		return fmt.Sprintf("Aplicadas %d de %d alterações; o quadro reflete o que foi gravado", result.Atualizadas, result.Total)
	}
	return fallback
}

// GetBoard devolve o quadro de planejamento: mecânicos ativos e suas filas.
func (c *PlanningController) GetBoard(ctx echo.Context) error {
	sessionID := utils.SessionIDFromContext(ctx.Request().Context())
	board, err := c.planningService.GetBoard(ctx.Request().Context(), sessionID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, board, "Quadro de planejamento carregado", http.StatusOK)
}

func (c *PlanningController) Reorder(ctx echo.Context) error {
	var payload dto.ReorderDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	sessionID := utils.SessionIDFromContext(ctx.Request().Context())
	result, err := c.planningService.Reorder(ctx.Request().Context(), payload, sessionID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, batchMessage(result, "Fila reordenada com sucesso"), http.StatusOK)
}

func (c *PlanningController) Reassign(ctx echo.Context) error {
	var payload dto.ReassignDTO
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

	sessionID := utils.SessionIDFromContext(ctx.Request().Context())
	result, err := c.planningService.Reassign(ctx.Request().Context(), payload, sessionID, actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, batchMessage(result, "Ordem reatribuída com sucesso"), http.StatusOK)
}

// SetDisplayOrder grava a ordem visual dos cartões só para a sessão atual.
func (c *PlanningController) SetDisplayOrder(ctx echo.Context) error {
	var payload dto.DisplayOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	sessionID := utils.SessionIDFromContext(ctx.Request().Context())
	board, err := c.planningService.SetDisplayOrder(ctx.Request().Context(), sessionID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, board, "Ordem de exibição atualizada para esta sessão", http.StatusOK)
}
