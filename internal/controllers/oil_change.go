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

type OilChangeController struct {
	oilChangeService *services.OilChangeService
	logger           *zap.Logger
}

func NewOilChangeController(oilChangeService *services.OilChangeService, logger *zap.Logger) *OilChangeController {
	return &OilChangeController{oilChangeService: oilChangeService, logger: logger}
}

// GetOilChanges lista as trocas, com filtro opcional ?veiculo=<id>.
func (c *OilChangeController) GetOilChanges(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	var vehicleID uint64
	if raw := ctx.QueryParam("veiculo"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "veículo inválido"), c.logger)
		}
		vehicleID = parsed
	}

	changes, total, err := c.oilChangeService.GetOilChanges(ctx.Request().Context(), filter, vehicleID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, changes, "Trocas de óleo listadas com sucesso", http.StatusOK, total)
}

func (c *OilChangeController) CreateOilChange(ctx echo.Context) error {
	var payload dto.CreateOilChangeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	change, err := c.oilChangeService.CreateOilChange(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, change, "Troca de óleo registrada com sucesso", http.StatusCreated)
}

func (c *OilChangeController) DeleteOilChange(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.oilChangeService.DeleteOilChange(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Troca de óleo excluída com sucesso", http.StatusOK)
}

// GetOverdue lista os veículos com a última troca de óleo vencida.
func (c *OilChangeController) GetOverdue(ctx echo.Context) error {
	changes, err := c.oilChangeService.GetOverdue(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, changes, "Trocas vencidas listadas com sucesso", http.StatusOK, uint64(len(changes)))
}
