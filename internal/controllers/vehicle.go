package controllers

import (
	"net/http"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type VehicleController struct {
	vehicleService *services.VehicleService
	logger         *zap.Logger
}

func NewVehicleController(vehicleService *services.VehicleService, logger *zap.Logger) *VehicleController {
	return &VehicleController{vehicleService: vehicleService, logger: logger}
}

func (c *VehicleController) GetVehicles(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	vehicles, total, err := c.vehicleService.GetVehicles(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, vehicles, "Veículos listados com sucesso", http.StatusOK, total)
}

func (c *VehicleController) FindVehicle(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	vehicle, err := c.vehicleService.FindVehicle(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, vehicle, "Veículo encontrado", http.StatusOK)
}

func (c *VehicleController) CreateVehicle(ctx echo.Context) error {
	var payload dto.CreateVehicleDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	vehicle, err := c.vehicleService.CreateVehicle(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, vehicle, "Veículo cadastrado com sucesso", http.StatusCreated)
}

func (c *VehicleController) UpdateVehicle(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateVehicleDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	vehicle, err := c.vehicleService.UpdateVehicle(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, vehicle, "Veículo atualizado com sucesso", http.StatusOK)
}

func (c *VehicleController) DeleteVehicle(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.vehicleService.DeleteVehicle(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Veículo excluído com sucesso", http.StatusOK)
}
