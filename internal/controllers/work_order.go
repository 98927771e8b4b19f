package controllers

import (
	"net/http"
	"strconv"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	"fleet-system/pkg/constants"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type WorkOrderController struct {
	orderService *services.WorkOrderService
	logger       *zap.Logger
}

func NewWorkOrderController(orderService *services.WorkOrderService, logger *zap.Logger) *WorkOrderController {
	return &WorkOrderController{orderService: orderService, logger: logger}
}

func parseID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "formato de ID inválido")
	}
	return id, nil
}

// GetOrders lista a fila de um departamento (?departamento=oficina|almoxarifado|compras|finalizados).
func (c *WorkOrderController) GetOrders(ctx echo.Context) error {
	queue := ctx.QueryParam("departamento")
	if queue == "" {
		queue = constants.QueueOficina
	}
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	orders, total, err := c.orderService.GetOrdersByDepartment(ctx.Request().Context(), queue, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, orders, "Ordens de serviço listadas com sucesso", http.StatusOK, total)
}

func (c *WorkOrderController) FindOrder(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	order, err := c.orderService.FindOrder(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, order, "Ordem de serviço encontrada", http.StatusOK)
}

func (c *WorkOrderController) GetHistory(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	history, err := c.orderService.GetHistory(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, history, "Histórico da ordem listado com sucesso", http.StatusOK)
}

func (c *WorkOrderController) CreateOrder(ctx echo.Context) error {
	var payload dto.CreateWorkOrderDTO
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

	order, err := c.orderService.CreateOrder(ctx.Request().Context(), payload, actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, order, "Ordem de serviço criada com sucesso", http.StatusCreated)
}

func (c *WorkOrderController) UpdateOrder(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateWorkOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	order, err := c.orderService.UpdateOrder(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, order, "Ordem de serviço atualizada com sucesso", http.StatusOK)
}

func (c *WorkOrderController) DeleteOrder(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.orderService.DeleteOrder(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Ordem de serviço excluída com sucesso", http.StatusOK)
}

func (c *WorkOrderController) UpdateStatus(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateStatusDTO
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

	order, err := c.orderService.UpdateStatus(ctx.Request().Context(), id, payload, actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, order, "Status atualizado com sucesso", http.StatusOK)
}

func (c *WorkOrderController) SendToExternal(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.ExternalServiceDTO
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

	order, err := c.orderService.SendToExternal(ctx.Request().Context(), id, payload, actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, order, "Ordem enviada para serviço externo", http.StatusOK)
}

func (c *WorkOrderController) Reopen(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.ReopenDTO
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

	order, err := c.orderService.Reopen(ctx.Request().Context(), id, payload, actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, order, "Ordem reaberta com sucesso", http.StatusOK)
}

func (c *WorkOrderController) AddObservation(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.ObservationDTO
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

	if err := c.orderService.AddObservation(ctx.Request().Context(), id, payload, actor); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Observação registrada com sucesso", http.StatusCreated)
}
