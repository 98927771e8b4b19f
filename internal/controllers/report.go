package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"fleet-system/internal/repositories"
	"fleet-system/internal/services"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetOrdersReport exporta as ordens do período. Com ?format=xlsx devolve a
// planilha; sem o parâmetro, devolve as linhas em JSON.
func (c *ReportController) GetOrdersReport(ctx echo.Context) error {
	from, to, err := c.parsePeriod(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	format := strings.ToLower(ctx.QueryParam("format"))
	c.logger.Debug("relatório de ordens solicitado",
		zap.Time("de", from), zap.Time("ate", to), zap.String("format", format))

	rows, err := c.reportService.GetOrdersForExport(ctx.Request().Context(), from, to)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, rows)
	}
	return utils.SuccessResponse(ctx, rows, "Relatório gerado com sucesso", http.StatusOK, uint64(len(rows)))
}

func (c *ReportController) GetStatusSummary(ctx echo.Context) error {
	counts, err := c.reportService.GetStatusSummary(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, counts, "Resumo por status gerado com sucesso", http.StatusOK)
}

// parsePeriod lê ?de= e ?ate= (formato 2006-01-02). Sem parâmetros, o período
// é dos últimos 30 dias. O limite final é exclusivo, por isso soma-se um dia.
func (c *ReportController) parsePeriod(ctx echo.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
	to := now.AddDate(0, 0, 1).Truncate(24 * time.Hour)

	if raw := ctx.QueryParam("de"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "data inicial inválida, use o formato AAAA-MM-DD")
		}
		from = parsed
	}
	if raw := ctx.QueryParam("ate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "data final inválida, use o formato AAAA-MM-DD")
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}

var reportHeaders = []string{
	"Número", "Placa", "Modelo", "Descrição", "Status", "Mecânico", "Posição na fila", "Aberta em", "Atualizada em",
}

func reportRowToSlice(row repositories.ReportOrderRow) []interface{} {
	dateFmt := "02/01/2006 15:04"
	var mechanic, rank, updatedAt string
	if row.MechanicNome.Valid {
		mechanic = row.MechanicNome.String
	}
	if row.ExecutionOrder.Valid {
		rank = fmt.Sprintf("%d", row.ExecutionOrder.Int)
	}
	if row.UpdatedAt.Valid {
		updatedAt = row.UpdatedAt.Time.Format(dateFmt)
	}

	return []interface{}{
		row.Numero, row.Placa, row.Modelo, row.Descricao, row.Status,
		mechanic, rank, row.CreatedAt.Format(dateFmt), updatedAt,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, rows []repositories.ReportOrderRow) error {
	f := excelize.NewFile()
	sheet := "Ordens de serviço"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, item := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := reportRowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "C", 16)
	f.SetColWidth(sheet, "D", "D", 40)
	f.SetColWidth(sheet, "E", "F", 22)
	f.SetColWidth(sheet, "H", "I", 18)

	fileName := fmt.Sprintf("ordens_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
