package services

import (
	"context"
	"time"

	"fleet-system/internal/repositories"
	apperrors "fleet-system/pkg/errors"

	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	GetOrdersForExport(ctx context.Context, from, to time.Time) ([]repositories.ReportOrderRow, error)
	GetStatusSummary(ctx context.Context) (map[string]uint64, error)
}

type reportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{reportRepo: reportRepo, logger: logger}
}

func (s *reportService) GetOrdersForExport(ctx context.Context, from, to time.Time) ([]repositories.ReportOrderRow, error) {
	if !to.After(from) {
		return nil, apperrors.NewInvalidInputError("período inválido: a data final deve ser depois da inicial")
	}
	rows, err := s.reportRepo.ListOrdersForExport(ctx, from, to)
	if err != nil {
		s.logger.Error("erro ao montar relatório de ordens", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (s *reportService) GetStatusSummary(ctx context.Context) (map[string]uint64, error) {
	counts, err := s.reportRepo.CountOrdersByStatus(ctx)
	if err != nil {
		s.logger.Error("erro ao contar ordens por status", zap.Error(err))
		return nil, err
	}
	return counts, nil
}
