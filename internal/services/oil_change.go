package services

import (
	"context"
	"time"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type OilChangeService struct {
	oilChangeRepo repositories.OilChangeRepositoryInterface
	vehicleRepo   repositories.VehicleRepositoryInterface
	logger        *zap.Logger
}

func NewOilChangeService(
	oilChangeRepo repositories.OilChangeRepositoryInterface,
	vehicleRepo repositories.VehicleRepositoryInterface,
	logger *zap.Logger,
) *OilChangeService {
	return &OilChangeService{oilChangeRepo: oilChangeRepo, vehicleRepo: vehicleRepo, logger: logger}
}

// isOverdue diz se a troca venceu: pelo hodômetro atual do veículo ou pela
// data limite, o que ocorrer primeiro.
func isOverdue(change repositories.OilChangeItem, now time.Time) bool {
	if change.ProximaTrocaKm.Valid && change.VehicleKmAtual >= change.ProximaTrocaKm.Int64 {
		return true
	}
	if change.ProximaTrocaData.Valid && !now.Before(change.ProximaTrocaData.Time) {
		return true
	}
	return false
}

func toOilChangeDTO(change repositories.OilChangeItem, now time.Time) dto.OilChangeDTO {
	out := dto.OilChangeDTO{
		ID:        change.ID,
		VehicleID: change.VehicleID,
		Placa:     change.Placa,
		KmTroca:   change.KmTroca,
		DataTroca: change.DataTroca.Local().Format("2006-01-02"),
		TipoOleo:  change.TipoOleo,
		Vencida:   isOverdue(change, now),
		CreatedAt: change.CreatedAt.Local().Format("2006-01-02 15:04:05"),
	}
	if change.ProximaTrocaKm.Valid {
		km := change.ProximaTrocaKm.Int64
		out.ProximaTrocaKm = &km
	}
	if change.ProximaTrocaData.Valid {
		out.ProximaTrocaData = change.ProximaTrocaData.Time.Local().Format("2006-01-02")
	}
	if change.Observacao.Valid {
		out.Observacao = change.Observacao.String
	}
	return out
}

func (s *OilChangeService) GetOilChanges(ctx context.Context, filter utils.Filter, vehicleID uint64) ([]dto.OilChangeDTO, uint64, error) {
	changes, total, err := s.oilChangeRepo.GetOilChanges(ctx, filter, vehicleID)
	if err != nil {
		s.logger.Error("erro ao listar trocas de óleo", zap.Error(err))
		return nil, 0, err
	}
	now := time.Now()
	result := make([]dto.OilChangeDTO, 0, len(changes))
	for _, change := range changes {
		result = append(result, toOilChangeDTO(change, now))
	}
	return result, total, nil
}

// CreateOilChange registra a troca e avança o hodômetro do veículo quando o
// km informado é maior que o atual.
func (s *OilChangeService) CreateOilChange(ctx context.Context, payload dto.CreateOilChangeDTO) (*dto.OilChangeDTO, error) {
	if _, err := s.vehicleRepo.FindVehicle(ctx, payload.VehicleID); err != nil {
		return nil, err
	}

	dataTroca, err := time.ParseInLocation("2006-01-02", payload.DataTroca, time.Local)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("data da troca inválida: %s", payload.DataTroca)
	}

	change := entities.OilChange{
		VehicleID: payload.VehicleID,
		DataTroca: dataTroca,
		KmTroca:   payload.KmTroca,
		TipoOleo:  payload.TipoOleo,
	}
	if payload.ProximaTrocaKm != nil {
		change.ProximaTrocaKm = null.Int64From(*payload.ProximaTrocaKm)
	}
	if payload.ProximaTrocaData != "" {
		proximaData, err := time.ParseInLocation("2006-01-02", payload.ProximaTrocaData, time.Local)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("data da próxima troca inválida: %s", payload.ProximaTrocaData)
		}
		change.ProximaTrocaData = null.TimeFrom(proximaData)
	}
	if payload.Observacao != "" {
		change.Observacao = null.StringFrom(payload.Observacao)
	}

	created, err := s.oilChangeRepo.CreateOilChange(ctx, change)
	if err != nil {
		s.logger.Error("erro ao registrar troca de óleo", zap.Uint64("vehicleID", payload.VehicleID), zap.Error(err))
		return nil, err
	}

	if err := s.vehicleRepo.UpdateKmIfGreater(ctx, payload.VehicleID, payload.KmTroca); err != nil {
		s.logger.Warn("não foi possível atualizar o hodômetro do veículo",
			zap.Uint64("vehicleID", payload.VehicleID), zap.Error(err))
	}

	s.logger.Info("troca de óleo registrada",
		zap.Uint64("oilChangeID", created.ID),
		zap.Uint64("vehicleID", created.VehicleID))
	out := toOilChangeDTO(*created, time.Now())
	return &out, nil
}

func (s *OilChangeService) DeleteOilChange(ctx context.Context, id uint64) error {
	err := s.oilChangeRepo.DeleteOilChange(ctx, id)
	if err != nil {
		s.logger.Error("erro ao excluir troca de óleo", zap.Uint64("oilChangeID", id), zap.Error(err))
	}
	return err
}

// GetOverdue lista os veículos cuja última troca de óleo está vencida.
func (s *OilChangeService) GetOverdue(ctx context.Context) ([]dto.OilChangeDTO, error) {
	latest, err := s.oilChangeRepo.ListLatestPerVehicle(ctx)
	if err != nil {
		s.logger.Error("erro ao listar trocas vencidas", zap.Error(err))
		return nil, err
	}
	now := time.Now()
	result := make([]dto.OilChangeDTO, 0)
	for _, change := range latest {
		if isOverdue(change, now) {
			result = append(result, toOilChangeDTO(change, now))
		}
	}
	return result, nil
}
