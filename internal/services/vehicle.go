package services

import (
	"context"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/utils"

	"go.uber.org/zap"
)

type VehicleService struct {
	vehicleRepo repositories.VehicleRepositoryInterface
	logger      *zap.Logger
}

func NewVehicleService(vehicleRepo repositories.VehicleRepositoryInterface, logger *zap.Logger) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo, logger: logger}
}

func toVehicleDTO(v entities.Vehicle) dto.VehicleDTO {
	return dto.VehicleDTO{
		ID:        v.ID,
		Placa:     v.Placa,
		Modelo:    v.Modelo,
		Marca:     v.Marca,
		Ano:       v.Ano,
		KmAtual:   v.KmAtual,
		Ativo:     v.Ativo,
		CreatedAt: v.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

func (s *VehicleService) GetVehicles(ctx context.Context, filter utils.Filter) ([]dto.VehicleDTO, uint64, error) {
	vehicles, total, err := s.vehicleRepo.GetVehicles(ctx, filter)
	if err != nil {
		s.logger.Error("erro ao listar veículos", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.VehicleDTO, 0, len(vehicles))
	for _, v := range vehicles {
		result = append(result, toVehicleDTO(v))
	}
	return result, total, nil
}

func (s *VehicleService) FindVehicle(ctx context.Context, id uint64) (*dto.VehicleDTO, error) {
	vehicle, err := s.vehicleRepo.FindVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toVehicleDTO(*vehicle)
	return &out, nil
}

func (s *VehicleService) CreateVehicle(ctx context.Context, payload dto.CreateVehicleDTO) (*dto.VehicleDTO, error) {
	vehicle := entities.Vehicle{
		Placa:   payload.Placa,
		Modelo:  payload.Modelo,
		Marca:   payload.Marca,
		Ano:     payload.Ano,
		KmAtual: payload.KmAtual,
	}
	created, err := s.vehicleRepo.CreateVehicle(ctx, vehicle)
	if err != nil {
		s.logger.Error("erro ao cadastrar veículo", zap.String("placa", payload.Placa), zap.Error(err))
		return nil, err
	}
	s.logger.Info("veículo cadastrado", zap.Uint64("vehicleID", created.ID), zap.String("placa", created.Placa))
	out := toVehicleDTO(*created)
	return &out, nil
}

func (s *VehicleService) UpdateVehicle(ctx context.Context, id uint64, payload dto.UpdateVehicleDTO) (*dto.VehicleDTO, error) {
	updated, err := s.vehicleRepo.UpdateVehicle(ctx, id, payload)
	if err != nil {
		s.logger.Error("erro ao atualizar veículo", zap.Uint64("vehicleID", id), zap.Error(err))
		return nil, err
	}
	out := toVehicleDTO(*updated)
	return &out, nil
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, id uint64) error {
	err := s.vehicleRepo.DeleteVehicle(ctx, id)
	if err != nil {
		s.logger.Error("erro ao excluir veículo", zap.Uint64("vehicleID", id), zap.Error(err))
	}
	return err
}
