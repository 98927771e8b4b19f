package services

import (
	"context"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/utils"

	"go.uber.org/zap"
)

type MechanicService struct {
	mechanicRepo repositories.MechanicRepositoryInterface
	logger       *zap.Logger
}

func NewMechanicService(mechanicRepo repositories.MechanicRepositoryInterface, logger *zap.Logger) *MechanicService {
	return &MechanicService{mechanicRepo: mechanicRepo, logger: logger}
}

func toMechanicDTO(m entities.Mechanic) dto.MechanicDTO {
	return dto.MechanicDTO{
		ID:        m.ID,
		Nome:      m.Nome,
		Ativo:     m.Ativo,
		CreatedAt: m.CreatedAt.Local().Format("2006-01-02 15:04:05"),
	}
}

func (s *MechanicService) GetMechanics(ctx context.Context, filter utils.Filter) ([]dto.MechanicDTO, uint64, error) {
	mechanics, total, err := s.mechanicRepo.GetMechanics(ctx, filter)
	if err != nil {
		s.logger.Error("erro ao listar mecânicos", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.MechanicDTO, 0, len(mechanics))
	for _, m := range mechanics {
		result = append(result, toMechanicDTO(m))
	}
	return result, total, nil
}

func (s *MechanicService) FindMechanic(ctx context.Context, id uint64) (*dto.MechanicDTO, error) {
	mechanic, err := s.mechanicRepo.FindMechanic(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toMechanicDTO(*mechanic)
	return &out, nil
}

func (s *MechanicService) CreateMechanic(ctx context.Context, payload dto.CreateMechanicDTO) (*dto.MechanicDTO, error) {
	created, err := s.mechanicRepo.CreateMechanic(ctx, entities.Mechanic{Nome: payload.Nome})
	if err != nil {
		s.logger.Error("erro ao cadastrar mecânico", zap.String("nome", payload.Nome), zap.Error(err))
		return nil, err
	}
	s.logger.Info("mecânico cadastrado", zap.Uint64("mechanicID", created.ID), zap.String("nome", created.Nome))
	out := toMechanicDTO(*created)
	return &out, nil
}

func (s *MechanicService) UpdateMechanic(ctx context.Context, id uint64, payload dto.UpdateMechanicDTO) (*dto.MechanicDTO, error) {
	updated, err := s.mechanicRepo.UpdateMechanic(ctx, id, payload)
	if err != nil {
		s.logger.Error("erro ao atualizar mecânico", zap.Uint64("mechanicID", id), zap.Error(err))
		return nil, err
	}
	out := toMechanicDTO(*updated)
	return &out, nil
}

func (s *MechanicService) DeleteMechanic(ctx context.Context, id uint64) error {
	err := s.mechanicRepo.DeleteMechanic(ctx, id)
	if err != nil {
		s.logger.Error("erro ao excluir mecânico", zap.Uint64("mechanicID", id), zap.Error(err))
	}
	return err
}
