package services

import (
	"context"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type PartService struct {
	partRepo repositories.PartRepositoryInterface
	logger   *zap.Logger
}

func NewPartService(partRepo repositories.PartRepositoryInterface, logger *zap.Logger) *PartService {
	return &PartService{partRepo: partRepo, logger: logger}
}

func toPartDTO(p entities.Part) dto.PartDTO {
	return dto.PartDTO{
		ID:        p.ID,
		Codigo:    p.Codigo,
		Nome:      p.Nome,
		Unidade:   p.Unidade,
		Saldo:     p.Saldo,
		Minimo:    p.Minimo,
		Custo:     p.Custo,
		CreatedAt: p.CreatedAt.Local().Format("2006-01-02 15:04:05"),
	}
}

func toMovementDTO(m entities.PartMovement) dto.MovementDTO {
	out := dto.MovementDTO{
		ID:         m.ID,
		PartID:     m.PartID,
		Tipo:       m.Tipo,
		Quantidade: m.Quantidade,
		Observacao: m.Observacao.String,
		ActorID:    m.ActorID,
		ActorNome:  m.ActorNome,
		CreatedAt:  m.CreatedAt.Local().Format("2006-01-02 15:04:05"),
	}
	if m.WorkOrderID.Valid {
		orderID := m.WorkOrderID.Uint64
		out.WorkOrderID = &orderID
	}
	return out
}

func (s *PartService) GetParts(ctx context.Context, filter utils.Filter) ([]dto.PartDTO, uint64, error) {
	parts, total, err := s.partRepo.GetParts(ctx, filter)
	if err != nil {
		s.logger.Error("erro ao listar peças", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.PartDTO, 0, len(parts))
	for _, p := range parts {
		result = append(result, toPartDTO(p))
	}
	return result, total, nil
}

func (s *PartService) FindPart(ctx context.Context, id uint64) (*dto.PartDTO, error) {
	part, err := s.partRepo.FindPart(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toPartDTO(*part)
	return &out, nil
}

func (s *PartService) CreatePart(ctx context.Context, payload dto.CreatePartDTO) (*dto.PartDTO, error) {
	part := entities.Part{
		Codigo:  payload.Codigo,
		Nome:    payload.Nome,
		Unidade: payload.Unidade,
		Saldo:   payload.Saldo,
		Minimo:  payload.Minimo,
		Custo:   payload.Custo,
	}
	created, err := s.partRepo.CreatePart(ctx, part)
	if err != nil {
		s.logger.Error("erro ao cadastrar peça", zap.String("codigo", payload.Codigo), zap.Error(err))
		return nil, err
	}
	s.logger.Info("peça cadastrada", zap.Uint64("partID", created.ID), zap.String("codigo", created.Codigo))
	out := toPartDTO(*created)
	return &out, nil
}

func (s *PartService) UpdatePart(ctx context.Context, id uint64, payload dto.UpdatePartDTO) (*dto.PartDTO, error) {
	updated, err := s.partRepo.UpdatePart(ctx, id, payload)
	if err != nil {
		s.logger.Error("erro ao atualizar peça", zap.Uint64("partID", id), zap.Error(err))
		return nil, err
	}
	out := toPartDTO(*updated)
	return &out, nil
}

func (s *PartService) DeletePart(ctx context.Context, id uint64) error {
	err := s.partRepo.DeletePart(ctx, id)
	if err != nil {
		s.logger.Error("erro ao excluir peça", zap.Uint64("partID", id), zap.Error(err))
	}
	return err
}

// CreateMovement registra entrada ou saída de estoque em nome do ator.
func (s *PartService) CreateMovement(ctx context.Context, partID uint64, payload dto.CreateMovementDTO, actor utils.Actor) (*dto.MovementDTO, error) {
	movement := entities.PartMovement{
		PartID:     partID,
		Tipo:       payload.Tipo,
		Quantidade: payload.Quantidade,
		ActorID:    actor.ID,
		ActorNome:  actor.Name,
	}
	if payload.WorkOrderID != nil {
		movement.WorkOrderID = null.Uint64From(*payload.WorkOrderID)
	}
	if payload.Observacao != "" {
		movement.Observacao = null.StringFrom(payload.Observacao)
	}

	created, err := s.partRepo.CreateMovement(ctx, movement)
	if err != nil {
		s.logger.Error("erro ao movimentar estoque",
			zap.Uint64("partID", partID),
			zap.String("tipo", payload.Tipo),
			zap.Int64("quantidade", payload.Quantidade),
			zap.Error(err))
		return nil, err
	}
	s.logger.Info("estoque movimentado",
		zap.Uint64("partID", partID),
		zap.String("tipo", created.Tipo),
		zap.Int64("quantidade", created.Quantidade),
		zap.Uint64("actorID", actor.ID))
	out := toMovementDTO(*created)
	return &out, nil
}

func (s *PartService) GetMovements(ctx context.Context, partID uint64, filter utils.Filter) ([]dto.MovementDTO, uint64, error) {
	if _, err := s.partRepo.FindPart(ctx, partID); err != nil {
		return nil, 0, err
	}
	movements, total, err := s.partRepo.GetMovements(ctx, partID, filter)
	if err != nil {
		s.logger.Error("erro ao listar movimentações", zap.Uint64("partID", partID), zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		result = append(result, toMovementDTO(m))
	}
	return result, total, nil
}
