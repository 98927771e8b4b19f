package services

import (
	"context"

	"fleet-system/internal/dto"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/utils"

	"go.uber.org/zap"
)

type RoleService struct {
	roleRepo       repositories.RoleRepositoryInterface
	permissionRepo repositories.PermissionRepositoryInterface
	logger         *zap.Logger
}

func NewRoleService(
	roleRepo repositories.RoleRepositoryInterface,
	permissionRepo repositories.PermissionRepositoryInterface,
	logger *zap.Logger,
) *RoleService {
	return &RoleService{roleRepo: roleRepo, permissionRepo: permissionRepo, logger: logger}
}

func toRoleDTO(r repositories.RoleItem) dto.RoleDTO {
	return dto.RoleDTO{
		ID:          r.ID,
		Nome:        r.Nome,
		Descricao:   r.Descricao.String,
		Permissions: r.Permissions,
		CreatedAt:   r.CreatedAt,
	}
}

func (s *RoleService) GetRoles(ctx context.Context, filter utils.Filter) ([]dto.RoleDTO, uint64, error) {
	roles, total, err := s.roleRepo.GetRoles(ctx, filter)
	if err != nil {
		s.logger.Error("erro ao listar perfis", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.RoleDTO, 0, len(roles))
	for _, r := range roles {
		result = append(result, toRoleDTO(r))
	}
	return result, total, nil
}

func (s *RoleService) FindRole(ctx context.Context, id uint64) (*dto.RoleDTO, error) {
	role, err := s.roleRepo.FindRole(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toRoleDTO(*role)
	return &out, nil
}

func (s *RoleService) CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*dto.RoleDTO, error) {
	created, err := s.roleRepo.CreateRole(ctx, payload)
	if err != nil {
		s.logger.Error("erro ao criar perfil", zap.String("nome", payload.Nome), zap.Error(err))
		return nil, err
	}
	s.logger.Info("perfil criado", zap.Uint64("roleID", created.ID), zap.String("nome", created.Nome))
	out := toRoleDTO(*created)
	return &out, nil
}

// UpdateRole altera o preset do perfil. O novo conjunto vale para cada usuário
// quando o cache individual dele expira.
func (s *RoleService) UpdateRole(ctx context.Context, id uint64, payload dto.UpdateRoleDTO) (*dto.RoleDTO, error) {
	updated, err := s.roleRepo.UpdateRole(ctx, id, payload)
	if err != nil {
		s.logger.Error("erro ao atualizar perfil", zap.Uint64("roleID", id), zap.Error(err))
		return nil, err
	}
	out := toRoleDTO(*updated)
	return &out, nil
}

func (s *RoleService) DeleteRole(ctx context.Context, id uint64) error {
	err := s.roleRepo.DeleteRole(ctx, id)
	if err != nil {
		s.logger.Error("erro ao excluir perfil", zap.Uint64("roleID", id), zap.Error(err))
	}
	return err
}

func (s *RoleService) GetPermissions(ctx context.Context) ([]dto.PermissionDTO, error) {
	permissions, err := s.permissionRepo.GetPermissions(ctx)
	if err != nil {
		s.logger.Error("erro ao listar permissões", zap.Error(err))
		return nil, err
	}
	result := make([]dto.PermissionDTO, 0, len(permissions))
	for _, p := range permissions {
		result = append(result, dto.PermissionDTO{
			ID:        p.ID,
			Codigo:    p.Codigo,
			Descricao: p.Descricao.String,
		})
	}
	return result, nil
}
