package services

import (
	"context"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo       repositories.UserRepositoryInterface
	permissionRepo repositories.PermissionRepositoryInterface
	permissionsSvc AuthPermissionServiceInterface
	logger         *zap.Logger
}

func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	permissionRepo repositories.PermissionRepositoryInterface,
	permissionsSvc AuthPermissionServiceInterface,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		permissionRepo: permissionRepo,
		permissionsSvc: permissionsSvc,
		logger:         logger,
	}
}

func toUserDTO(u repositories.UserItem) dto.UserDTO {
	return dto.UserDTO{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		RoleID:    u.RoleID,
		RoleNome:  u.RoleNome,
		Ativo:     u.Ativo,
		CreatedAt: u.CreatedAt.Local().Format("2006-01-02 15:04:05"),
	}
}

func (s *UserService) GetUsers(ctx context.Context, filter utils.Filter) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.userRepo.GetUsers(ctx, filter)
	if err != nil {
		s.logger.Error("erro ao listar usuários", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, toUserDTO(u))
	}
	return result, total, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toUserDTO(*user)
	return &out, nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("erro ao gerar hash de senha", zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	user := entities.User{
		Nome:      payload.Nome,
		Email:     payload.Email,
		SenhaHash: string(hash),
		RoleID:    payload.RoleID,
	}
	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("erro ao criar usuário", zap.String("email", payload.Email), zap.Error(err))
		return nil, err
	}
	s.logger.Info("usuário criado", zap.Uint64("userID", created.ID), zap.String("email", created.Email))
	out := toUserDTO(*created)
	return &out, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	var senhaHash *string
	if payload.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*payload.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("erro ao gerar hash de senha", zap.Error(err))
			return nil, apperrors.ErrInternalServer
		}
		hashStr := string(hash)
		senhaHash = &hashStr
	}

	updated, err := s.userRepo.UpdateUser(ctx, id, payload, senhaHash)
	if err != nil {
		s.logger.Error("erro ao atualizar usuário", zap.Uint64("userID", id), zap.Error(err))
		return nil, err
	}

	if payload.RoleID != nil || payload.Ativo != nil {
		_ = s.permissionsSvc.InvalidateUserCache(ctx, id)
	}
	out := toUserDTO(*updated)
	return &out, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		s.logger.Error("erro ao excluir usuário", zap.Uint64("userID", id), zap.Error(err))
		return err
	}
	return s.permissionsSvc.InvalidateUserCache(ctx, id)
}

// GetUserPermissions devolve o preset do perfil, as exceções individuais e o
// conjunto efetivo resultante.
func (s *UserService) GetUserPermissions(ctx context.Context, userID uint64) (*dto.UserPermissionsDTO, error) {
	user, err := s.userRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rolePermissions, err := s.permissionRepo.GetRolePermissionCodes(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	overrides, err := s.permissionRepo.GetUserOverrides(ctx, userID)
	if err != nil {
		return nil, err
	}
	effective, err := s.permissionsSvc.EffectivePermissions(ctx, userID)
	if err != nil {
		return nil, err
	}

	preset := make([]dto.PermissionDTO, 0, len(rolePermissions))
	for _, code := range rolePermissions {
		preset = append(preset, dto.PermissionDTO{Codigo: code})
	}
	overrideDTOs := make([]dto.UserOverrideDTO, 0, len(overrides))
	for _, o := range overrides {
		overrideDTOs = append(overrideDTOs, dto.UserOverrideDTO{
			PermissionID: o.PermissionID,
			Codigo:       o.Codigo,
			Permitido:    o.Permitido,
		})
	}
	codes := make([]string, 0, len(effective))
	for code := range effective {
		codes = append(codes, code)
	}

	return &dto.UserPermissionsDTO{
		UserID:    userID,
		Preset:    preset,
		Overrides: overrideDTOs,
		Efetivas:  codes,
	}, nil
}

// SetOverride grava uma exceção individual e derruba o cache do usuário.
func (s *UserService) SetOverride(ctx context.Context, userID uint64, payload dto.OverrideDTO) error {
	if _, err := s.userRepo.FindUser(ctx, userID); err != nil {
		return err
	}
	if err := s.permissionRepo.SetUserOverride(ctx, userID, payload.PermissionID, payload.Permitido); err != nil {
		s.logger.Error("erro ao gravar exceção de permissão",
			zap.Uint64("userID", userID),
			zap.Uint64("permissionID", payload.PermissionID),
			zap.Error(err))
		return err
	}
	s.logger.Info("exceção de permissão gravada",
		zap.Uint64("userID", userID),
		zap.Uint64("permissionID", payload.PermissionID),
		zap.Bool("permitido", payload.Permitido))
	return s.permissionsSvc.InvalidateUserCache(ctx, userID)
}

// RemoveOverride apaga a exceção, devolvendo o usuário ao preset do perfil.
func (s *UserService) RemoveOverride(ctx context.Context, userID, permissionID uint64) error {
	if err := s.permissionRepo.DeleteUserOverride(ctx, userID, permissionID); err != nil {
		return err
	}
	return s.permissionsSvc.InvalidateUserCache(ctx, userID)
}
