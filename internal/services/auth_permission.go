package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fleet-system/internal/authz"
	"fleet-system/internal/repositories"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/middleware"

	"go.uber.org/zap"
)

type AuthPermissionServiceInterface interface {
	ResolveActor(ctx context.Context, userID uint64) (*middleware.ResolvedActor, error)
	EffectivePermissions(ctx context.Context, userID uint64) (map[string]bool, error)
	InvalidateUserCache(ctx context.Context, userID uint64) error
}

// AuthPermissionService calcula e cacheia o conjunto efetivo de permissões de
// cada usuário. O cache vive no Redis com TTL curto: mudanças no preset do
// perfil se propagam na expiração, mudanças por usuário invalidam na hora.
type AuthPermissionService struct {
	userRepo       repositories.UserRepositoryInterface
	permissionRepo repositories.PermissionRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	logger         *zap.Logger
	cacheTTL       time.Duration
}

func NewAuthPermissionService(
	userRepo repositories.UserRepositoryInterface,
	permissionRepo repositories.PermissionRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) AuthPermissionServiceInterface {
	return &AuthPermissionService{
		userRepo:       userRepo,
		permissionRepo: permissionRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		cacheTTL:       cacheTTL,
	}
}

func userPermissionsCacheKey(userID uint64) string {
	return fmt.Sprintf("auth:permissions:user:%d", userID)
}

func (s *AuthPermissionService) ResolveActor(ctx context.Context, userID uint64) (*middleware.ResolvedActor, error) {
	user, err := s.userRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.Ativo {
		return nil, apperrors.ErrForbidden
	}

	permissions, err := s.EffectivePermissions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &middleware.ResolvedActor{
		ID:          user.ID,
		Name:        user.Nome,
		RoleID:      user.RoleID,
		Permissions: permissions,
	}, nil
}

func (s *AuthPermissionService) EffectivePermissions(ctx context.Context, userID uint64) (map[string]bool, error) {
	cacheKey := userPermissionsCacheKey(userID)

	if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil {
		permissions := make(map[string]bool)
		if err := json.Unmarshal([]byte(cached), &permissions); err == nil {
			return permissions, nil
		}
		s.logger.Warn("cache de permissões corrompido, recalculando",
			zap.Uint64("userID", userID), zap.String("key", cacheKey))
	}

	user, err := s.userRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	rolePermissions, err := s.permissionRepo.GetRolePermissionCodes(ctx, user.RoleID)
	if err != nil {
		s.logger.Error("erro ao buscar preset do perfil", zap.Uint64("roleID", user.RoleID), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}
	overrides, err := s.permissionRepo.GetUserOverrides(ctx, userID)
	if err != nil {
		s.logger.Error("erro ao buscar exceções do usuário", zap.Uint64("userID", userID), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	overrideMap := make(map[string]bool, len(overrides))
	for _, override := range overrides {
		overrideMap[override.Codigo] = override.Permitido
	}
	permissions := authz.Effective(rolePermissions, overrideMap)

	if payload, err := json.Marshal(permissions); err == nil {
		if err := s.cacheRepo.Set(ctx, cacheKey, string(payload), s.cacheTTL); err != nil {
			s.logger.Warn("não foi possível cachear permissões", zap.Uint64("userID", userID), zap.Error(err))
		}
	}
	return permissions, nil
}

func (s *AuthPermissionService) InvalidateUserCache(ctx context.Context, userID uint64) error {
	if err := s.cacheRepo.Del(ctx, userPermissionsCacheKey(userID)); err != nil {
		s.logger.Error("erro ao invalidar cache de permissões", zap.Uint64("userID", userID), zap.Error(err))
		return err
	}
	return nil
}
