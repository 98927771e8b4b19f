package services

import (
	"context"
	"sort"

	"fleet-system/internal/dto"
	"fleet-system/internal/repositories"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/service"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo       repositories.UserRepositoryInterface
	permissionsSvc AuthPermissionServiceInterface
	jwtService     service.JWTService
	logger         *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	permissionsSvc AuthPermissionServiceInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		permissionsSvc: permissionsSvc,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokensDTO, error) {
	user, err := s.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		s.logger.Warn("login com e-mail desconhecido", zap.String("email", payload.Email))
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.Ativo {
		s.logger.Warn("login de usuário inativo", zap.Uint64("userID", user.ID))
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(payload.Password)); err != nil {
		s.logger.Warn("login com senha incorreta", zap.Uint64("userID", user.ID))
		return nil, apperrors.ErrInvalidCredentials
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		s.logger.Error("erro ao gerar tokens", zap.Uint64("userID", user.ID), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	s.logger.Info("login realizado", zap.Uint64("userID", user.ID))
	return &dto.TokensDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshTokenDTO) (*dto.TokensDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	user, err := s.userRepo.FindUser(ctx, claims.UserID)
	if err != nil || !user.Ativo {
		return nil, apperrors.ErrUnauthorized
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		s.logger.Error("erro ao renovar tokens", zap.Uint64("userID", user.ID), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}
	return &dto.TokensDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	permissions, err := s.permissionsSvc.EffectivePermissions(ctx, userID)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(permissions))
	for code := range permissions {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return &dto.ProfileDTO{
		ID:          user.ID,
		Nome:        user.Nome,
		Email:       user.Email,
		RoleID:      user.RoleID,
		RoleNome:    user.RoleNome,
		Permissions: codes,
	}, nil
}
