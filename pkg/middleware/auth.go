package middleware

import (
	"context"
	"strings"

	"fleet-system/pkg/contextkeys"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/service"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ResolvedActor é o usuário autenticado com o conjunto efetivo de permissões
// (preset do perfil + exceções individuais) já calculado.
type ResolvedActor struct {
	ID          uint64
	Name        string
	RoleID      uint64
	Permissions map[string]bool
}

// ActorResolver é implementado pelo serviço de permissões.
type ActorResolver interface {
	ResolveActor(ctx context.Context, userID uint64) (*ResolvedActor, error)
}

// PermissionChecker é implementado pelo gatekeeper de autorização.
type PermissionChecker interface {
	Can(perms map[string]bool, permission string) bool
}

type AuthMiddleware struct {
	jwtService service.JWTService
	resolver   ActorResolver
	checker    PermissionChecker
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, resolver ActorResolver, checker PermissionChecker, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		resolver:   resolver,
		checker:    checker,
		logger:     logger,
	}
}

func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("token rejeitado", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}
		if claims.IsRefreshToken {
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		actor, err := m.resolver.ResolveActor(c.Request().Context(), claims.UserID)
		if err != nil {
			m.logger.Warn("falha ao resolver usuário autenticado", zap.Uint64("userID", claims.UserID), zap.Error(err))
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, actor.ID)
		ctx = context.WithValue(ctx, contextkeys.UserNameKey, actor.Name)
		ctx = context.WithValue(ctx, contextkeys.UserRoleIDKey, actor.RoleID)
		ctx = context.WithValue(ctx, contextkeys.UserPermissionsKey, actor.Permissions)
		if sessionID := c.Request().Header.Get("X-Session-ID"); sessionID != "" {
			ctx = context.WithValue(ctx, contextkeys.SessionIDKey, sessionID)
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// AuthorizeAny libera a rota se o usuário possuir ao menos uma das permissões.
func (m *AuthMiddleware) AuthorizeAny(permissions ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			perms := utils.PermissionsFromContext(c.Request().Context())
			for _, permission := range permissions {
				if m.checker.Can(perms, permission) {
					return next(c)
				}
			}
			m.logger.Warn("acesso negado",
				zap.Strings("required", permissions),
				zap.String("path", c.Path()),
			)
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}
	}
}
