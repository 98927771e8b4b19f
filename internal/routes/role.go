package routes

import (
	"fleet-system/internal/authz"
	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
	"fleet-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runRoleRouter(
	secureGroup *echo.Group,
	roleService *services.RoleService,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	roleController := controllers.NewRoleController(roleService, logger)

	secureGroup.GET("/perfis", roleController.GetRoles, authMW.AuthorizeAny(authz.PerfisView))
	secureGroup.GET("/perfis/:id", roleController.FindRole, authMW.AuthorizeAny(authz.PerfisView))
	secureGroup.POST("/perfis", roleController.CreateRole, authMW.AuthorizeAny(authz.PerfisManage))
	secureGroup.PUT("/perfis/:id", roleController.UpdateRole, authMW.AuthorizeAny(authz.PerfisManage))
	secureGroup.DELETE("/perfis/:id", roleController.DeleteRole, authMW.AuthorizeAny(authz.PerfisManage))

	secureGroup.GET("/permissoes", roleController.GetPermissions, authMW.AuthorizeAny(authz.PermissoesView))
}
