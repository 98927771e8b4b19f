package routes

import (
	"fleet-system/internal/authz"
	"fleet-system/internal/controllers"
	"fleet-system/internal/services"
	"fleet-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runUserRouter(
	secureGroup *echo.Group,
	userService *services.UserService,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	userController := controllers.NewUserController(userService, logger)

	secureGroup.GET("/usuarios", userController.GetUsers, authMW.AuthorizeAny(authz.UsuariosView))
	secureGroup.GET("/usuarios/:id", userController.FindUser, authMW.AuthorizeAny(authz.UsuariosView))
	secureGroup.POST("/usuarios", userController.CreateUser, authMW.AuthorizeAny(authz.UsuariosManage))
	secureGroup.PUT("/usuarios/:id", userController.UpdateUser, authMW.AuthorizeAny(authz.UsuariosManage))
	secureGroup.DELETE("/usuarios/:id", userController.DeleteUser, authMW.AuthorizeAny(authz.UsuariosManage))

	secureGroup.GET("/usuarios/:id/permissoes", userController.GetUserPermissions, authMW.AuthorizeAny(authz.UsuariosView))
	secureGroup.PUT("/usuarios/:id/permissoes", userController.SetOverride, authMW.AuthorizeAny(authz.UsuariosManage))
	secureGroup.DELETE("/usuarios/:id/permissoes/:permissionId", userController.RemoveOverride, authMW.AuthorizeAny(authz.UsuariosManage))
}
