package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/muebleria/muebleria-api/internal/application/auth"
	"github.com/muebleria/muebleria-api/internal/application/usecase"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
	"github.com/muebleria/muebleria-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	UserUC       *usecase.UserUseCase
	AccessRuleUC *usecase.AccessRuleUseCase
	BranchUC     *usecase.BranchUseCase
	DriverUC     *usecase.DriverUseCase
	CategoryUC   *usecase.CategoryUseCase
	Metrics      *metrics.Metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware(deps.Metrics))

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Metrics)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas: JWT + frescura de credenciales + gate de horario
	protected := api.Group("/", AuthMiddleware(deps.AuthUC, deps.Metrics))

	manager := RequireRole(entity.RoleDeveloper, entity.RoleAdmin)

	// Usuarios: /me para cualquier autenticado; la gestión exige jerarquía
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.MyProfile)
	users.Put("/me/password", userHandler.UpdateOwnPassword)
	users.Put("/me/profile", userHandler.UpdateOwnProfile)
	users.Post("/", manager, userHandler.Create)
	users.Get("/", manager, userHandler.List)
	users.Get("/by-username/:username", manager, userHandler.GetByUsername)
	users.Get("/:id", manager, userHandler.GetByID)
	users.Put("/:id", manager, userHandler.Update)
	users.Delete("/:id", manager, userHandler.Delete)
	users.Post("/:id/restore", RequireRole(entity.RoleDeveloper), userHandler.Restore)
	users.Put("/:id/password", manager, userHandler.UpdateUserPassword)
	users.Put("/:id/profile", manager, userHandler.UpdateUserProfile)
	users.Put("/:id/driver-detail", manager, userHandler.UpdateDriverDetail)

	// Reglas de horario (anidadas bajo el usuario objetivo)
	ruleHandler := NewAccessRuleHandler(deps.AccessRuleUC)
	users.Get("/:id/access-rules", manager, ruleHandler.List)
	users.Post("/:id/access-rules", manager, ruleHandler.Create)
	users.Put("/:id/access-rules/:ruleId", manager, ruleHandler.Update)
	users.Delete("/:id/access-rules/:ruleId", manager, ruleHandler.Delete)

	// Sucursales: lectura para cualquier autenticado, escritura para gestores
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Post("/", manager, branchHandler.Create)
	branches.Put("/:id", RequireRole(entity.RoleDeveloper, entity.RoleAdmin, entity.RoleGestorSucursal), branchHandler.Update)
	branches.Put("/:id/restore", manager, branchHandler.Restore)
	branches.Delete("/:id", manager, branchHandler.Delete)

	// Choferes de reparto
	drivers := protected.Group("/drivers")
	driverHandler := NewDriverHandler(deps.DriverUC)
	drivers.Get("/", driverHandler.List)
	drivers.Get("/:id", driverHandler.GetByID)
	drivers.Post("/", RequireRole(entity.RoleDeveloper, entity.RoleAdmin, entity.RoleGestorSucursal), driverHandler.Create)
	drivers.Put("/:id", RequireRole(entity.RoleDeveloper, entity.RoleAdmin, entity.RoleGestorSucursal), driverHandler.Update)
	drivers.Delete("/:id", manager, driverHandler.Delete)

	// Categorías de muebles
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", RequireRole(entity.RoleDeveloper, entity.RoleAdmin, entity.RoleGestorInventario), categoryHandler.Create)
	categories.Put("/:id", RequireRole(entity.RoleDeveloper, entity.RoleAdmin, entity.RoleGestorInventario), categoryHandler.Update)
	categories.Delete("/:id", manager, categoryHandler.Delete)
}
