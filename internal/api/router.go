package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/teamforge/workforce-system/docs"
	"github.com/teamforge/workforce-system/internal/api/handler"
	"github.com/teamforge/workforce-system/internal/api/middleware"
	"github.com/teamforge/workforce-system/internal/auth"
	"github.com/teamforge/workforce-system/internal/core/domain"
	"github.com/teamforge/workforce-system/internal/core/service"
	mongodb "github.com/teamforge/workforce-system/internal/infrastructure/db/mongo"
	redisdb "github.com/teamforge/workforce-system/internal/infrastructure/db/redis"
)

// Dependencies carries everything the router needs to assemble the service.
type Dependencies struct {
	Mongo   *mongo.Database
	Redis   *redis.Client
	Tokens  *auth.TokenProvider
	Limiter *redisdb.LoginLimiter
	Logger  zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("workforce"))

	// --- Dependencies ---
	employeeRepo := mongodb.NewEmployeeRepository(deps.Mongo)
	projectRepo := mongodb.NewProjectRepository(deps.Mongo)
	taskRepo := mongodb.NewTaskRepository(deps.Mongo)

	authService := service.NewAuthService(employeeRepo, deps.Tokens, deps.Limiter, deps.Logger)
	employeeService := service.NewEmployeeService(employeeRepo, taskRepo, deps.Logger)
	projectService := service.NewProjectService(projectRepo, deps.Logger)
	taskService := service.NewTaskService(taskRepo, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)

	// --- Auth routes (public) ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/register", authHandler.Register)

	// --- Protected API routes ---
	// Authenticate attaches a principal when a valid token is presented but
	// never rejects by itself; the role gates below do the rejecting.
	api := e.Group("/api", middleware.Authenticate(deps.Tokens, employeeRepo))

	anyRole := middleware.RequireRole(domain.RolePM, domain.RoleEmployee)
	pmOnly := middleware.RequireRole(domain.RolePM)
	employeeOnly := middleware.RequireRole(domain.RoleEmployee)

	api.POST("/createEmployee", employeeHandler.Create, pmOnly)
	api.GET("/getAllEmployees", employeeHandler.GetAll, anyRole)
	api.GET("/getEmployeeById", employeeHandler.GetByID, anyRole)
	api.PUT("/updateEmployee", employeeHandler.Update, anyRole)
	api.DELETE("/deleteEmployee", employeeHandler.Delete, pmOnly)

	api.POST("/createProject", projectHandler.Create, pmOnly)
	api.GET("/getAllProjects", projectHandler.GetAll, anyRole)
	api.GET("/getProjectById", projectHandler.GetByID, anyRole)
	api.GET("/getProjectsByEmployee", projectHandler.GetByEmployee, anyRole)
	api.PUT("/updateProject", projectHandler.Update, pmOnly)
	api.DELETE("/deleteProject", projectHandler.Delete, pmOnly)

	api.POST("/createTask", taskHandler.Create, pmOnly)
	api.GET("/getAllTasks", taskHandler.GetAll, pmOnly)
	api.GET("/getTasksByEmployee", taskHandler.GetByEmployee, employeeOnly)
	api.GET("/getTaskById", taskHandler.GetByID, pmOnly)
	api.PUT("/updateTask", taskHandler.Update, anyRole)
	api.DELETE("/deleteTask", taskHandler.Delete, pmOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
