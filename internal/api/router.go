package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/venturehub/investment-api/docs"
	"github.com/venturehub/investment-api/internal/api/handler"
	"github.com/venturehub/investment-api/internal/api/middleware"
	"github.com/venturehub/investment-api/internal/core/domain"
	"github.com/venturehub/investment-api/internal/core/service"
	mongodb "github.com/venturehub/investment-api/internal/infrastructure/db/mongo"
	redisdb "github.com/venturehub/investment-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/venturehub/investment-api/internal/infrastructure/http/handlers"
	"github.com/venturehub/investment-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("investment"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	investmentRepo := mongodb.NewInvestmentRepository(db)
	interestRepo := mongodb.NewInterestRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, interestRepo, log)
	projectService := service.NewProjectService(projectRepo, userRepo, log)
	investmentService := service.NewInvestmentService(investmentRepo, projectRepo, dedup, log)
	interestService := service.NewInterestService(interestRepo, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	projectHandler := handler.NewProjectHandler(projectService)
	investmentHandler := handler.NewInvestmentHandler(investmentService)
	interestHandler := handler.NewInterestHandler(interestService, userService)
	adminHandler := handler.NewAdminHandler(userService, investmentService)

	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, authRequired)
	e.PATCH("/auth/profile", authHandler.UpdateProfile, authRequired)

	// --- Projects ---
	projects := e.Group("/v1/projects", authRequired)
	projects.POST("", projectHandler.Create, middleware.RBAC(domain.RoleEntrepreneur))
	projects.GET("", projectHandler.List)
	projects.GET("/recommended", projectHandler.Recommended)
	projects.GET("/mine", projectHandler.Mine, middleware.RBAC(domain.RoleEntrepreneur, domain.RoleAdmin))
	projects.GET("/:id", projectHandler.Get)
	projects.PATCH("/:id", projectHandler.Update, middleware.RBAC(domain.RoleEntrepreneur, domain.RoleAdmin))
	projects.DELETE("/:id", projectHandler.Delete, middleware.RBAC(domain.RoleEntrepreneur, domain.RoleAdmin))

	// --- Investments ---
	investments := e.Group("/v1/investments", authRequired)
	investments.POST("", investmentHandler.Create, middleware.RBAC(domain.RoleInvestor))
	investments.GET("/mine", investmentHandler.Mine, middleware.RBAC(domain.RoleInvestor))
	investments.GET("/project/:projectId", investmentHandler.ByProject)
	investments.GET("/:id", investmentHandler.Get)
	investments.DELETE("/:id", investmentHandler.Delete, middleware.RBAC(domain.RoleInvestor, domain.RoleAdmin))

	// --- Interests ---
	interests := e.Group("/v1/interests", authRequired)
	interests.GET("", interestHandler.List)
	interests.GET("/:id", interestHandler.Get)
	interests.POST("", interestHandler.Create, middleware.RBAC(domain.RoleAdmin))
	interests.PUT("/:id", interestHandler.Update, middleware.RBAC(domain.RoleAdmin))
	interests.DELETE("/:id", interestHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	me := e.Group("/v1/users/me", authRequired)
	me.POST("/interests/:id", interestHandler.AddUserInterest)
	me.DELETE("/interests/:id", interestHandler.RemoveUserInterest)

	// --- Admin ---
	admin := e.Group("/v1/admin", authRequired, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/investments", adminHandler.ListInvestments)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
