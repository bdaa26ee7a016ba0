package app

import (
	"os"

	"hr-admin/internal/assistant"
	"hr-admin/internal/auth"
	"hr-admin/internal/document"
	"hr-admin/internal/employee"
	"hr-admin/internal/leave"
	"hr-admin/internal/middleware"
	"hr-admin/internal/salary"
	"hr-admin/internal/session"
	"hr-admin/internal/shared/counter"
	"hr-admin/internal/stats"
	"hr-admin/internal/training"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	uploadDir string,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	trainingRepo := training.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	statsRepo := stats.NewRepository(gormDB)

	// --- Sessions ---
	sessions := session.NewRedisStore(rdb)

	// --- Services ---
	authService := auth.NewService(authRepo, counterRepo, sessions)
	employeeService := employee.NewService(employeeRepo, salaryRepo)
	salaryService := salary.NewService(salaryRepo)
	leaveService := leave.NewService(leaveRepo)
	trainingService := training.NewService(trainingRepo, rdb)
	documentService := document.NewService(documentRepo, employeeRepo, uploadDir)
	statsService := stats.NewService(statsRepo)
	assistantService := assistant.NewService(
		assistant.NewOpenAICompleter(os.Getenv("OPENAI_API_KEY")),
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	salaryHandler := salary.NewHandler(salaryService)
	leaveHandler := leave.NewHandler(leaveService)
	trainingHandler := training.NewHandler(trainingService)
	documentHandler := document.NewHandler(documentService)
	statsHandler := stats.NewHandler(statsService)
	assistantHandler := assistant.NewHandler(assistantService)

	// --- Shared middleware ---
	authn := middleware.SessionAuth(sessions)
	admin := middleware.RequireAdmin()
	employeeOnly := middleware.RequireEmployee()

	// --- Routes ---
	api := router.Group("/api")
	auth.RegisterRoutes(api, authHandler, sessions)
	employee.RegisterRoutes(api, employeeHandler, authn, admin, employeeOnly)
	salary.RegisterRoutes(api, salaryHandler, authn, admin)
	leave.RegisterRoutes(api, leaveHandler, authn, admin)
	training.RegisterRoutes(api, trainingHandler, authn, admin)
	document.RegisterRoutes(api, documentHandler, authn, admin, employeeOnly)
	stats.RegisterRoutes(api, statsHandler, authn)
	assistant.RegisterRoutes(api, assistantHandler, authn)

	return nil
}
