package app

import (
	"context"
	"errors"
	"os"

	"hr-admin/internal/auth"
	"hr-admin/internal/document"
	"hr-admin/internal/employee"
	"hr-admin/internal/leave"
	"hr-admin/internal/middleware"
	"hr-admin/internal/salary"
	"hr-admin/internal/shared/connection"
	"hr-admin/internal/shared/counter"
	"hr-admin/internal/shared/principal"
	"hr-admin/internal/training"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BuildApp wires infrastructure, migrates the schema, seeds the admin
// account and registers every module on the router.
func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	if err := db.AutoMigrate(
		&auth.User{},
		&employee.Employee{},
		&salary.Salary{},
		&leave.LeaveRequest{},
		&training.Training{},
		&document.Document{},
		&counter.RegistrationCounter{},
	); err != nil {
		return err
	}

	if err := seedAdmin(db); err != nil {
		return err
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return err
	}
	router.Static("/uploads", uploadDir)

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, db, rdb, uploadDir)
}

// seedAdmin guarantees a usable admin login on a fresh database.
func seedAdmin(db *gorm.DB) error {
	ctx := context.Background()
	repo := auth.NewRepository(db)

	if _, err := repo.GetByUsername(ctx, "admin"); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &auth.User{
		ID:       uuid.New(),
		Username: "admin",
		FullName: "Administrator",
		Password: string(hash),
		Email:    "admin@sys.com",
		Role:     principal.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	zap.L().Info("seeded default admin account")
	return nil
}
