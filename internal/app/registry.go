package app

import (
	"database/sql"
	"os"

	"go-hostel/internal/attendancetype"
	"go-hostel/internal/auth"
	"go-hostel/internal/health"
	"go-hostel/internal/mealattendance"
	"go-hostel/internal/menu"
	"go-hostel/internal/messaging/kafka"
	"go-hostel/internal/middleware"
	"go-hostel/internal/movement"
	"go-hostel/internal/rbac"
	"go-hostel/internal/shared/photostore"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	photos := photostore.NewDiskStore(uploadDir)

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	mealRepo := mealattendance.NewRepository(gormDB)
	typedRepo := attendancetype.NewRepository(gormDB)
	movementRepo := movement.NewRepository(gormDB)
	menuRepo := menu.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	mealService := mealattendance.NewService(db, mealRepo, mealPolicyFromEnv())
	typedService := attendancetype.NewServiceWithOutbox(db, typedRepo, outboxRepo)
	movementService := movement.NewServiceWithOutbox(db, movementRepo, outboxRepo)
	menuService := menu.NewService(db, menuRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, photos)
	mealHandler := mealattendance.NewHandler(mealService)
	typedHandler := attendancetype.NewHandler(typedService, photos)
	movementHandler := movement.NewHandler(movementService)
	menuHandler := menu.NewHandler(menuService)
	healthHandler := health.NewHandler(db, rdb)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.Static("/uploads", uploadDir)
	health.RegisterRoutes(router, healthHandler)

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, enforcer)
		mealattendance.RegisterRoutes(api, mealHandler, enforcer)
		attendancetype.RegisterRoutes(api, typedHandler, enforcer)
		movement.RegisterRoutes(api, movementHandler, enforcer, rdb)
		menu.RegisterRoutes(api, menuHandler, enforcer)
	}

	return nil
}
