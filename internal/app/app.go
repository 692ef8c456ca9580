package app

import (
	"os"
	"strconv"

	"go-hostel/internal/attendancetype"
	"go-hostel/internal/auth"
	"go-hostel/internal/mealattendance"
	"go-hostel/internal/menu"
	"go-hostel/internal/movement"
	"go-hostel/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
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

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	return registerModules(router, sqlDB, gormDB, redisClient)
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&auth.User{},
		&mealattendance.MealAttendance{},
		&attendancetype.TypedAttendance{},
		&movement.MovementLog{},
		&menu.Menu{},
	); err != nil {
		return err
	}

	// outbox is written with raw SQL, so its table is created the same way
	return gormDB.Exec(`
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload JSONB NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	last_error TEXT,
	next_retry_at TIMESTAMPTZ,
	sent_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`).Error
}

// mealPolicyFromEnv reads submission-rule overrides. Defaults match the
// shipped behavior: same-day marking allowed, clock windows off.
func mealPolicyFromEnv() mealattendance.Policy {
	policy := mealattendance.DefaultPolicy()

	if v := os.Getenv("MEAL_ADVANCE_NOTICE_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days >= 0 {
			policy.AdvanceNoticeDays = days
		} else {
			zap.L().Warn("ignoring invalid MEAL_ADVANCE_NOTICE_DAYS", zap.String("value", v))
		}
	}
	if v := os.Getenv("MEAL_ENFORCE_WINDOWS"); v != "" {
		if enforce, err := strconv.ParseBool(v); err == nil {
			policy.EnforceWindows = enforce
		} else {
			zap.L().Warn("ignoring invalid MEAL_ENFORCE_WINDOWS", zap.String("value", v))
		}
	}
	return policy
}
