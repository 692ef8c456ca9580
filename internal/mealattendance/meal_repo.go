package mealattendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=meal_repo.go -destination=mock/meal_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *MealAttendance) error
	FindByUserAndDay(ctx context.Context, userID string, dayStart, dayEnd time.Time) (*MealAttendance, error)
	FindAllByUser(ctx context.Context, userID string) ([]MealAttendance, error)
	FindAllWithUser(ctx context.Context, dayStart, dayEnd *time.Time) ([]MealAttendance, error)
	Update(ctx context.Context, a *MealAttendance) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, a *MealAttendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByUserAndDay(ctx context.Context, userID string, dayStart, dayEnd time.Time) (*MealAttendance, error) {
	var a MealAttendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date BETWEEN ? AND ?", dayStart, dayEnd).
		First(&a).Error
	return &a, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]MealAttendance, error) {
	var rows []MealAttendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllWithUser(ctx context.Context, dayStart, dayEnd *time.Time) ([]MealAttendance, error) {
	q := r.db.WithContext(ctx).Preload("User")
	if dayStart != nil && dayEnd != nil {
		q = q.Where("date BETWEEN ? AND ?", dayStart, dayEnd)
	}

	var rows []MealAttendance
	err := q.Order("date ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *MealAttendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}
