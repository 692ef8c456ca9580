package attendancetype

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_type_repo.go -destination=mock/attendance_type_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *TypedAttendance) error
	FindByID(ctx context.Context, id string) (*TypedAttendance, error)
	FindByUserDayType(ctx context.Context, userID string, dayStart, dayEnd time.Time, attType string) (*TypedAttendance, error)
	FindAllByUser(ctx context.Context, userID string) ([]TypedAttendance, error)
	FindAllWithUser(ctx context.Context, dayStart, dayEnd *time.Time) ([]TypedAttendance, error)
	Update(ctx context.Context, a *TypedAttendance) error
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

func (r *repository) Create(ctx context.Context, a *TypedAttendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*TypedAttendance, error) {
	var a TypedAttendance
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error
	return &a, err
}

func (r *repository) FindByUserDayType(ctx context.Context, userID string, dayStart, dayEnd time.Time, attType string) (*TypedAttendance, error) {
	var a TypedAttendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date BETWEEN ? AND ?", dayStart, dayEnd).
		Where("type = ?", attType).
		First(&a).Error
	return &a, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]TypedAttendance, error) {
	var rows []TypedAttendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllWithUser(ctx context.Context, dayStart, dayEnd *time.Time) ([]TypedAttendance, error) {
	q := r.db.WithContext(ctx).Preload("User")
	if dayStart != nil && dayEnd != nil {
		q = q.Where("date BETWEEN ? AND ?", dayStart, dayEnd)
	}

	var rows []TypedAttendance
	err := q.Order("date DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *TypedAttendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}
