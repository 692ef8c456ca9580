package movement

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=movement_repo.go -destination=mock/movement_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, log *MovementLog) error
	FindOpenByUser(ctx context.Context, userID string) (*MovementLog, error)
	FindAllByUser(ctx context.Context, userID string) ([]MovementLog, error)
	FindAllWithUser(ctx context.Context) ([]MovementLog, error)
	Update(ctx context.Context, log *MovementLog) error
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

func (r *repository) Create(ctx context.Context, log *MovementLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *repository) FindOpenByUser(ctx context.Context, userID string) (*MovementLog, error) {
	var log MovementLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status = ?", StatusOut).
		First(&log).Error
	return &log, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]MovementLog, error) {
	var rows []MovementLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("out_time DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllWithUser(ctx context.Context) ([]MovementLog, error) {
	var rows []MovementLog
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("out_time DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, log *MovementLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}
