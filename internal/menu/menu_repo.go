package menu

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=menu_repo.go -destination=mock/menu_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, m *Menu) error
	FindByDay(ctx context.Context, dayStart, dayEnd time.Time) (*Menu, error)
	FindAll(ctx context.Context) ([]Menu, error)
	Update(ctx context.Context, m *Menu) error
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

func (r *repository) Create(ctx context.Context, m *Menu) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindByDay(ctx context.Context, dayStart, dayEnd time.Time) (*Menu, error) {
	var m Menu
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", dayStart, dayEnd).
		First(&m).Error
	return &m, err
}

func (r *repository) FindAll(ctx context.Context) ([]Menu, error) {
	var rows []Menu
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, m *Menu) error {
	return r.db.WithContext(ctx).Save(m).Error
}
