package menu

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	menuerrors "go-hostel/internal/menu/errors"
	"go-hostel/internal/shared/datekey"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=menu_service.go -destination=mock/menu_service_mock.go -package=mock
type Service interface {
	// Upsert creates or amends the day's menu. Blank fields on an existing
	// menu keep their prior value. The boolean result reports creation.
	Upsert(ctx context.Context, req UpsertMenuRequest) (MenuResponse, bool, error)
	GetByDate(ctx context.Context, date string) (MenuResponse, error)
	GetAll(ctx context.Context) ([]MenuResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{
		db:     db,
		repo:   repo,
		logger: zap.L().Named("menu.service"),
	}
}

func (s *service) Upsert(ctx context.Context, req UpsertMenuRequest) (MenuResponse, bool, error) {
	day, err := datekey.Parse(req.Date)
	if err != nil {
		return MenuResponse{}, false, err
	}

	breakfast := strings.TrimSpace(req.Breakfast)
	lunch := strings.TrimSpace(req.Lunch)
	dinner := strings.TrimSpace(req.Dinner)
	if breakfast == "" && lunch == "" && dinner == "" {
		return MenuResponse{}, false, menuerrors.ErrEmptyMenu
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upsert menu begin tx failed", zap.Error(err))
		return MenuResponse{}, false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	dayStart, dayEnd := datekey.Range(day)

	existing, err := qtx.FindByDay(ctx, dayStart, dayEnd)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return MenuResponse{}, false, err
	}

	if err == nil {
		if breakfast != "" {
			existing.Breakfast = breakfast
		}
		if lunch != "" {
			existing.Lunch = lunch
		}
		if dinner != "" {
			existing.Dinner = dinner
		}
		if err := qtx.Update(ctx, existing); err != nil {
			s.logger.Error("upsert menu update failed", zap.Error(err))
			return MenuResponse{}, false, err
		}
		if err := tx.Commit(); err != nil {
			return MenuResponse{}, false, err
		}
		s.logger.Info("menu amended", zap.Time("day", day))
		return mapToResponse(existing), false, nil
	}

	m := &Menu{
		ID:        uuid.New(),
		Date:      day,
		Breakfast: breakfast,
		Lunch:     lunch,
		Dinner:    dinner,
	}
	if err := qtx.Create(ctx, m); err != nil {
		s.logger.Error("upsert menu create failed", zap.Error(err))
		return MenuResponse{}, false, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return MenuResponse{}, false, err
	}

	s.logger.Info("menu published", zap.Time("day", day))
	return mapToResponse(m), true, nil
}

func (s *service) GetByDate(ctx context.Context, date string) (MenuResponse, error) {
	day, err := datekey.Parse(date)
	if err != nil {
		return MenuResponse{}, err
	}

	dayStart, dayEnd := datekey.Range(day)
	m, err := s.repo.FindByDay(ctx, dayStart, dayEnd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// an unpublished day reads as an empty plan
			return MenuResponse{Date: day.Format("2006-01-02")}, nil
		}
		return MenuResponse{}, err
	}
	return mapToResponse(m), nil
}

func (s *service) GetAll(ctx context.Context) ([]MenuResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]MenuResponse, len(rows))
	for i := range rows {
		res[i] = mapToResponse(&rows[i])
	}
	return res, nil
}
