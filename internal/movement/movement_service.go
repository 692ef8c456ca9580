package movement

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-hostel/internal/events"
	"go-hostel/internal/messaging/kafka"
	movementerrors "go-hostel/internal/movement/errors"
	"go-hostel/internal/rbac"
	"go-hostel/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=movement_service.go -destination=mock/movement_service_mock.go -package=mock
type Service interface {
	// Checkout opens a movement record. At most one record per user may be
	// open at a time.
	Checkout(ctx context.Context, userID, reason string) (MovementLogResponse, error)
	// Checkin closes the caller's open record and stamps the return time.
	Checkin(ctx context.Context, userID string) (MovementLogResponse, error)
	// GetLogs returns a student's own history; staff roles see everyone's.
	GetLogs(ctx context.Context, userID, role string) ([]MovementLogResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return NewServiceWithOutbox(db, repo, nil)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository) Service {
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		now:    time.Now,
		logger: zap.L().Named("movement.service"),
	}
}

func (s *service) Checkout(ctx context.Context, userID, reason string) (MovementLogResponse, error) {
	s.logger.Debug("checkout requested", zap.String("user_id", userID))

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return MovementLogResponse{}, movementerrors.ErrInvalidUserID
	}
	if strings.TrimSpace(reason) == "" {
		return MovementLogResponse{}, movementerrors.ErrMissingReason
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("checkout begin tx failed", zap.Error(err))
		return MovementLogResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Friendly pre-check; the partial unique index is what actually closes
	// the race between two concurrent checkouts.
	if _, err := qtx.FindOpenByUser(ctx, userID); err == nil {
		s.logger.Warn("checkout while already out", zap.String("user_id", userID))
		return MovementLogResponse{}, movementerrors.ErrAlreadyOut
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return MovementLogResponse{}, err
	}

	log := &MovementLog{
		ID:      uuid.New(),
		UserID:  userUUID,
		Reason:  strings.TrimSpace(reason),
		Status:  StatusOut,
		OutTime: s.now(),
	}
	if err := qtx.Create(ctx, log); err != nil {
		s.logger.Error("checkout create failed", zap.Error(err))
		return MovementLogResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.stageMovementEvent(ctx, tx, events.MovementCheckedOut, log); err != nil {
			return MovementLogResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return MovementLogResponse{}, err
	}

	s.logger.Info("checked out",
		zap.String("user_id", userID),
		zap.String("log_id", log.ID.String()),
	)
	return mapToResponse(log), nil
}

func (s *service) Checkin(ctx context.Context, userID string) (MovementLogResponse, error) {
	s.logger.Debug("checkin requested", zap.String("user_id", userID))

	if _, err := uuid.Parse(userID); err != nil {
		return MovementLogResponse{}, movementerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("checkin begin tx failed", zap.Error(err))
		return MovementLogResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	log, err := qtx.FindOpenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MovementLogResponse{}, movementerrors.ErrNoActiveCheckout
		}
		return MovementLogResponse{}, err
	}

	in := s.now()
	log.Status = StatusIn
	log.InTime = &in

	if err := qtx.Update(ctx, log); err != nil {
		s.logger.Error("checkin update failed", zap.Error(err))
		return MovementLogResponse{}, err
	}

	if s.outbox != nil {
		if err := s.stageMovementEvent(ctx, tx, events.MovementCheckedIn, log); err != nil {
			return MovementLogResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return MovementLogResponse{}, err
	}

	s.logger.Info("checked in",
		zap.String("user_id", userID),
		zap.String("log_id", log.ID.String()),
	)
	return mapToResponse(log), nil
}

func (s *service) GetLogs(ctx context.Context, userID, role string) ([]MovementLogResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, movementerrors.ErrInvalidUserID
	}

	// Students see only themselves; every staff role reads the full register.
	var (
		rows []MovementLog
		err  error
	)
	if role == rbac.RoleStudent {
		rows, err = s.repo.FindAllByUser(ctx, userID)
	} else {
		rows, err = s.repo.FindAllWithUser(ctx)
	}
	if err != nil {
		return nil, err
	}

	res := make([]MovementLogResponse, len(rows))
	for i := range rows {
		res[i] = mapToResponse(&rows[i])
	}
	return res, nil
}

func (s *service) stageMovementEvent(ctx context.Context, tx *sql.Tx, eventType string, log *MovementLog) error {
	rid := contextutil.GetRequestID(ctx)

	payload, err := json.Marshal(events.MovementEvent{
		EventType:  eventType,
		LogID:      log.ID.String(),
		UserID:     log.UserID.String(),
		Reason:     log.Reason,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("marshal movement event failed", zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "movement_log",
		AggregateID:   log.ID.String(),
		EventType:     eventType,
		Topic:         events.MovementTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("movement outbox persist failed",
			zap.String("log_id", log.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}
