package attendancetype

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	typederrors "go-hostel/internal/attendancetype/errors"
	"go-hostel/internal/events"
	"go-hostel/internal/messaging/kafka"
	"go-hostel/internal/shared/contextutil"
	"go-hostel/internal/shared/datekey"
	"go-hostel/internal/shared/timewindow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultGeneralGate is the submission cutoff for self-reported general
// attendance: a student must mark presence before 11:00 AM.
func DefaultGeneralGate() timewindow.Gate {
	return timewindow.NewGate(timewindow.Before(11, 0, "before 11:00 AM"))
}

//go:generate mockgen -source=attendance_type_service.go -destination=mock/attendance_type_service_mock.go -package=mock
type Service interface {
	// MarkGeneral upserts the caller's general record for the day. The
	// boolean result reports whether a new record was created.
	MarkGeneral(ctx context.Context, userID, date string) (TypedAttendanceResponse, bool, error)
	// PostWard records photo-evidenced attendance for the posting ward.
	// Re-posting an existing record replaces the photo and returns the
	// record to pending.
	PostWard(ctx context.Context, wardID, date, attType, photo string) (TypedAttendanceResponse, bool, error)
	GetMine(ctx context.Context, userID string) ([]TypedAttendanceResponse, error)
	GetAll(ctx context.Context, date string) ([]TypedAttendanceResponse, error)
	Verify(ctx context.Context, recordID, adminID string) (TypedAttendanceResponse, error)
	Dismiss(ctx context.Context, recordID, adminID string) (TypedAttendanceResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	outbox      kafka.OutboxRepository
	generalGate timewindow.Gate
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return NewServiceWithOutbox(db, repo, nil)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository) Service {
	return &service{
		db:          db,
		repo:        repo,
		outbox:      outboxRepo,
		generalGate: DefaultGeneralGate(),
		now:         time.Now,
		logger:      zap.L().Named("attendancetype.service"),
	}
}

func (s *service) MarkGeneral(ctx context.Context, userID, date string) (TypedAttendanceResponse, bool, error) {
	s.logger.Debug("mark general requested",
		zap.String("user_id", userID),
		zap.String("date", date),
	)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return TypedAttendanceResponse{}, false, typederrors.ErrInvalidUserID
	}

	day, err := datekey.Parse(date)
	if err != nil {
		return TypedAttendanceResponse{}, false, err
	}

	if open, reason := s.generalGate.Open(s.now()); !open {
		s.logger.Warn("mark general outside window", zap.String("user_id", userID))
		return TypedAttendanceResponse{}, false, typederrors.WindowClosed(reason)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark general begin tx failed", zap.Error(err))
		return TypedAttendanceResponse{}, false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	dayStart, dayEnd := datekey.Range(day)

	existing, err := qtx.FindByUserDayType(ctx, userID, dayStart, dayEnd, TypeGeneral)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return TypedAttendanceResponse{}, false, err
	}

	if err == nil {
		// Re-marking the same day is a no-op; the record already exists.
		if err := tx.Commit(); err != nil {
			return TypedAttendanceResponse{}, false, err
		}
		return mapToResponse(existing), false, nil
	}

	rec := &TypedAttendance{
		ID:           uuid.New(),
		UserID:       userUUID,
		Date:         day,
		Type:         TypeGeneral,
		Status:       StatusPending,
		PostedByRole: PostedByStudent,
	}
	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("mark general create failed", zap.Error(err))
		return TypedAttendanceResponse{}, false, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return TypedAttendanceResponse{}, false, err
	}

	s.logger.Info("general attendance created",
		zap.String("user_id", userID),
		zap.Time("day", day),
	)
	return mapToResponse(rec), true, nil
}

func (s *service) PostWard(ctx context.Context, wardID, date, attType, photo string) (TypedAttendanceResponse, bool, error) {
	s.logger.Debug("post ward attendance requested",
		zap.String("ward_id", wardID),
		zap.String("date", date),
		zap.String("type", attType),
	)

	wardUUID, err := uuid.Parse(wardID)
	if err != nil {
		return TypedAttendanceResponse{}, false, typederrors.ErrInvalidUserID
	}
	if !IsWardType(attType) {
		return TypedAttendanceResponse{}, false, typederrors.ErrInvalidType
	}
	if photo == "" {
		return TypedAttendanceResponse{}, false, typederrors.ErrMissingPhoto
	}

	day, err := datekey.Parse(date)
	if err != nil {
		return TypedAttendanceResponse{}, false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("post ward begin tx failed", zap.Error(err))
		return TypedAttendanceResponse{}, false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	dayStart, dayEnd := datekey.Range(day)

	existing, err := qtx.FindByUserDayType(ctx, wardID, dayStart, dayEnd, attType)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return TypedAttendanceResponse{}, false, err
	}

	if err == nil {
		// Replacing the evidence restarts the review cycle.
		existing.Photo = &photo
		existing.Status = StatusPending
		existing.VerifiedBy = nil
		existing.PostedByRole = PostedByWard

		if err := qtx.Update(ctx, existing); err != nil {
			s.logger.Error("post ward update failed", zap.Error(err))
			return TypedAttendanceResponse{}, false, err
		}
		if err := tx.Commit(); err != nil {
			return TypedAttendanceResponse{}, false, err
		}
		s.logger.Info("ward attendance re-posted",
			zap.String("ward_id", wardID),
			zap.String("type", attType),
		)
		return mapToResponse(existing), false, nil
	}

	rec := &TypedAttendance{
		ID:           uuid.New(),
		UserID:       wardUUID,
		Date:         day,
		Type:         attType,
		Photo:        &photo,
		Status:       StatusPending,
		PostedByRole: PostedByWard,
	}
	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("post ward create failed", zap.Error(err))
		return TypedAttendanceResponse{}, false, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return TypedAttendanceResponse{}, false, err
	}

	s.logger.Info("ward attendance created",
		zap.String("ward_id", wardID),
		zap.String("type", attType),
		zap.Time("day", day),
	)
	return mapToResponse(rec), true, nil
}

func (s *service) GetMine(ctx context.Context, userID string) ([]TypedAttendanceResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, typederrors.ErrInvalidUserID
	}

	rows, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]TypedAttendanceResponse, len(rows))
	for i := range rows {
		res[i] = mapToResponse(&rows[i])
	}
	return res, nil
}

func (s *service) GetAll(ctx context.Context, date string) ([]TypedAttendanceResponse, error) {
	var dayStart, dayEnd *time.Time
	if date != "" {
		day, err := datekey.Parse(date)
		if err != nil {
			return nil, err
		}
		start, end := datekey.Range(day)
		dayStart, dayEnd = &start, &end
	}

	rows, err := s.repo.FindAllWithUser(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	res := make([]TypedAttendanceResponse, len(rows))
	for i := range rows {
		res[i] = mapToResponse(&rows[i])
	}
	return res, nil
}

func (s *service) Verify(ctx context.Context, recordID, adminID string) (TypedAttendanceResponse, error) {
	return s.review(ctx, recordID, adminID, StatusVerified)
}

func (s *service) Dismiss(ctx context.Context, recordID, adminID string) (TypedAttendanceResponse, error) {
	return s.review(ctx, recordID, adminID, StatusDismissed)
}

// review applies an admin decision. Verify stamps the reviewer; dismiss
// clears any previous stamp. Repeating the same decision is an idempotent
// no-op.
func (s *service) review(ctx context.Context, recordID, adminID, target string) (TypedAttendanceResponse, error) {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return TypedAttendanceResponse{}, typederrors.ErrInvalidUserID
	}
	if _, err := uuid.Parse(recordID); err != nil {
		return TypedAttendanceResponse{}, typederrors.ErrInvalidRecordID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review begin tx failed", zap.Error(err))
		return TypedAttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TypedAttendanceResponse{}, typederrors.ErrRecordNotFound
		}
		return TypedAttendanceResponse{}, err
	}

	if rec.Status == target {
		if err := tx.Commit(); err != nil {
			return TypedAttendanceResponse{}, err
		}
		return mapToResponse(rec), nil
	}

	if !isAllowedAdminTransition(rec.Status, target) {
		s.logger.Warn("review transition rejected",
			zap.String("record_id", recordID),
			zap.String("from", rec.Status),
			zap.String("to", target),
		)
		return TypedAttendanceResponse{}, typederrors.ErrInvalidTransition
	}

	rec.Status = target
	if target == StatusVerified {
		rec.VerifiedBy = &adminUUID
	} else {
		rec.VerifiedBy = nil
	}

	if err := qtx.Update(ctx, rec); err != nil {
		s.logger.Error("review update failed", zap.Error(err))
		return TypedAttendanceResponse{}, err
	}

	if s.outbox != nil {
		if err := s.stageReviewEvent(ctx, tx, rec); err != nil {
			return TypedAttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return TypedAttendanceResponse{}, err
	}

	s.logger.Info("attendance reviewed",
		zap.String("record_id", recordID),
		zap.String("status", target),
		zap.String("admin_id", adminID),
	)
	return mapToResponse(rec), nil
}

func (s *service) stageReviewEvent(ctx context.Context, tx *sql.Tx, rec *TypedAttendance) error {
	rid := contextutil.GetRequestID(ctx)

	eventType := events.AttendanceVerified
	verifiedBy := ""
	if rec.Status == StatusDismissed {
		eventType = events.AttendanceDismissed
	} else if rec.VerifiedBy != nil {
		verifiedBy = rec.VerifiedBy.String()
	}

	payload, err := json.Marshal(events.VerificationEvent{
		EventType:      eventType,
		RecordID:       rec.ID.String(),
		UserID:         rec.UserID.String(),
		AttendanceType: rec.Type,
		Status:         rec.Status,
		VerifiedBy:     verifiedBy,
		OccurredAt:     time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("marshal review event failed", zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "typed_attendance",
		AggregateID:   rec.ID.String(),
		EventType:     eventType,
		Topic:         events.VerificationTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("review outbox persist failed",
			zap.String("record_id", rec.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}
