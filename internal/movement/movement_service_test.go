package movement

import (
	"context"
	"database/sql"
	"testing"

	"go-hostel/internal/messaging/kafka"
	movementerrors "go-hostel/internal/movement/errors"
	"go-hostel/internal/rbac"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn          func(ctx context.Context, log *MovementLog) error
	findOpenByUserFn  func(ctx context.Context, userID string) (*MovementLog, error)
	findAllByUserFn   func(ctx context.Context, userID string) ([]MovementLog, error)
	findAllWithUserFn func(ctx context.Context) ([]MovementLog, error)
	updateFn          func(ctx context.Context, log *MovementLog) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, log *MovementLog) error {
	return f.createFn(ctx, log)
}
func (f *fakeRepo) FindOpenByUser(ctx context.Context, userID string) (*MovementLog, error) {
	return f.findOpenByUserFn(ctx, userID)
}
func (f *fakeRepo) FindAllByUser(ctx context.Context, userID string) ([]MovementLog, error) {
	return f.findAllByUserFn(ctx, userID)
}
func (f *fakeRepo) FindAllWithUser(ctx context.Context) ([]MovementLog, error) {
	return f.findAllWithUserFn(ctx)
}
func (f *fakeRepo) Update(ctx context.Context, log *MovementLog) error {
	return f.updateFn(ctx, log)
}

type fakeOutbox struct {
	staged []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.staged = append(f.staged, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error { return nil }

func TestService_CheckoutThenCheckin(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	userID := uuid.New()
	var open *MovementLog
	repo := &fakeRepo{
		createFn: func(ctx context.Context, log *MovementLog) error { open = log; return nil },
		findOpenByUserFn: func(ctx context.Context, uid string) (*MovementLog, error) {
			if open == nil || open.Status != StatusOut {
				return nil, gorm.ErrRecordNotFound
			}
			return open, nil
		},
		updateFn: func(ctx context.Context, log *MovementLog) error { open = log; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	out, err := svc.Checkout(context.Background(), userID.String(), "market visit")
	assert.NoError(t, err)
	assert.Equal(t, StatusOut, out.Status)
	assert.Nil(t, out.InTime)

	mock.ExpectBegin()
	mock.ExpectCommit()
	in, err := svc.Checkin(context.Background(), userID.String())
	assert.NoError(t, err)
	assert.Equal(t, StatusIn, in.Status)
	assert.NotNil(t, in.InTime)
	assert.Equal(t, out.ID, in.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckoutRequiresReason(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})
	_, err := svc.Checkout(context.Background(), uuid.New().String(), "   ")
	assert.ErrorIs(t, err, movementerrors.ErrMissingReason)
}

func TestService_CheckoutWhileOutConflicts(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	userID := uuid.New()
	repo := &fakeRepo{
		findOpenByUserFn: func(ctx context.Context, uid string) (*MovementLog, error) {
			return &MovementLog{ID: uuid.New(), UserID: userID, Status: StatusOut}, nil
		},
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Checkout(context.Background(), userID.String(), "second trip")
	assert.ErrorIs(t, err, movementerrors.ErrAlreadyOut)
}

func TestService_CheckinWithoutOpenRecord(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findOpenByUserFn: func(ctx context.Context, uid string) (*MovementLog, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Checkin(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, movementerrors.ErrNoActiveCheckout)
}

func TestService_CheckoutAfterCheckinReusesNothing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	userID := uuid.New()
	var created *MovementLog
	repo := &fakeRepo{
		findOpenByUserFn: func(ctx context.Context, uid string) (*MovementLog, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createFn: func(ctx context.Context, log *MovementLog) error { created = log; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Checkout(context.Background(), userID.String(), "evening walk")
	assert.NoError(t, err)
	// a fresh cycle gets a fresh record
	assert.Equal(t, created.ID.String(), resp.ID)
	assert.Nil(t, created.InTime)
}

func TestService_GetLogsScopedByRole(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	userID := uuid.New()
	img := "/uploads/profile-a.png"
	ownCalls, allCalls := 0, 0
	repo := &fakeRepo{
		findAllByUserFn: func(ctx context.Context, uid string) ([]MovementLog, error) {
			ownCalls++
			assert.Equal(t, userID.String(), uid)
			return []MovementLog{{ID: uuid.New(), UserID: userID, Status: StatusIn}}, nil
		},
		findAllWithUserFn: func(ctx context.Context) ([]MovementLog, error) {
			allCalls++
			return []MovementLog{
				{ID: uuid.New(), UserID: userID, Status: StatusOut, User: &UserRef{ID: userID, Name: "A", Role: rbac.RoleStudent, ProfileImage: &img}},
				{ID: uuid.New(), UserID: uuid.New(), Status: StatusIn},
			}, nil
		},
	}
	svc := NewService(db, repo)

	own, err := svc.GetLogs(context.Background(), userID.String(), rbac.RoleStudent)
	assert.NoError(t, err)
	assert.Equal(t, 1, ownCalls)
	assert.Len(t, own, 1)

	// every staff role reads the full register, not just admin
	for _, role := range []string{rbac.RoleAdmin, rbac.RoleWard, rbac.RoleCook} {
		all, err := svc.GetLogs(context.Background(), userID.String(), role)
		assert.NoError(t, err)
		assert.Len(t, all, 2)
		assert.Equal(t, "A", all[0].User.Name)
		assert.Equal(t, rbac.RoleStudent, all[0].User.Role)
		assert.Equal(t, img, *all[0].User.ProfileImage)
	}
	assert.Equal(t, 3, allCalls)
	assert.Equal(t, 1, ownCalls)
}

func TestService_CheckoutStagesOutboxEvent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findOpenByUserFn: func(ctx context.Context, uid string) (*MovementLog, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createFn: func(ctx context.Context, log *MovementLog) error { return nil },
	}
	outbox := &fakeOutbox{}
	svc := NewServiceWithOutbox(db, repo, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Checkout(context.Background(), uuid.New().String(), "library")
	assert.NoError(t, err)
	assert.Len(t, outbox.staged, 1)
	assert.Equal(t, "movement_log", outbox.staged[0].AggregateType)
}
