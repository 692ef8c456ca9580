package menu

import (
	"context"
	"database/sql"
	"testing"
	"time"

	menuerrors "go-hostel/internal/menu/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn    func(ctx context.Context, m *Menu) error
	findByDayFn func(ctx context.Context, dayStart, dayEnd time.Time) (*Menu, error)
	findAllFn   func(ctx context.Context) ([]Menu, error)
	updateFn    func(ctx context.Context, m *Menu) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository              { return f }
func (f *fakeRepo) Create(ctx context.Context, m *Menu) error { return f.createFn(ctx, m) }
func (f *fakeRepo) FindByDay(ctx context.Context, dayStart, dayEnd time.Time) (*Menu, error) {
	return f.findByDayFn(ctx, dayStart, dayEnd)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Menu, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) Update(ctx context.Context, m *Menu) error   { return f.updateFn(ctx, m) }

func TestService_UpsertCreatesThenAmends(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved *Menu
	repo := &fakeRepo{
		createFn: func(ctx context.Context, m *Menu) error { saved = m; return nil },
		updateFn: func(ctx context.Context, m *Menu) error { saved = m; return nil },
		findByDayFn: func(ctx context.Context, dayStart, dayEnd time.Time) (*Menu, error) {
			if saved == nil {
				return nil, gorm.ErrRecordNotFound
			}
			existing := *saved
			return &existing, nil
		},
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, created, err := svc.Upsert(context.Background(), UpsertMenuRequest{
		Date:      "2025-03-14",
		Breakfast: "idli",
		Lunch:     "rice and sambar",
	})
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "idli", resp.Breakfast)
	assert.Empty(t, resp.Dinner)

	// amending dinner leaves the other meals alone
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, created, err = svc.Upsert(context.Background(), UpsertMenuRequest{
		Date:   "2025-03-14",
		Dinner: "chapati",
	})
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "idli", resp.Breakfast)
	assert.Equal(t, "rice and sambar", resp.Lunch)
	assert.Equal(t, "chapati", resp.Dinner)
}

func TestService_UpsertRejectsEmptyPlan(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})
	_, _, err := svc.Upsert(context.Background(), UpsertMenuRequest{Date: "2025-03-14"})
	assert.ErrorIs(t, err, menuerrors.ErrEmptyMenu)
}

func TestService_GetByDateUnpublishedDayIsEmpty(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findByDayFn: func(ctx context.Context, dayStart, dayEnd time.Time) (*Menu, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(db, repo)

	resp, err := svc.GetByDate(context.Background(), "2025-03-14")
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-14", resp.Date)
	assert.Empty(t, resp.Breakfast)
}

func TestService_GetAllKeepsDateOrder(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]Menu, error) {
			return []Menu{
				{ID: uuid.New(), Date: time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local), Breakfast: "idli"},
				{ID: uuid.New(), Date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local), Breakfast: "dosa"},
			}, nil
		},
	}
	svc := NewService(db, repo)

	rows, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "2025-03-14", rows[0].Date)
}
