package movement_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hostel/internal/movement"
	movementerrors "go-hostel/internal/movement/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	checkoutFn func(ctx context.Context, userID, reason string) (movement.MovementLogResponse, error)
	checkinFn  func(ctx context.Context, userID string) (movement.MovementLogResponse, error)
	getLogsFn  func(ctx context.Context, userID, role string) ([]movement.MovementLogResponse, error)
}

func (f *fakeService) Checkout(ctx context.Context, userID, reason string) (movement.MovementLogResponse, error) {
	return f.checkoutFn(ctx, userID, reason)
}
func (f *fakeService) Checkin(ctx context.Context, userID string) (movement.MovementLogResponse, error) {
	return f.checkinFn(ctx, userID)
}
func (f *fakeService) GetLogs(ctx context.Context, userID, role string) ([]movement.MovementLogResponse, error) {
	return f.getLogsFn(ctx, userID, role)
}

func TestHandler_CheckoutCreated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()

	svc := &fakeService{
		checkoutFn: func(ctx context.Context, uid, reason string) (movement.MovementLogResponse, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, "market visit", reason)
			return movement.MovementLogResponse{Status: movement.StatusOut}, nil
		},
	}
	h := movement.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", userID)
	c.Request = httptest.NewRequest(http.MethodPost, "/movement/checkout", strings.NewReader(`{"reason":"market visit"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Checkout(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "out")
}

func TestHandler_CheckoutMissingReason(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := movement.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/movement/checkout", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Checkout(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestHandler_CheckinConflictSurfaces409(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		checkinFn: func(ctx context.Context, uid string) (movement.MovementLogResponse, error) {
			return movement.MovementLogResponse{}, movementerrors.ErrNoActiveCheckout
		},
	}
	h := movement.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/movement/checkin", nil)
	h.Checkin(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}

func TestHandler_GetLogsPassesRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()

	svc := &fakeService{
		getLogsFn: func(ctx context.Context, uid, role string) ([]movement.MovementLogResponse, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, "admin", role)
			return []movement.MovementLogResponse{}, nil
		},
	}
	h := movement.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", userID)
	c.Set("role", "admin")
	c.Request = httptest.NewRequest(http.MethodGet, "/movement/logs", nil)
	h.GetLogs(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
