package mealattendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hostel/internal/mealattendance"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	markFn       func(ctx context.Context, userID string, req mealattendance.MarkMealRequest) (mealattendance.MealAttendanceResponse, bool, error)
	getMineFn    func(ctx context.Context, userID string) ([]mealattendance.MealAttendanceResponse, error)
	dailyStatsFn func(ctx context.Context, date string) (mealattendance.DailyStatsResponse, error)
}

func (f *fakeService) Mark(ctx context.Context, userID string, req mealattendance.MarkMealRequest) (mealattendance.MealAttendanceResponse, bool, error) {
	return f.markFn(ctx, userID, req)
}
func (f *fakeService) GetMine(ctx context.Context, userID string) ([]mealattendance.MealAttendanceResponse, error) {
	return f.getMineFn(ctx, userID)
}
func (f *fakeService) DailyStats(ctx context.Context, date string) (mealattendance.DailyStatsResponse, error) {
	return f.dailyStatsFn(ctx, date)
}

func TestHandler_MarkCreatedVsUpdated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()

	created := true
	svc := &fakeService{
		markFn: func(ctx context.Context, uid string, req mealattendance.MarkMealRequest) (mealattendance.MealAttendanceResponse, bool, error) {
			assert.Equal(t, userID, uid)
			return mealattendance.MealAttendanceResponse{ID: uuid.New().String()}, created, nil
		},
	}
	h := mealattendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", userID)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(`{"date":"2099-01-01","breakfast":"yes"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Mark(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	created = false
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("user_id", userID)
	c2.Request = httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(`{"date":"2099-01-01","lunch":true}`))
	c2.Request.Header.Set("Content-Type", "application/json")
	h.Mark(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestHandler_MarkMissingDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := mealattendance.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Mark(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestHandler_DailyStatsPassesDate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		dailyStatsFn: func(ctx context.Context, date string) (mealattendance.DailyStatsResponse, error) {
			assert.Equal(t, "2025-03-14", date)
			return mealattendance.DailyStatsResponse{Date: date}, nil
		},
	}
	h := mealattendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/attendance/stats?date=2025-03-14", nil)
	h.DailyStats(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2025-03-14")
}
