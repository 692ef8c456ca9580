package attendancetype_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go-hostel/internal/attendancetype"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	markGeneralFn func(ctx context.Context, userID, date string) (attendancetype.TypedAttendanceResponse, bool, error)
	postWardFn    func(ctx context.Context, wardID, date, attType, photo string) (attendancetype.TypedAttendanceResponse, bool, error)
	getMineFn     func(ctx context.Context, userID string) ([]attendancetype.TypedAttendanceResponse, error)
	getAllFn      func(ctx context.Context, date string) ([]attendancetype.TypedAttendanceResponse, error)
	verifyFn      func(ctx context.Context, recordID, adminID string) (attendancetype.TypedAttendanceResponse, error)
	dismissFn     func(ctx context.Context, recordID, adminID string) (attendancetype.TypedAttendanceResponse, error)
}

func (f *fakeService) MarkGeneral(ctx context.Context, userID, date string) (attendancetype.TypedAttendanceResponse, bool, error) {
	return f.markGeneralFn(ctx, userID, date)
}
func (f *fakeService) PostWard(ctx context.Context, wardID, date, attType, photo string) (attendancetype.TypedAttendanceResponse, bool, error) {
	return f.postWardFn(ctx, wardID, date, attType, photo)
}
func (f *fakeService) GetMine(ctx context.Context, userID string) ([]attendancetype.TypedAttendanceResponse, error) {
	return f.getMineFn(ctx, userID)
}
func (f *fakeService) GetAll(ctx context.Context, date string) ([]attendancetype.TypedAttendanceResponse, error) {
	return f.getAllFn(ctx, date)
}
func (f *fakeService) Verify(ctx context.Context, recordID, adminID string) (attendancetype.TypedAttendanceResponse, error) {
	return f.verifyFn(ctx, recordID, adminID)
}
func (f *fakeService) Dismiss(ctx context.Context, recordID, adminID string) (attendancetype.TypedAttendanceResponse, error) {
	return f.dismissFn(ctx, recordID, adminID)
}

type fakePhotoStore struct {
	path  string
	saves int
}

func (f *fakePhotoStore) Save(c *gin.Context, field, prefix string) (string, error) {
	f.saves++
	return f.path, nil
}

func TestHandler_MarkGeneralCreated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()

	svc := &fakeService{
		markGeneralFn: func(ctx context.Context, uid, date string) (attendancetype.TypedAttendanceResponse, bool, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, "2025-03-14", date)
			return attendancetype.TypedAttendanceResponse{Status: attendancetype.StatusPending}, true, nil
		},
	}
	h := attendancetype.NewHandler(svc, &fakePhotoStore{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", userID)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance-types/general", strings.NewReader(`{"date":"2025-03-14"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.MarkGeneral(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "pending")
}

func TestHandler_MarkGeneralMissingDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := attendancetype.NewHandler(&fakeService{}, &fakePhotoStore{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance-types/general", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.MarkGeneral(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestHandler_PostWardPassesStoredPhoto(t *testing.T) {
	gin.SetMode(gin.TestMode)
	wardID := uuid.New().String()

	svc := &fakeService{
		postWardFn: func(ctx context.Context, wid, date, attType, photo string) (attendancetype.TypedAttendanceResponse, bool, error) {
			assert.Equal(t, wardID, wid)
			assert.Equal(t, attendancetype.TypeNightStudy, attType)
			assert.Equal(t, "/uploads/attendance-1.jpg", photo)
			return attendancetype.TypedAttendanceResponse{Status: attendancetype.StatusPending}, true, nil
		},
	}
	h := attendancetype.NewHandler(svc, &fakePhotoStore{path: "/uploads/attendance-1.jpg"})

	form := url.Values{"date": {"2025-03-14"}, "type": {attendancetype.TypeNightStudy}}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", wardID)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance-types/ward", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.PostWard(c)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_PostWardInvalidTypeSkipsPhotoStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &fakePhotoStore{path: "/uploads/attendance-1.jpg"}
	h := attendancetype.NewHandler(&fakeService{}, store)

	form := url.Values{"date": {"2025-03-14"}, "type": {attendancetype.TypeGeneral}}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance-types/ward", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.PostWard(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, store.saves)
}

func TestHandler_VerifyUsesRouteParamAndCaller(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recordID := uuid.New().String()
	adminID := uuid.New().String()

	svc := &fakeService{
		verifyFn: func(ctx context.Context, rid, aid string) (attendancetype.TypedAttendanceResponse, error) {
			assert.Equal(t, recordID, rid)
			assert.Equal(t, adminID, aid)
			return attendancetype.TypedAttendanceResponse{Status: attendancetype.StatusVerified}, nil
		},
	}
	h := attendancetype.NewHandler(svc, &fakePhotoStore{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", adminID)
	c.Params = gin.Params{{Key: "id", Value: recordID}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/attendance-types/"+recordID+"/verify", nil)
	h.Verify(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "verified")
}
