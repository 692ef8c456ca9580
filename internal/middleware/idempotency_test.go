package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	cached := `{"ok":true,"data":{"id":"abc"}}`
	mock.ExpectGet("idemp:/movement/checkout::key-1").SetVal(cached)

	handlerCalled := false
	r := gin.New()
	r.POST("/movement/checkout", Idempotency(rdb), func(c *gin.Context) {
		handlerCalled = true
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/movement/checkout", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	r.ServeHTTP(w, req)

	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, cached, w.Body.String())
	assert.Equal(t, "true", w.Header().Get("X-Idempotent-Replay"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_RejectsInFlightDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	mock.ExpectGet("idemp:/movement/checkout::key-2").RedisNil()
	mock.ExpectSetNX("idemp:/movement/checkout::key-2:lock", "locked", idempotencyLockTTL).SetVal(false)

	r := gin.New()
	r.POST("/movement/checkout", Idempotency(rdb), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/movement/checkout", nil)
	req.Header.Set("Idempotency-Key", "key-2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_PassthroughWithoutKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, _ := redismock.NewClientMock()

	r := gin.New()
	r.POST("/movement/checkout", Idempotency(rdb), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/movement/checkout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
