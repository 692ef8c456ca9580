package health

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go-hostel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewHandler(db *sql.DB, rdb *redis.Client) *Handler {
	return &Handler{db: db, rdb: rdb}
}

// Check reports per-dependency status. Kafka is deliberately absent: the
// API keeps serving when the broker is down, the outbox just drains later.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := gin.H{"database": "ok", "redis": "ok"}

	if err := h.db.PingContext(ctx); err != nil {
		deps["database"] = "down"
		status = http.StatusServiceUnavailable
	}
	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			deps["redis"] = "down"
			status = http.StatusServiceUnavailable
		}
	}

	response.Success(c, status, deps, nil)
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/api/health", h.Check)
}
