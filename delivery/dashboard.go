package delivery

import (
	"context"
	"net/http"
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	uc domain.DashboardUseCase
}

func NewDashboardHandler(r gin.IRouter, uc domain.DashboardUseCase) {
	h := &DashboardHandler{uc: uc}
	r.GET("/dashboard", h.GetSummary)
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.uc.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, "GetSummary", "Failed to get dashboard", err)
		return
	}
	respondData(c, http.StatusOK, "GetSummary", summary)
}

// NewHealthHandler registers /healthz and /metrics. rdb may be nil.
func NewHealthHandler(r gin.IRouter, db *gorm.DB, rdb *redis.Client) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		checks := gin.H{"database": "ok"}
		healthy := true

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			checks["database"] = "down"
			healthy = false
		}

		if rdb != nil {
			checks["redis"] = "ok"
			if err := rdb.Ping(ctx).Err(); err != nil {
				checks["redis"] = "down"
				healthy = false
			}
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"success": healthy, "data": checks})
	})
}
