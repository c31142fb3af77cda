package handler

import (
	"Instalytics/internal/pkg/redis"
	"Instalytics/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// Health 报告依赖存活状态，任一依赖不可用时整体视为不健康
func (s *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	status := map[string]string{
		"database": "up",
		"redis":    "up",
	}
	healthy := true

	sqlDB, err := s.db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		status["database"] = "down"
		healthy = false
	}
	if err = redis.GetRdbClient().Ping(ctx).Err(); err != nil {
		status["redis"] = "down"
		healthy = false
	}

	if !healthy {
		response.Fail(c, response.InternalServerError, "service unhealthy")
		return
	}
	response.Success(c, status)
}
