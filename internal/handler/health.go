package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports connectivity to Postgres and Redis. Degraded dependencies
// answer 503 so the load balancer can pull the instance; the payload never
// exposes addresses or credentials.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		postgres := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			postgres = "error"
		}

		redisEstado := "ok"
		if rdb.Ping(ctx).Err() != nil {
			redisEstado = "error"
		}

		estado := "ok"
		status := http.StatusOK
		if postgres != "ok" || redisEstado != "ok" {
			estado = "degradado"
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"status":   estado,
			"postgres": postgres,
			"redis":    redisEstado,
		})
	}
}
