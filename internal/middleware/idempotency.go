package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	// Short lock expiry so a crashed request does not wedge the key.
	idempotencyLockTTL = 30 * time.Second
	// Replays of a finished bulk request stay answerable for a day.
	idempotencyCacheTTL = 24 * time.Hour
)

type idempotencyWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *idempotencyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency guards POST endpoints (bulk uploads, payroll generation)
// against double submission. The first request holds a short Redis lock and
// caches its response body on success; a replay with the same
// Idempotency-Key gets the cached body back without re-running the handler.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		cached, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			c.Header("Idempotency-Replay", "true")
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			c.Abort()
			return
		}

		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "A request with this idempotency key is still being processed",
			})
			return
		}

		writer := &idempotencyWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			rdb.Set(c.Request.Context(), cacheKey, writer.body.Bytes(), idempotencyCacheTTL)
		}
		rdb.Del(c.Request.Context(), lockKey)
	}
}
