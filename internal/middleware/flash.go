package middleware

import (
	"net/http"

	"go-gin-booking/internal/cache"
	"go-gin-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	SessionCookie = "session_id"

	sessionKey    = "session_id"
	flashStoreKey = "flash_store"
)

// Flash gives each browser a session id cookie and makes the flash store
// available to AddFlash and Flashes.
func Flash(store cache.FlashStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sid, 0, "/", "", false, true)
		}

		c.Set(sessionKey, sid)
		c.Set(flashStoreKey, store)
		c.Next()
	}
}

func flashStore(c *gin.Context) (cache.FlashStore, string, bool) {
	v, ok := c.Get(flashStoreKey)
	if !ok {
		return nil, "", false
	}
	return v.(cache.FlashStore), c.GetString(sessionKey), true
}

// AddFlash queues a message for the next page this session renders. Store
// failures are logged and otherwise ignored.
func AddFlash(c *gin.Context, category, message string) {
	store, sid, ok := flashStore(c)
	if !ok {
		return
	}

	err := store.Push(c.Request.Context(), sid, cache.Flash{Category: category, Message: message})
	if err != nil {
		logger.WithComponent("flash").Warn("failed to push flash",
			zap.String("session_id", sid), zap.Error(err))
	}
}

// Flashes returns and clears the session's queued messages.
func Flashes(c *gin.Context) []cache.Flash {
	store, sid, ok := flashStore(c)
	if !ok {
		return nil
	}

	flashes, err := store.Pop(c.Request.Context(), sid)
	if err != nil {
		logger.WithComponent("flash").Warn("failed to pop flashes",
			zap.String("session_id", sid), zap.Error(err))
		return nil
	}
	return flashes
}
