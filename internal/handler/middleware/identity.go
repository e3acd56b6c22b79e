package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/handler/httperr"
)

// UserHeader carries the calling user's id. The gateway in front of this
// service authenticates the user and injects the header, so its value is
// trusted as-is.
const UserHeader = "X-Sharer-User-Id"

const userIDKey = "user_id"

// RequireUser extracts the caller's id from the identity header. Requests
// without a valid header never reach the handler.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest,
				errors.New("missing identity header"),
				UserHeader+" header is required", nil)
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				UserHeader+" header must be an integer", nil)
			return
		}

		c.Set(userIDKey, id)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
