package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
)

// callerID pulls the id set by the identity middleware; a miss means the
// route was registered without RequireUser, which is a wiring bug.
func callerID(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errors.New("user id missing from context"), "Internal server error", nil)
		return 0, false
	}
	return id, true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Invalid "+name+" format", nil)
		return 0, false
	}
	return id, true
}

// paging reads the from/size window parameters, defaulting to the first ten
// entries.
func paging(c *gin.Context) (from, size int, ok bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil || from < 0 {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errors.New("invalid paging"), "Parameter from must be a non-negative integer", nil)
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errors.New("invalid paging"), "Parameter size must be a positive integer", nil)
		return 0, 0, false
	}
	return from, size, true
}
