package httperr

import (
	"net/http"

	cr "github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"shareit/internal/pkg/errs"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// StatusOf translates a usecase error into an HTTP status via its kind mark.
// Unmarked errors are internal failures.
func StatusOf(err error) int {
	switch {
	case cr.Is(err, errs.KindNotFound):
		return http.StatusNotFound
	case cr.Is(err, errs.KindValidation):
		return http.StatusBadRequest
	case cr.Is(err, errs.KindConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Abort maps err by kind and writes the response. Internal errors never leak
// their message to the client.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, nil)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
