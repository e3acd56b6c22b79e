//go:build unit || integration

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// PerformRequest executes an HTTP request against the router. A non-zero
// userID is sent in the identity header.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, userID int64) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if userID != 0 {
		req.Header.Set("X-Sharer-User-Id", strconv.FormatInt(userID, 10))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
