//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
)

// PerformRequest sends a bodiless request; the delivery API takes its input from the
// path and query string.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, query url.Values) *httptest.ResponseRecorder {
	t.Helper()

	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	req := httptest.NewRequest(method, path, http.NoBody)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// PerformRequestFrom is PerformRequest with a fixed client address, for per-client limits.
func PerformRequestFrom(t *testing.T, router *gin.Engine, method, path string, query url.Values, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()

	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	req := httptest.NewRequest(method, path, http.NoBody)
	req.RemoteAddr = remoteAddr

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
