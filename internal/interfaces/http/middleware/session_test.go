package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequireSessionID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func() *gin.Engine {
		engine := gin.New()
		engine.GET("/draft", RequireSessionID(), func(c *gin.Context) {
			c.String(http.StatusOK, GetSessionID(c))
		})
		return engine
	}

	t.Run("passes the session ID through", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/draft", nil)
		req.Header.Set(SessionIDHeader, "till-7")

		newEngine().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "till-7", rec.Body.String())
	})

	t.Run("rejects requests without the header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/draft", nil)

		newEngine().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects oversized session IDs", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/draft", nil)
		req.Header.Set(SessionIDHeader, strings.Repeat("x", 200))

		newEngine().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
