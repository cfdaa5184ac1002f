package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/farmstore/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestBaseHandler_HandleError(t *testing.T) {
	h := &BaseHandler{}

	t.Run("maps not found to 404", func(t *testing.T) {
		c, rec := newTestContext(t)

		h.HandleError(c, shared.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("maps insufficient stock to 422 with the domain message", func(t *testing.T) {
		c, rec := newTestContext(t)

		h.HandleError(c, shared.NewDomainErrorf("INSUFFICIENT_STOCK",
			"Insufficient stock for %s: requested %s, available %s", "Farm milk", "5", "2"))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Contains(t, resp.Error.Message, "Farm milk")
	})

	t.Run("maps category in use to 409", func(t *testing.T) {
		c, rec := newTestContext(t)

		h.HandleError(c, shared.ErrCategoryInUse)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("maps empty draft to 422", func(t *testing.T) {
		c, rec := newTestContext(t)

		h.HandleError(c, shared.ErrEmptyDraft)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("hides unknown errors behind 500", func(t *testing.T) {
		c, rec := newTestContext(t)

		h.HandleError(c, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeResponse(t, rec)
		assert.NotContains(t, resp.Error.Message, "pq:")
	})
}

func TestBaseHandler_Success(t *testing.T) {
	h := &BaseHandler{}

	t.Run("wraps data in the success envelope", func(t *testing.T) {
		c, rec := newTestContext(t)

		h.Success(c, gin.H{"hello": "world"})

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
		assert.Nil(t, resp.Error)
	})

	t.Run("includes pagination meta", func(t *testing.T) {
		c, rec := newTestContext(t)

		h.SuccessWithMeta(c, []string{"a", "b"}, 45, 2, 20)

		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(45), resp.Meta.Total)
		assert.Equal(t, 3, resp.Meta.TotalPages)
	})
}
