package httpgin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONWithETag(t *testing.T) {
	gin.SetMode(gin.TestMode)

	payload := map[string]string{"hello": "world"}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	writeJSONWithETag(c, http.StatusOK, payload)

	require.Equal(t, http.StatusOK, w.Code)
	tag := w.Header().Get("ETag")
	require.NotEmpty(t, tag)
	assert.JSONEq(t, `{"hello":"world"}`, w.Body.String())

	// Same payload, matching If-None-Match: expect 304 and no body.
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.Header.Set("If-None-Match", tag)

	writeJSONWithETag(c2, http.StatusOK, payload)

	assert.Equal(t, http.StatusNotModified, w2.Code)
	assert.Empty(t, w2.Body.String())
	assert.Equal(t, tag, w2.Header().Get("ETag"))
}

func TestWriteJSONWithETag_ChangedPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	writeJSONWithETag(c, http.StatusOK, map[string]int{"v": 1})
	tag := w.Header().Get("ETag")

	// Different payload must produce a different tag and a full 200.
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.Header.Set("If-None-Match", tag)

	writeJSONWithETag(c2, http.StatusOK, map[string]int{"v": 2})

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.NotEqual(t, tag, w2.Header().Get("ETag"))
}
