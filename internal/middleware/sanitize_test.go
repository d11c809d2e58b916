package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSanitizeRouter(captured *map[string]any, query *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SanitizeRequest())
	router.POST("/echo", func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		*captured = body
		*query = c.Query("name")
		c.Status(http.StatusOK)
	})
	return router
}

func TestSanitizeRequestEscapesBodyStrings(t *testing.T) {
	var body map[string]any
	var query string
	router := newSanitizeRouter(&body, &query)

	payload := map[string]any{
		"description": `<script>alert("x")</script>`,
		"nested":      map[string]any{"note": "a & b"},
		"items":       []any{"<b>", 42},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "&lt;script&gt;alert(&quot;x&quot;)&lt;&#x2F;script&gt;", body["description"])
	nested := body["nested"].(map[string]any)
	assert.Equal(t, "a &amp; b", nested["note"])
	items := body["items"].([]any)
	assert.Equal(t, "&lt;b&gt;", items[0])
	assert.Equal(t, float64(42), items[1])
}

func TestSanitizeRequestEscapesQueryParams(t *testing.T) {
	var body map[string]any
	var query string
	router := newSanitizeRouter(&body, &query)

	req := httptest.NewRequest(http.MethodPost, "/echo?name=%3Cimg%3E", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "&lt;img&gt;", query)
}

func TestSanitizeRequestLeavesMalformedJSONForBinding(t *testing.T) {
	var body map[string]any
	var query string
	router := newSanitizeRouter(&body, &query)

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader([]byte(`{not json`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, body)
}
