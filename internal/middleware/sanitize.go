package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	"`", "&#x60;",
)

// SanitizeRequest HTML-escapes every string value in the JSON request body
// and in the query parameters before the handlers see them, so stored and
// echoed values cannot carry markup.
func SanitizeRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		sanitizeQuery(c.Request)

		if c.Request.Body != nil && c.Request.ContentLength != 0 &&
			strings.HasPrefix(c.ContentType(), "application/json") {
			if err := sanitizeBody(c.Request); err != nil {
				// Malformed JSON is left untouched; binding reports it later.
				c.Next()
				return
			}
		}

		c.Next()
	}
}

func sanitizeQuery(r *http.Request) {
	q := r.URL.Query()
	changed := false
	for key, values := range q {
		for i, v := range values {
			escaped := htmlEscaper.Replace(v)
			if escaped != v {
				values[i] = escaped
				changed = true
			}
		}
		q[key] = values
	}
	if changed {
		r.URL.RawQuery = q.Encode()
	}
}

func sanitizeBody(r *http.Request) error {
	raw, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	if err != nil {
		return err
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		r.Body = io.NopCloser(bytes.NewReader(raw))
		return err
	}

	sanitized, err := json.Marshal(sanitizeValue(payload))
	if err != nil {
		r.Body = io.NopCloser(bytes.NewReader(raw))
		return err
	}

	r.Body = io.NopCloser(bytes.NewReader(sanitized))
	r.ContentLength = int64(len(sanitized))
	return nil
}

func sanitizeValue(v any) any {
	switch val := v.(type) {
	case string:
		return htmlEscaper.Replace(val)
	case map[string]any:
		for k, inner := range val {
			val[k] = sanitizeValue(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = sanitizeValue(inner)
		}
		return val
	default:
		return v
	}
}
