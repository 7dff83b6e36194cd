package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/logging"
)

const reqBodyLimit = 8 * 1024 // 8KB

// redactJSON blanks out credential fields before the body hits the log.
func redactJSON(raw []byte) []byte {
	if len(raw) == 0 {
		return raw
	}
	var m any
	if err := json.Unmarshal(raw, &m); err != nil {
		return raw // not JSON
	}
	var scrub func(any) any
	scrub = func(x any) any {
		switch v := x.(type) {
		case map[string]any:
			for k, val := range v {
				switch strings.ToLower(k) {
				case "password", "confirmpassword", "authorization", "token", "secret":
					v[k] = "***redacted***"
				default:
					v[k] = scrub(val)
				}
			}
			return v
		case []any:
			for i := range v {
				v[i] = scrub(v[i])
			}
			return v
		default:
			return v
		}
	}
	out := scrub(m)
	b, err := json.Marshal(out)
	if err != nil {
		return raw
	}
	return b
}

// replayBody stitches the already-read prefix back in front of the rest of
// the stream so the handler still sees the full request.
type replayBody struct {
	io.Reader
	io.Closer
}

// Logging logs each request and injects a request-scoped slog.Logger into both
// the gin context and the request context, so lower layers can pick it up.
func Logging(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header("X-Request-Id", reqID)

		l := base.With(
			"req_id", reqID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"remote", c.ClientIP(),
		)
		logging.With(c, l)
		c.Request = c.Request.WithContext(logging.WithCtx(c.Request.Context(), l))

		// capture the request body (JSON only), restore it for the handler
		var reqBodyLogged string
		if strings.Contains(c.GetHeader("Content-Type"), "application/json") && c.Request.Body != nil {
			rc := c.Request.Body
			var buf bytes.Buffer
			_, _ = io.CopyN(&buf, rc, int64(reqBodyLimit)+1)
			b := buf.Bytes()
			if len(b) > reqBodyLimit {
				// too large to log: a cut-off body no longer parses as JSON,
				// so it cannot be redacted either
				c.Request.Body = replayBody{Reader: io.MultiReader(bytes.NewReader(b), rc), Closer: rc}
				reqBodyLogged = "(omitted: body over 8KB)"
			} else {
				_ = rc.Close()
				c.Request.Body = io.NopCloser(bytes.NewReader(b))
				reqBodyLogged = string(redactJSON(b))
			}
		}

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"status", status,
			"dur_ms", time.Since(start).Milliseconds(),
			"resp_bytes", c.Writer.Size(),
		}
		if reqBodyLogged != "" {
			attrs = append(attrs, "req_body", reqBodyLogged)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		if status >= http.StatusBadRequest {
			l.Error("http_request", attrs...)
			return
		}
		l.Info("http_request", attrs...)
	}
}
