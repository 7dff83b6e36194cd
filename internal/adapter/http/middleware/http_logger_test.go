package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggingRouter(out io.Writer, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	base := slog.New(slog.NewJSONHandler(out, nil))
	r := gin.New()
	r.Use(Logging(base))
	r.POST("/echo", handler)
	return r
}

func TestLoggingRestoresOversizedBody(t *testing.T) {
	payload, err := json.Marshal(map[string]string{
		"username": "alice",
		"pad":      strings.Repeat("x", 2*reqBodyLimit),
	})
	require.NoError(t, err)
	require.Greater(t, len(payload), reqBodyLimit)

	var seen []byte
	r := newLoggingRouter(io.Discard, func(c *gin.Context) {
		seen, _ = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payload, seen)
}

func TestLoggingBindsOversizedBody(t *testing.T) {
	payload, err := json.Marshal(map[string]string{
		"username": "alice",
		"pad":      strings.Repeat("x", 2*reqBodyLimit),
	})
	require.NoError(t, err)

	var got struct {
		Username string `json:"username"`
	}
	r := newLoggingRouter(io.Discard, func(c *gin.Context) {
		if err := c.ShouldBindJSON(&got); err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", got.Username)
}

func TestLoggingRedactsPassword(t *testing.T) {
	var logOut bytes.Buffer
	r := newLoggingRouter(&logOut, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	body := `{"username":"alice","password":"hunter77","confirmPassword":"hunter77"}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, logOut.String(), "hunter77")
	assert.Contains(t, logOut.String(), "***redacted***")
}

func TestLoggingOmitsOversizedBodyFromLog(t *testing.T) {
	var logOut bytes.Buffer
	r := newLoggingRouter(&logOut, func(c *gin.Context) {
		_, _ = io.Copy(io.Discard, c.Request.Body)
		c.Status(http.StatusOK)
	})

	secret := strings.Repeat("hunter77", 1+reqBodyLimit/8)
	payload, err := json.Marshal(map[string]string{"password": secret})
	require.NoError(t, err)
	require.Greater(t, len(payload), reqBodyLimit)

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, logOut.String(), "hunter77")
	assert.Contains(t, logOut.String(), "omitted: body over 8KB")
}
