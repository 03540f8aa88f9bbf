package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "test-secret"

type logEntry struct {
	level     logger.Level
	msg       string
	requestID string
	attrs     map[string]any
}

// recordingLogger keeps LogAttrs calls for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) LogAttrs(ctx context.Context, level logger.Level, msg string, attrs ...logger.Attr) {
	e := logEntry{level: level, msg: msg, requestID: logger.GetRequestID(ctx), attrs: map[string]any{}}
	for _, a := range attrs {
		e.attrs[a.Key] = a.Value
	}
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()
}

func (l *recordingLogger) Log(level logger.Level, msg string, attrs ...logger.Attr) {
	l.LogAttrs(context.Background(), level, msg, attrs...)
}

func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any) {}
func (l *recordingLogger) Warn(string, ...any) {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Debugw(string, ...any) {}
func (l *recordingLogger) Infow(string, ...any) {}
func (l *recordingLogger) Warnw(string, ...any) {}
func (l *recordingLogger) Errorw(string, ...any) {}
func (l *recordingLogger) Ctx(context.Context) logger.Logger { return l }
func (l *recordingLogger) With(...any) logger.Logger { return l }
func (l *recordingLogger) WithGroup(string) logger.Logger { return l }
func (l *recordingLogger) LogRequest(context.Context, string, string, int, time.Duration) {}

func (l *recordingLogger) last(t *testing.T) logEntry {
	t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()
	require.NotEmpty(t, l.entries)
	return l.entries[len(l.entries)-1]
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w = serve(r, req)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-42", w.Body.String())
}

func TestRecovery_Returns500(t *testing.T) {
	log := &recordingLogger{}
	r := ginext.New("test")
	r.Use(RequestID(), Recovery(log))
	r.GET("/", func(*ginext.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	w := serve(r, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())

	entry := log.last(t)
	assert.Equal(t, logger.ErrorLevel, entry.level)
	assert.Equal(t, "req-7", entry.requestID)
	assert.Equal(t, "boom", entry.attrs["error"])
}

func TestRequestLogger_WritesErrorAttr(t *testing.T) {
	log := &recordingLogger{}

	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log))
	r.GET("/items/:id", func(c *ginext.Context) {
		c.Set(ErrorKey, "lookup failed")
		c.Status(http.StatusNotFound)
	})

	serve(r, httptest.NewRequest(http.MethodGet, "/items/7", nil))

	entry := log.last(t)
	assert.Equal(t, logger.WarnLevel, entry.level)
	assert.NotEmpty(t, entry.requestID)
	assert.Equal(t, "/items/:id", entry.attrs["path"])
	assert.Equal(t, http.StatusNotFound, entry.attrs["status"])
	assert.Equal(t, "lookup failed", entry.attrs["error"])
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	cases := []struct {
		status int
		want   logger.Level
	}{
		{http.StatusOK, logger.InfoLevel},
		{http.StatusConflict, logger.WarnLevel},
		{http.StatusInternalServerError, logger.ErrorLevel},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.status), func(t *testing.T) {
			log := &recordingLogger{}
			r := ginext.New("test")
			r.Use(RequestLogger(log))
			r.GET("/", func(c *ginext.Context) { c.Status(tc.status) })

			serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tc.want, log.last(t).level)
		})
	}
}

func authRouter(roles ...domain.Role) http.Handler {
	r := ginext.New("test")
	g := r.Group("/", Auth(NewTokenValidator(testSecret)))
	if len(roles) > 0 {
		g.Use(RequireRole(roles...))
	}
	g.GET("/me", func(c *ginext.Context) {
		actor, _ := ActorFrom(c)
		c.JSON(http.StatusOK, ginext.H{"user_id": actor.UserID, "role": actor.Role})
	})
	return r
}

func bearer(t *testing.T, userID string, role domain.Role) string {
	t.Helper()
	return "Bearer " + testutil.Token(t, testSecret, userID, role, time.Hour)
}

func TestAuth_ValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", bearer(t, "u1", domain.RoleGuest))

	w := serve(authRouter(), req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u1","role":"guest"}`, w.Body.String())
}

func TestAuth_Rejects(t *testing.T) {
	other := testutil.Token(t, "other-secret", "u1", domain.RoleGuest, time.Hour)
	expired := testutil.Token(t, testSecret, "u1", domain.RoleGuest, -time.Minute)
	noUser := testutil.Token(t, testSecret, "", domain.RoleGuest, time.Hour)
	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u1", Role: "root"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"wrong secret":   "Bearer " + other,
		"expired":        "Bearer " + expired,
		"no user id":     "Bearer " + noUser,
		"unknown role":   "Bearer " + badRole,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := serve(authRouter(), req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := authRouter(domain.RoleHost)

	cases := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleHost, http.StatusOK},
		{domain.RoleAdmin, http.StatusOK},
		{domain.RoleGuest, http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", bearer(t, "u1", tc.role))
		assert.Equal(t, tc.want, serve(r, req).Code, string(tc.role))
	}
}
