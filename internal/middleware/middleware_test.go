package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"film_api/internal/model"
	"film_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(jwtUtil *utils.JWTUtil, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuthMiddleware(jwtUtil)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, identity)
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, jwtUtil *utils.JWTUtil, role string) string {
	t.Helper()
	token, err := jwtUtil.GenerateToken(model.Identity{ID: 1, Username: "alice", Role: role})
	require.NoError(t, err)
	return token
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwtUtil := utils.NewJWTUtil(testSecret, time.Hour)
	r := newProtectedRouter(jwtUtil)
	valid := tokenFor(t, jwtUtil, model.RoleUser)

	otherSigner := utils.NewJWTUtil("other-secret", time.Hour)
	forged := tokenFor(t, otherSigner, model.RoleAdmin)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &utils.JWTClaims{
		UserID: 1, Username: "alice", Role: model.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization token required"},
		{"wrong scheme", "Basic " + valid, http.StatusForbidden, "Invalid authorization header format"},
		{"token scheme", "Token abc", http.StatusForbidden, "Invalid authorization header format"},
		{"bearer without token", "Bearer ", http.StatusUnauthorized, "Authorization token required"},
		{"scheme only", "Bearer", http.StatusUnauthorized, "Authorization token required"},
		{"garbage token", "Bearer not.a.token", http.StatusForbidden, "Invalid token"},
		{"foreign signature", "Bearer " + forged, http.StatusForbidden, "Invalid token"},
		{"expired token", "Bearer " + expired, http.StatusForbidden, "Token expired"},
		{"valid token", "Bearer " + valid, http.StatusOK, `"username":"alice"`},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, `"role":"user"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(r, tt.header)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	jwtUtil := utils.NewJWTUtil(testSecret, time.Hour)
	r := newProtectedRouter(jwtUtil, AdminMiddleware())

	rec := doRequest(r, "Bearer "+tokenFor(t, jwtUtil, model.RoleUser))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(r, "Bearer "+tokenFor(t, jwtUtil, model.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleMiddleware_WithoutIdentity(t *testing.T) {
	r := gin.New()
	r.GET("/protected", RoleMiddleware(model.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleMiddleware_ExactMatch(t *testing.T) {
	r := gin.New()
	r.GET("/protected", func(c *gin.Context) {
		c.Set(AuthIdentityKey, model.Identity{ID: 1, Role: "Admin"})
	}, RoleMiddleware(model.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := doRequest(r, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/protected", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	rec := doRequest(r, "")
	generated := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRequestLoggerAndRecovery(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/protected", func(c *gin.Context) { panic("kaboom") })

	rec := doRequest(r, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "kaboom")
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), `"path":"/protected"`)
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/protected", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
