// internal/middleware/middleware_test.go
package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/anvogue/anvogue-admin/internal/backend"
	"github.com/anvogue/anvogue-admin/internal/config"
	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/utils"
)

const testSecret = "test-secret"

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func authEngine(cfg config.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(I18nMiddleware("fr"))
	r.GET("/private", AuthRequired(cfg), func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
			"forward": backend.TokenFrom(c.Request.Context()),
		})
	})
	return r
}

func call(r http.Handler, authHeader, lang string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Message
}

func TestAuthRequiredRejects(t *testing.T) {
	r := authEngine(config.AuthConfig{JWTSecret: testSecret})
	expired := signed(t, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	otherKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u1"}).
		SignedString([]byte("other"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		key    string
	}{
		{"missing header", "", i18n.KeyAuthRequired},
		{"wrong scheme", "Basic abc", i18n.KeyAuthInvalidToken},
		{"garbage", "Bearer not-a-jwt", i18n.KeyAuthInvalidToken},
		{"wrong signature", "Bearer " + otherKey, i18n.KeyAuthInvalidToken},
		{"expired", "Bearer " + expired, i18n.KeyAuthTokenExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(r, tt.header, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, i18n.T("fr", tt.key), errorMessage(t, w))
		})
	}
}

func TestAuthRequiredForwardsToken(t *testing.T) {
	r := authEngine(config.AuthConfig{JWTSecret: testSecret})
	token := signed(t, jwt.RegisteredClaims{
		Subject:   "u42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	w := call(r, "Bearer "+token, "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u42", body["user_id"])
	assert.Equal(t, token, body["forward"])
}

func TestAuthRequiredWithoutSecretOnlyDecodes(t *testing.T) {
	r := authEngine(config.AuthConfig{})
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u7"}).
		SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)

	w := call(r, "Bearer "+token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, utils.HashString(token), body["user_id"])
}

func TestAuthMessagesFollowAcceptLanguage(t *testing.T) {
	r := authEngine(config.AuthConfig{})
	w := call(r, "", "en-US,en;q=0.9")
	assert.Equal(t, i18n.T("en", i18n.KeyAuthRequired), errorMessage(t, w))
}

func TestParseAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "fr"},
		{"en", "en"},
		{"en-GB,en;q=0.9,fr;q=0.8", "en"},
		{"de-DE,fr;q=0.5", "fr"},
		{"de, es", "fr"},
		{" , ;q=1", "fr"},
		{"EN_us", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAcceptLanguage(tt.header, "fr"))
		})
	}
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(rate.Every(time.Hour), 2).Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterEvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(rate.Inf, 1)
	rl.getVisitor("10.0.0.1")

	rl.evict(time.Now().Add(-time.Minute))
	assert.Len(t, rl.visitors, 1)
	rl.evict(time.Now().Add(time.Minute))
	assert.Empty(t, rl.visitors)
}

func TestZeroLimitsDisableLimiting(t *testing.T) {
	assert.Equal(t, rate.Inf, perSecond(0))
	assert.Equal(t, rate.Inf, perMinute(-1))
	assert.Equal(t, 1, burst(0))
	assert.Equal(t, rate.Every(time.Second), perMinute(60))
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestExtractResourceType(t *testing.T) {
	assert.Equal(t, "articles", extractResourceType("/api/articles/dialog"))
	assert.Equal(t, "health", extractResourceType("/health"))
	assert.Equal(t, "unknown", extractResourceType("/"))
}
