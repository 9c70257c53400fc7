package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/integration/adapters"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthEngine(m *AuthMiddleware) *gin.Engine {
	r := gin.New()
	r.GET("/me", m.Authenticate(), func(c *gin.Context) {
		accountID, ok := GetAccountIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		email, _ := GetAccountEmailFromContext(c)
		c.JSON(http.StatusOK, gin.H{"account_id": accountID.String(), "email": email})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := adapters.NewTokenService("test-secret", time.Hour)
	engine := newAuthEngine(NewAuthMiddleware(tokens))

	accountID := uuid.New()
	token, err := tokens.GenerateAccessToken(accountID, "chef@example.com")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   domainerror.AuthErrorCode
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantCode: domainerror.ErrCodeMissingToken},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: domainerror.ErrCodeInvalidToken},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantCode: domainerror.ErrCodeMissingToken},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized, wantCode: domainerror.ErrCodeInvalidToken},
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				var body dto.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, string(tt.wantCode), body.Code)
				return
			}

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, accountID.String(), body["account_id"])
			assert.Equal(t, "chef@example.com", body["email"])
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	// Expiry is truncated to the second, so this token is already expired.
	tokens := adapters.NewTokenService("test-secret", time.Nanosecond)
	token, err := tokens.GenerateAccessToken(uuid.New(), "chef@example.com")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	engine := newAuthEngine(NewAuthMiddleware(tokens))
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(domainerror.ErrCodeExpiredToken), body.Code)
}

type manualClock struct{ now time.Time }

func (m *manualClock) Now() time.Time { return m.now }

func TestRateLimiter_PerAccount(t *testing.T) {
	clock := &manualClock{now: time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiterWithClock(2, time.Minute, clock)
	first := uuid.New()
	second := uuid.New()

	r := gin.New()
	r.GET("/limited", func(c *gin.Context) {
		c.Set(string(AccountIDKey), uuid.MustParse(c.Query("account")))
		c.Next()
	}, rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	call := func(accountID uuid.UUID) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/limited?account="+accountID.String(), nil))
		return rec
	}

	assert.Equal(t, http.StatusOK, call(first).Code)
	assert.Equal(t, http.StatusOK, call(first).Code)

	clock.now = clock.now.Add(20 * time.Second)
	limited := call(first)
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "40", limited.Header().Get("Retry-After"))
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(limited.Body.Bytes(), &body))
	assert.Equal(t, string(domainerror.ErrCodeAIRateLimited), body.Code)

	assert.Equal(t, http.StatusOK, call(second).Code)

	clock.now = clock.now.Add(40 * time.Second)
	assert.Equal(t, http.StatusOK, call(first).Code)

	rl.Reset()
	assert.Equal(t, http.StatusOK, call(second).Code)
}

type recordedRequest struct {
	method string
	route  string
	status int
}

type spyObserver struct {
	requests []recordedRequest
}

func (s *spyObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	s.requests = append(s.requests, recordedRequest{method: method, route: route, status: status})
}

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	observer := &spyObserver{}
	r := gin.New()
	r.Use(Metrics(observer))
	r.GET("/recipes/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recipes/123", nil))

	require.Len(t, observer.requests, 1)
	assert.Equal(t, recordedRequest{method: http.MethodGet, route: "/recipes/:id", status: http.StatusNoContent}, observer.requests[0])
}
