package middleware

import (
	"TodoAuth/internal/auth"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodec(t *testing.T, secret string) *auth.Codec {
	t.Helper()
	c, err := auth.NewCodec([]byte(secret), time.Hour)
	require.NoError(t, err)
	return c
}

const (
	secretA = "secret-A-secret-A-secret-A-secret-A"
	secretB = "secret-B-secret-B-secret-B-secret-B"
)

// echoUserID отвечает 200 и userID из контекста либо 204 для анонимного запроса
var echoUserID = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if uid, ok := GetUserIDFromContext(r.Context()); ok {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(strconv.FormatInt(uid, 10)))
		return
	}
	w.WriteHeader(http.StatusNoContent)
})

func bearer(t *testing.T, c *auth.Codec, userID int64, at time.Time) string {
	t.Helper()
	tok, err := c.Encode(userID, at)
	require.NoError(t, err)
	return "Bearer " + tok
}

// Тест: валидный bearer: user_id попадает в контекст
func TestWithAuth_ValidBearerSetsUserID(t *testing.T) {
	c := newCodec(t, secretA)
	h := WithAuth(c)(echoUserID)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", bearer(t, c, 77, time.Now()))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "77", rr.Body.String())
}

// Тест: отсутствие заголовка и невалидные токены: user_id не устанавливается
func TestWithAuth_RejectedLeavesAnonymous(t *testing.T) {
	a := newCodec(t, secretA)
	b := newCodec(t, secretB)
	tok, err := a.Encode(5, time.Now())
	require.NoError(t, err)

	headers := map[string]string{
		"absent":       "",
		"wrong secret": bearer(t, b, 5, time.Now()),
		"expired":      bearer(t, a, 5, time.Now().Add(-2*time.Hour)),
		"no scheme":    tok,
		"lower scheme": "bearer " + tok,
		"garbage":      "Bearer invalid.token.here",
	}
	h := WithAuth(a)(echoUserID)
	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNoContent, rr.Code)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	c := newCodec(t, secretA)
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		echoUserID.ServeHTTP(w, r)
	})
	h := WithAuth(c)(RequireAuth(inner))

	t.Run("anonymous gets uniform 401", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"unauthorized"}`, rr.Body.String())
		assert.False(t, called, "business handler must not run")
	})

	t.Run("authorized passes", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", bearer(t, c, 3, time.Now()))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, called)
	})
}

func TestGetUserIDFromContext(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	id, ok := GetUserIDFromContext(WithUserID(context.Background(), 9))
	assert.True(t, ok)
	assert.Equal(t, int64(9), id)

	_, ok = GetUserIDFromContext(WithUserID(context.Background(), 0))
	assert.False(t, ok)
}
