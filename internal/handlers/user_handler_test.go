package handlers_test

import (
	"TodoAuth/internal/handlers"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Register(t *testing.T) {
	env := newTestEnv(t)

	t.Run("created", func(t *testing.T) {
		resp := register(t, env, "alice", "s3cret")
		assert.Equal(t, "alice", resp.Username)
		assert.Positive(t, resp.UserID)
		assert.Equal(t, "Authentication successful", resp.Message)

		uid, err := env.codec.Decode(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.UserID, uid)

		stored, err := env.users.GetUserByLogin(context.Background(), "alice")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret", stored.Password, "password must be stored hashed")
	})

	t.Run("conflict", func(t *testing.T) {
		rr := do(t, env.user, http.MethodPost, "/register", map[string]string{"username": "alice", "password": "other"}, nil)
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.NotContains(t, rr.Body.String(), "token")
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			body  any
			field string
			rule  string
		}{
			{"missing username", map[string]string{"password": "p"}, "username", "required"},
			{"short username", map[string]string{"username": "al", "password": "p"}, "username", "min=3"},
			{"long username", map[string]string{"username": strings.Repeat("u", 65), "password": "p"}, "username", "max=64"},
			{"missing password", map[string]string{"username": "bobby"}, "password", "required"},
			{"password over 72 bytes", map[string]string{"username": "bobby", "password": strings.Repeat("п", 37)}, "password", "bcryptlen"},
			{"malformed json", `{"username":`, "body", "invalid json"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rr := do(t, env.user, http.MethodPost, "/register", tc.body, nil)
				require.Equal(t, http.StatusBadRequest, rr.Code)

				body := decodeBody[validationBody](t, rr)
				assert.Equal(t, "validation failed", body.Error)
				assert.Equal(t, tc.rule, body.Fields[tc.field])
			})
		}
	})
}

func TestUser_Login(t *testing.T) {
	env := newTestEnv(t)
	reg := register(t, env, "alice", "s3cret")

	t.Run("ok", func(t *testing.T) {
		rr := do(t, env.user, http.MethodPost, "/login", map[string]string{"username": "alice", "password": "s3cret"}, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeBody[handlers.AuthResponse](t, rr)
		assert.Equal(t, reg.UserID, resp.UserID)
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, "Authentication successful", resp.Message)
		uid, err := env.codec.Decode(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, reg.UserID, uid)
	})

	// неверный пароль и неизвестный пользователь неразличимы
	for name, body := range map[string]map[string]string{
		"wrong password": {"username": "alice", "password": "nope"},
		"unknown user":   {"username": "mallory", "password": "s3cret"},
	} {
		t.Run(name, func(t *testing.T) {
			rr := do(t, env.user, http.MethodPost, "/login", body, nil)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"error":"unauthorized"}`, rr.Body.String())
		})
	}

	t.Run("validation", func(t *testing.T) {
		rr := do(t, env.user, http.MethodPost, "/login", map[string]string{"username": "alice"}, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUser_ValidateToken(t *testing.T) {
	env := newTestEnv(t)
	reg := register(t, env, "alice", "s3cret")

	t.Run("valid", func(t *testing.T) {
		rr := do(t, env.user, http.MethodPost, "/token", map[string]string{"token": reg.Token}, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[handlers.TokenValidationResponse](t, rr)
		assert.Equal(t, handlers.TokenValidationResponse{
			Valid: true, UserID: reg.UserID, Username: "alice", Message: "Token valid",
		}, resp)
	})

	orphan, err := env.codec.Encode(999, time.Now())
	require.NoError(t, err)
	expired, err := env.codec.Encode(reg.UserID, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	foreign, err := newTestCodec(t, otherSecret).Encode(reg.UserID, time.Now())
	require.NoError(t, err)

	for name, token := range map[string]string{
		"orphaned identity": orphan,
		"expired":           expired,
		"foreign secret":    foreign,
		"garbage":           "invalid.token.here",
	} {
		t.Run(name, func(t *testing.T) {
			rr := do(t, env.user, http.MethodPost, "/token", map[string]string{"token": token}, nil)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"valid":false,"message":"Invalid token"}`, rr.Body.String())
		})
	}

	for name, body := range map[string]string{
		"empty token":   `{"token":""}`,
		"missing token": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			rr := do(t, env.user, http.MethodPost, "/token", body, nil)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"valid":false,"message":"Invalid token"}`, rr.Body.String())
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		rr := do(t, env.user, http.MethodPost, "/token", `{"token":`, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	for _, h := range []http.Handler{env.user, env.todo} {
		rr := do(t, h, http.MethodGet, "/health", nil, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	}
}
