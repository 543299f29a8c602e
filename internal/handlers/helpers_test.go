package handlers_test

import (
	"TodoAuth/internal/auth"
	"TodoAuth/internal/handlers"
	"TodoAuth/internal/repo"
	"TodoAuth/internal/service"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret  = "handlers-test-secret-0123456789-abcdef"
	otherSecret = "another-secret-another-secret-another"
)

func newTestCodec(t *testing.T, secret string) *auth.Codec {
	t.Helper()
	c, err := auth.NewCodec([]byte(secret), time.Hour)
	require.NoError(t, err)
	return c
}

// testEnv: оба сервиса на общем секрете; пользователи и записи хранятся в памяти.
type testEnv struct {
	codec *auth.Codec
	users repo.UserRepository
	user  http.Handler
	todo  http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop().Sugar()
	codec := newTestCodec(t, testSecret)
	users := repo.NewMemoryUserRepository()

	userSvc := service.NewUserService(users, codec, bcrypt.MinCost)
	todoSvc := service.NewTodoService(repo.NewMemoryTodoRepository(), logger)

	return &testEnv{
		codec: codec,
		users: users,
		user:  handlers.NewUserServiceHandler(userSvc, logger).Router,
		todo:  handlers.NewTodoServiceHandler(todoSvc, codec, logger).Router,
	}
}

// do отправляет запрос; body сериализуется в JSON, строка уходит как есть.
func do(t *testing.T, h http.Handler, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

type validationBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&v))
	return v
}

func register(t *testing.T, env *testEnv, username, password string) handlers.AuthResponse {
	t.Helper()
	rr := do(t, env.user, http.MethodPost, "/register", map[string]string{"username": username, "password": password}, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[handlers.AuthResponse](t, rr)
}
