package commands

import (
	"TodoAuth/internal/auth"
	"TodoAuth/internal/config"
	"TodoAuth/internal/handlers"
	"TodoAuth/internal/repo"
	"TodoAuth/internal/service"
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// newTestConfig: конфиг клиента с файлом токена во временном каталоге.
func newTestConfig(t *testing.T, userURL, todoURL string) *config.Config {
	t.Helper()
	return &config.Config{
		UserServiceURL: userURL,
		TodoServiceURL: todoURL,
		TokenFile:      filepath.Join(t.TempDir(), "auth_token"),
	}
}

// startServices поднимает оба сервиса на общем секрете и возвращает конфиг клиента к ним.
func startServices(t *testing.T) *config.Config {
	t.Helper()
	logger := zap.NewNop().Sugar()
	codec, err := auth.NewCodec([]byte("cli-test-secret-cli-test-secret-0123"), time.Hour)
	require.NoError(t, err)

	userSvc := service.NewUserService(repo.NewMemoryUserRepository(), codec, bcrypt.MinCost)
	todoSvc := service.NewTodoService(repo.NewMemoryTodoRepository(), logger)

	us := httptest.NewServer(handlers.NewUserServiceHandler(userSvc, logger).Router)
	t.Cleanup(us.Close)
	ts := httptest.NewServer(handlers.NewTodoServiceHandler(todoSvc, codec, logger).Router)
	t.Cleanup(ts.Close)

	return newTestConfig(t, us.URL, ts.URL)
}

// перехват вывода на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
