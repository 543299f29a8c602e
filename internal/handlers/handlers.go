package handlers

import (
	"TodoAuth/internal/middleware"
	"TodoAuth/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewUserServiceHandler разводящий для user-сервиса: регистрация, вход, проверка токена.
func NewUserServiceHandler(userService *service.UserService, logger *zap.SugaredLogger) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	userHandler := NewUserHandler(userService, logger)

	r.Post("/register", userHandler.Register)
	r.Post("/login", userHandler.Login)
	r.Post("/token", userHandler.ValidateToken)
	r.Get("/health", Health)

	return &Handler{Router: r}
}

// NewTodoServiceHandler разводящий для todo-сервиса. Маршруты /todos закрыты шлюзом:
// WithAuth кладёт userID из bearer-токена в контекст, RequireAuth отсекает остальных.
func NewTodoServiceHandler(
	todoService *service.TodoService,
	authorizer middleware.Authorizer,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(authorizer))

	todoHandler := NewTodoHandler(todoService, logger)

	r.Get("/health", Health)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/todos", todoHandler.Create)
		r.Get("/todos", todoHandler.List)
	})

	return &Handler{Router: r}
}

// Health: проба живости.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
