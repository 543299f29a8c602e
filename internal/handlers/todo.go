package handlers

import (
	"TodoAuth/internal/middleware"
	"TodoAuth/internal/model"
	"TodoAuth/internal/service"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// TodoHandler: записи текущего пользователя. userID берётся только из контекста,
// который заполнил шлюз авторизации.
type TodoHandler struct {
	TodoService *service.TodoService
	Logger      *zap.SugaredLogger
}

func NewTodoHandler(todoService *service.TodoService, logger *zap.SugaredLogger) *TodoHandler {
	return &TodoHandler{TodoService: todoService, Logger: logger}
}

type CreateTodoRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

type TodoResponse struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	UserID int64  `json:"userId"`
}

// Create создаёт запись
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.WriteUnauthorized(w)
		return
	}

	var req CreateTodoRequest
	if err := decodeRequest(w, r, &req); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		h.Logger.Errorw("CreateTodo: decode", "error", err)
		writeInternalError(w)
		return
	}

	todo, err := h.TodoService.CreateTodo(r.Context(), userID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			writeValidationError(w, &ValidationError{Fields: map[string]string{"text": "required"}})
			return
		}
		h.Logger.Errorw("CreateTodo: service error", "user_id", userID, "error", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, toTodoResponse(*todo))
}

// List отдаёт записи текущего пользователя; нет записей: пустой массив.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.WriteUnauthorized(w)
		return
	}

	todos, err := h.TodoService.ListTodos(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("ListTodos: service error", "user_id", userID, "error", err)
		writeInternalError(w)
		return
	}

	resp := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		resp = append(resp, toTodoResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

func toTodoResponse(t model.Todo) TodoResponse {
	return TodoResponse{ID: t.ID, Text: t.Text, UserID: t.UserID}
}
