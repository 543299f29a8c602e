package service

import (
	"TodoAuth/internal/model"
	"TodoAuth/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrEmptyText: текст записи пуст.
var ErrEmptyText = errors.New("todo text is empty")

// TodoService работает с записями владельца. Кто владелец, решает шлюз
// авторизации до вызова сервиса: сервис получает уже проверенный userID.
type TodoService struct {
	todos  repo.TodoRepository
	logger *zap.SugaredLogger
}

func NewTodoService(todos repo.TodoRepository, logger *zap.SugaredLogger) *TodoService {
	return &TodoService{todos: todos, logger: logger}
}

// CreateTodo сохраняет запись для userID. Текст хранится как прислан;
// из одних пробелов: ErrEmptyText.
func (s *TodoService) CreateTodo(ctx context.Context, userID int64, text string) (*model.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	todo := &model.Todo{Text: text, UserID: userID}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	s.logger.Debugw("todo created", "user_id", userID, "todo_id", todo.ID)
	return todo, nil
}

// ListTodos возвращает записи userID в порядке создания. Нет записей: пустой срез, не ошибка.
func (s *TodoService) ListTodos(ctx context.Context, userID int64) ([]model.Todo, error) {
	todos, err := s.todos.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}
