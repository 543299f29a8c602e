package repo

import (
	"TodoAuth/internal/model"
	"context"

	"gorm.io/gorm"
)

// TodoRepository: хранилище записей todo.
type TodoRepository interface {
	// Create сохраняет запись и проставляет ей ID.
	Create(ctx context.Context, todo *model.Todo) error
	// ListByUser возвращает записи владельца в порядке создания.
	ListByUser(ctx context.Context, userID int64) ([]model.Todo, error)
}

type todoRepo struct {
	db *gorm.DB
}

// NewTodoRepository создаёт реализацию репозитория todo поверх gorm.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepo{db: db}
}

func (r *todoRepo) Create(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *todoRepo) ListByUser(ctx context.Context, userID int64) ([]model.Todo, error) {
	todos := []model.Todo{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}
