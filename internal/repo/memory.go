package repo

import (
	"TodoAuth/internal/model"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/gorm"
)

// idAllocator выдаёт возрастающие идентификаторы начиная с 1.
type idAllocator struct {
	last atomic.Int64
}

func (a *idAllocator) next() int64 { return a.last.Add(1) }

type memoryUserRepo struct {
	mu     sync.RWMutex
	ids    idAllocator
	byID   map[int64]model.User
	byName map[string]int64
}

// NewMemoryUserRepository: хранилище пользователей в памяти процесса (без DATABASE_URI).
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepo{
		byID:   make(map[int64]model.User),
		byName: make(map[string]int64),
	}
}

func (r *memoryUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[user.Username]; taken {
		return nil, ErrDuplicate
	}
	user.ID = r.ids.next()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	r.byID[user.ID] = *user
	r.byName[user.Username] = user.ID
	return user, nil
}

func (r *memoryUserRepo) GetUserByLogin(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *memoryUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

type memoryTodoRepo struct {
	mu      sync.RWMutex
	ids     idAllocator
	byOwner map[int64][]model.Todo
}

// NewMemoryTodoRepository: хранилище todo в памяти процесса (без DATABASE_URI).
func NewMemoryTodoRepository() TodoRepository {
	return &memoryTodoRepo{byOwner: make(map[int64][]model.Todo)}
}

func (r *memoryTodoRepo) Create(ctx context.Context, todo *model.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo.ID = r.ids.next()
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now().UTC()
	}
	r.byOwner[todo.UserID] = append(r.byOwner[todo.UserID], *todo)
	return nil
}

func (r *memoryTodoRepo) ListByUser(ctx context.Context, userID int64) ([]model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.byOwner[userID]
	out := make([]model.Todo, len(src))
	copy(out, src)
	return out, nil
}
