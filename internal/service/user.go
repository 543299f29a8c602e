package service

import (
	"TodoAuth/internal/auth"
	"TodoAuth/internal/model"
	"TodoAuth/internal/repo"
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrLoginTaken: пользователь с таким именем уже существует.
	ErrLoginTaken = errors.New("login already taken")
	// ErrInvalidCredentials: нет такого пользователя или пароль не совпал.
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// UserService: регистрация, вход и проверка предъявленного токена.
type UserService struct {
	users      repo.UserRepository
	codec      *auth.Codec
	bcryptCost int
	// dummyHash сравнивается при входе несуществующего пользователя,
	// чтобы время ответа не выдавало наличие логина
	dummyHash []byte
	now       func() time.Time
}

// NewUserService создаёт сервис. bcryptCost вне диапазона bcrypt заменяется на bcrypt.DefaultCost.
func NewUserService(users repo.UserRepository, codec *auth.Codec, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("dummy-password"), bcryptCost)
	return &UserService{
		users:      users,
		codec:      codec,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
		now:        time.Now,
	}
}

// Register создаёт пользователя. Если имя занято: ErrLoginTaken.
func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	existing, err := s.users.GetUserByLogin(ctx, username)
	switch {
	case err == nil && existing != nil:
		return nil, ErrLoginTaken
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.CreateUser(ctx, &model.User{Username: username, Password: string(hash)})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrLoginTaken
		}
		// параллельная регистрация могла занять имя между проверкой и вставкой
		if u, lookupErr := s.users.GetUserByLogin(ctx, username); lookupErr == nil && u != nil {
			return nil, ErrLoginTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Authenticate проверяет пару логин/пароль и выпускает новый токен.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.users.GetUserByLogin(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IssueToken выпускает токен для userID (например, сразу после регистрации).
func (s *UserService) IssueToken(userID int64) (string, error) {
	token, err := s.codec.Encode(userID, s.now())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// VerifyToken декодирует токен и убеждается, что пользователь ещё существует.
// Любой отказ: auth.ErrInvalidToken.
func (s *UserService) VerifyToken(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.codec.DecodeAt(token, s.now())
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, fmt.Errorf("lookup user %d: %w", userID, err)
	}
	if user == nil {
		return nil, auth.ErrInvalidToken
	}
	return user, nil
}
