package fs

import (
	"TodoAuth/internal/cli/repo"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoToken: токен ещё не сохранён (не было register/login) или удалён.
var ErrNoToken = errors.New("not logged in")

// TokenFSStore хранит bearer-токен в файле с правами 0600.
type TokenFSStore struct {
	Path string
}

var _ repo.TokenStore = TokenFSStore{}

// Save сохраняет токен, создавая каталог при необходимости.
func (s TokenFSStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load читает токен; отсутствующий или пустой файл: ErrNoToken.
func (s TokenFSStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Clear удаляет файл токена. Отсутствие файла ошибкой не считается.
func (s TokenFSStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
