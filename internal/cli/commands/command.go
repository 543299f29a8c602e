package commands

import (
	"TodoAuth/internal/cli/repo"
	"TodoAuth/internal/cli/repo/fs"
	"TodoAuth/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// ErrUnauthorized: сервис отверг токен или его нет; нужно войти заново.
var ErrUnauthorized = errors.New("unauthorized: run login or register first")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "login".
	Name() string
	Description() string
	// Usage returns the exact usage string, e.g. "login <username> <password>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out: общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage builds a help text for all commands.
func FormatGlobalUsage() string {
	lines := []string{
		"TodoAuth CLI",
		"",
		"Usage:",
		"  todocli [-user-url URL] [-todo-url URL] [-token-file PATH] <command> [args]",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-32s %s", c.Usage(), c.Description()))
	}
	return strings.Join(lines, "\n") + "\n"
}

// tokenStore: файл токена из конфига.
func tokenStore(cfg *config.Config) repo.TokenStore {
	return fs.TokenFSStore{Path: cfg.TokenFile}
}

// loadToken читает сохранённый токен; его отсутствие: ErrUnauthorized.
func loadToken(cfg *config.Config) (string, error) {
	token, err := tokenStore(cfg).Load()
	if errors.Is(err, fs.ErrNoToken) {
		return "", ErrUnauthorized
	}
	return token, err
}
