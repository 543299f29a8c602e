package commands

import (
	"TodoAuth/internal/cli/api"
	"TodoAuth/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type Todo struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	UserID int64  `json:"userId"`
}

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Добавить запись" }
func (addCmd) Usage() string       { return "add <text...>" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.PostJSON(ctx, api.Endpoint(cfg.TodoServiceURL, "/todos"), map[string]string{"text": text}, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, api.ErrorMessage(body))
	}

	var todo Todo
	if err := json.Unmarshal(body, &todo); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Добавлено #%d: %s\n", todo.ID, todo.Text)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
