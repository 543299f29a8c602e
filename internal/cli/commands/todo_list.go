package commands

import (
	"TodoAuth/internal/cli/api"
	"TodoAuth/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Показать все записи" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.GetJSON(ctx, api.Endpoint(cfg.TodoServiceURL, "/todos"), token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, api.ErrorMessage(body))
	}

	var todos []Todo
	if err := json.Unmarshal(body, &todos); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(todos) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, t := range todos {
		fmt.Fprintf(Out, "- #%d  %s\n", t.ID, t.Text)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(todos))
	return nil
}

func init() { RegisterCmd(listCmd{}) }
