package commands

import (
	"TodoAuth/internal/cli/api"
	"TodoAuth/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type tokenValidationResponse struct {
	Valid    bool   `json:"valid"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Check the stored token with the user service" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if errors.Is(err, ErrUnauthorized) {
		fmt.Fprintln(Out, "Status: anonymous")
		return nil
	}
	if err != nil {
		return err
	}

	resp, body, err := api.PostJSON(ctx, api.Endpoint(cfg.UserServiceURL, "/token"), map[string]string{"token": token}, "")
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, api.ErrorMessage(body))
	}

	var tv tokenValidationResponse
	if err := json.Unmarshal(body, &tv); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Status: logged in as %s (id %d)\n", tv.Username, tv.UserID)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
