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

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	UserID   int64  `json:"userId"`
	Message  string `json:"message"`
}

// authenticate отправляет учётные данные на path user-сервиса и при wantStatus сохраняет токен.
func authenticate(ctx context.Context, cfg *config.Config, path string, args []string, wantStatus int) (*AuthResponse, error) {
	if len(args) != 2 {
		return nil, ErrUsage
	}
	req := CredentialsRequest{Username: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(ctx, api.Endpoint(cfg.UserServiceURL, path), req, "")
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case wantStatus:
	case http.StatusConflict:
		return nil, errors.New("username already taken")
	case http.StatusUnauthorized:
		return nil, errors.New("invalid login or password")
	default:
		return nil, fmt.Errorf("server status %d: %s", resp.StatusCode, api.ErrorMessage(body))
	}

	var ar AuthResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := tokenStore(cfg).Save(ar.Token); err != nil {
		return nil, fmt.Errorf("saving auth: %w", err)
	}
	return &ar, nil
}
