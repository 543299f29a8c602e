package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client: HTTP-клиент CLI к обоим сервисам.
var Client = http.DefaultClient

// Endpoint склеивает базовый URL сервиса и путь.
func Endpoint(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// PostJSON отправляет JSON POST. Непустой token уходит в заголовке Authorization: Bearer.
func PostJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return do(req, token)
}

// GetJSON выполняет GET с тем же правилом для token.
func GetJSON(ctx context.Context, url string, token string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}
	return do(req, token)
}

func do(req *http.Request, token string) (*http.Response, []byte, error) {
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := Client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("read response: %w", err)
	}
	return resp, body, nil
}

// ErrorMessage достаёт поле error из JSON-ответа об ошибке, иначе возвращает тело как есть.
func ErrorMessage(body []byte) string {
	var e struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(body, &e); err != nil || e.Error == "" {
		return strings.TrimSpace(string(body))
	}
	if len(e.Fields) == 0 {
		return e.Error
	}
	parts := make([]string, 0, len(e.Fields))
	for f, rule := range e.Fields {
		parts = append(parts, f+": "+rule)
	}
	return e.Error + " (" + strings.Join(parts, ", ") + ")"
}
