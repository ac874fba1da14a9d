package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNetwork — сервер недоступен (connection refused, таймаут).
// Отличается от структурированной ошибки в теле ответа.
var ErrNetwork = errors.New("cannot reach server")

var client = &http.Client{Timeout: 10 * time.Second}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as auth cookie.
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
	if token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	return do(req)
}

// GetJSON sends a GET request. If token is non-empty, it is passed as auth cookie.
func GetJSON(ctx context.Context, url string, token string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}
	if token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	return do(req)
}

func do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		// транспортная ошибка: до сервера не достучались
		return nil, nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

// Message извлекает поле message из тела ответа сервера.
func Message(body []byte) string {
	var m struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &m); err != nil || m.Message == "" {
		return string(bytes.TrimSpace(body))
	}
	return m.Message
}

// AuthToken извлекает auth cookie из ответа сервера.
func AuthToken(resp *http.Response) (string, error) {
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return c.Value, nil
		}
	}
	return "", fmt.Errorf("no auth cookie in response")
}
