package commands

import (
	"InventoryPro/internal/cli/api"
	"InventoryPro/internal/cli/session"
	"InventoryPro/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// LoginRequest — тело запроса входа.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Войти и открыть сессию" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/login"
	req := LoginRequest{Email: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(ctx, endpoint, req, "")
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid email or password")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s", api.Message(body))
	}

	var ar authResponse
	if err := json.Unmarshal(body, &ar); err != nil || ar.User == nil {
		return fmt.Errorf("unexpected server response: %s", strings.TrimSpace(string(body)))
	}
	token, err := api.AuthToken(resp)
	if err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	holder, err := session.Open(cfg.SessionFile)
	if err != nil {
		return err
	}
	if err := holder.Establish(*ar.User, token); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintf(Out, "Logged in as %s <%s>\n", ar.User.FullName, ar.User.Email)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
