package commands

import (
	"InventoryPro/internal/cli/api"
	"InventoryPro/internal/cli/session"
	"InventoryPro/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// SignupRequest — тело запроса регистрации.
type SignupRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// authResponse — общий формат ответов auth-роутов сервера.
type authResponse struct {
	Message string        `json:"message"`
	User    *session.User `json:"user"`
}

type signupCmd struct{}

func (signupCmd) Name() string        { return "signup" }
func (signupCmd) Description() string { return "Создать аккаунт и открыть сессию" }
func (signupCmd) Usage() string {
	return "signup <full-name> <email> <password> <confirm-password>"
}

func (signupCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/signup"
	req := SignupRequest{FullName: args[0], Email: args[1], Password: args[2], ConfirmPassword: args[3]}
	resp, body, err := api.PostJSON(ctx, endpoint, req, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
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
	fmt.Fprintf(Out, "%s\n", ar.Message)
	fmt.Fprintf(Out, "Logged in as %s <%s>\n", ar.User.FullName, ar.User.Email)
	return nil
}

func init() { RegisterCmd(signupCmd{}) }
