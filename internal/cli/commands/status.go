package commands

import (
	"InventoryPro/internal/cli/api"
	"InventoryPro/internal/cli/session"
	"InventoryPro/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Показать состояние сессии (локально и на сервере)" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	holder, err := session.Open(cfg.SessionFile)
	if err != nil {
		return err
	}
	if !holder.IsActive() {
		fmt.Fprintln(Out, "Session: inactive")
		return nil
	}
	u, _ := holder.Current()
	fmt.Fprintf(Out, "Session: active — %s <%s>\n", u.FullName, u.Email)

	// Сверяемся с сервером: токен мог протухнуть
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/me"
	resp, body, err := api.GetJSON(ctx, endpoint, holder.Token())
	if err != nil {
		if errors.Is(err, api.ErrNetwork) {
			fmt.Fprintln(Out, "Server: unreachable")
			return nil
		}
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Server: session valid")
	case http.StatusUnauthorized:
		fmt.Fprintln(Out, "Server: session expired, please login again")
	default:
		fmt.Fprintf(Out, "Server: %s\n", api.Message(body))
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
