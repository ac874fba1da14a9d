package commands

import (
	"InventoryPro/internal/cli/api"
	"InventoryPro/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"
)

type healthCmd struct{}

func (healthCmd) Name() string        { return "health" }
func (healthCmd) Description() string { return "Проверить доступность сервера" }
func (healthCmd) Usage() string       { return "health" }

func (healthCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/health"
	resp, body, err := api.GetJSON(ctx, endpoint, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, api.Message(body))
	}
	fmt.Fprintf(Out, "%s\n", api.Message(body))
	return nil
}

func init() { RegisterCmd(healthCmd{}) }
