package commands

import (
	"InventoryPro/internal/cli/inventory"
	"InventoryPro/internal/cli/session"
	"InventoryPro/internal/config"
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

type shellCmd struct{}

func (shellCmd) Name() string        { return "shell" }
func (shellCmd) Description() string { return "Интерактивная работа с инвентарём (нужна сессия)" }
func (shellCmd) Usage() string       { return "shell" }

const shellHelp = `Commands:
  list                                 show inventory table
  stats                                show aggregate stats
  add <name> <category> <qty> <value>  add item (categories: Electronics, Furniture, Supplies, Tools, Other)
  del <id>                             delete item by id
  logout                               close session and leave
  exit                                 leave shell (items are discarded)
`

func (shellCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	holder, err := session.Open(cfg.SessionFile)
	if err != nil {
		return err
	}
	// Гейт маршрутизации: без активной сессии инвентарь недоступен.
	if !holder.IsActive() {
		return errors.New("not logged in: run 'login' or 'signup' first")
	}
	u, _ := holder.Current()
	fmt.Fprintf(Out, "Hello, %s\n", u.FullName)
	fmt.Fprint(Out, shellHelp)

	// Вотчер подхватывает разлогин из другого процесса.
	var closed atomic.Bool
	holder.Subscribe(func(active bool) {
		if !active {
			closed.Store(true)
		}
	})
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go holder.Watch(watchCtx, time.Second)

	store := inventory.NewStore()
	scanner := bufio.NewScanner(In)
	for {
		if ctx.Err() != nil {
			return nil
		}
		if closed.Load() || !holder.IsActive() {
			fmt.Fprintln(Out, "Session was closed elsewhere, leaving shell")
			return nil
		}
		fmt.Fprint(Out, "inv> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// сессию могли закрыть, пока ждали ввод
		if closed.Load() || !holder.IsActive() {
			fmt.Fprintln(Out, "Session was closed elsewhere, leaving shell")
			return nil
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "help":
			fmt.Fprint(Out, shellHelp)
		case "list":
			printItems(store)
		case "stats":
			printStats(store)
		case "add":
			if len(fields) != 5 {
				fmt.Fprintln(Out, "usage: add <name> <category> <qty> <value>")
				continue
			}
			d := inventory.Draft{Name: fields[1], Category: fields[2], Quantity: fields[3], Value: fields[4]}
			store.UpdateDraft(d)
			item, err := store.Add(d)
			if err != nil {
				fmt.Fprintf(Out, "error: %v\n", err)
				continue
			}
			fmt.Fprintf(Out, "Added #%d %s\n", item.ID, item.Name)
		case "del":
			if len(fields) != 2 {
				fmt.Fprintln(Out, "usage: del <id>")
				continue
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Fprintln(Out, "usage: del <id>")
				continue
			}
			store.Delete(id)
			fmt.Fprintf(Out, "Deleted #%d (no-op if absent)\n", id)
		case "logout":
			if err := holder.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(Out, "Logged out")
			return nil
		case "exit", "quit":
			return nil
		default:
			fmt.Fprintf(Out, "unknown command: %s (type 'help')\n", fields[0])
		}
	}
}

func printItems(store *inventory.Store) {
	items := store.Items()
	if len(items) == 0 {
		fmt.Fprintln(Out, "No items in inventory yet")
		return
	}
	fmt.Fprintf(Out, "%-4s %-20s %-12s %8s %12s %14s\n", "ID", "Name", "Category", "Qty", "Unit Price", "Total Value")
	for _, it := range items {
		fmt.Fprintf(Out, "%-4d %-20s %-12s %8d %12s %14s\n",
			it.ID, it.Name, it.Category, it.Quantity,
			"$"+inventory.FormatValue(it.Value),
			"$"+inventory.FormatValue(float64(it.Quantity)*it.Value),
		)
	}
}

func printStats(store *inventory.Store) {
	st := store.Stats()
	fmt.Fprintf(Out, "Total Items:    %d\n", st.TotalItems)
	fmt.Fprintf(Out, "Total Value:    $%s\n", inventory.FormatValue(st.TotalValue))
	fmt.Fprintf(Out, "Categories:     %d\n", st.Categories)
	fmt.Fprintf(Out, "Total Products: %d\n", st.Products)
}

func init() { RegisterCmd(shellCmd{}) }
