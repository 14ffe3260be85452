// Command capstone is the terminal front end for the capstone supervision
// state: role login, team roster, task tracking and meeting scheduling over
// a local or shared key-value store.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"capstone-hub/config"
	"capstone-hub/internal/kvstore"
	"capstone-hub/internal/session"
	"capstone-hub/internal/state"
	"capstone-hub/pkg/logger"
)

const tokenEnv = "CAPSTONE_TOKEN"

var errHelp = errors.New("help provided")

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cli := &commandLine{cfg: cfg, log: log, provider: session.NewProvider(cfg.Session, log)}
	if err := cli.run(context.Background(), os.Args); err != nil {
		if errors.Is(err, errHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type commandLine struct {
	cfg      *config.Config
	log      *zap.SugaredLogger
	provider *session.Provider
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -role manager|leader|team-leader [-passcode CODE]  start a session")
	fmt.Println("  hashpass -passcode CODE                                  print a bcrypt hash for config")
	fmt.Println("  teams list|add|update|delete")
	fmt.Println("  tasks list|add|update|delete")
	fmt.Println("  meetings list|add|update|delete")
	fmt.Println("  calendar [-month YYYY-MM] [-week YYYY-MM-DD]             month or week grid")
	fmt.Println("  day YYYY-MM-DD                                           meetings and deadlines on a day")
	fmt.Println("  upcoming                                                 future meetings and recent tasks")
	fmt.Println("  overdue                                                  tasks past their deadline")
	fmt.Println("  stats                                                    task status counts")
	fmt.Println("  filter -expr 'status == \"pending\"'                       expression filter over tasks")
	fmt.Printf("\nAll commands except login and hashpass read the session token from $%s.\n", tokenEnv)
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		return cli.login(args[2:])
	case "hashpass":
		return cli.hashpass(args[2:])
	case "teams", "tasks", "meetings", "calendar", "day", "upcoming", "overdue", "stats", "filter":
		mgr, closeStore, err := cli.openSession(ctx)
		if err != nil {
			return err
		}
		defer closeStore()
		defer mgr.EndSession()
		return cli.dispatch(ctx, mgr, args[1], args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// openSession verifies the token, opens the store and hydrates the state.
func (cli *commandLine) openSession(ctx context.Context) (*state.Manager, func(), error) {
	raw := os.Getenv(tokenEnv)
	if raw == "" {
		return nil, nil, fmt.Errorf("%s is not set, run login first", tokenEnv)
	}
	claims, err := cli.provider.Verify(raw)
	if err != nil {
		return nil, nil, err
	}

	store, err := kvstore.Open(ctx, cli.cfg, cli.log)
	if err != nil {
		return nil, nil, err
	}
	mgr := state.New(store, cli.log)
	if err := mgr.StartSession(ctx, claims.Identity); err != nil {
		store.Close()
		return nil, nil, err
	}
	return mgr, store.Close, nil
}
