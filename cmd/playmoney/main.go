// Command playmoney queries the PlayMoney prediction-market API and prints
// the results as JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rickgao/playmoney/internal/auth"
	"github.com/rickgao/playmoney/internal/config"
	"github.com/rickgao/playmoney/internal/version"
	"github.com/rickgao/playmoney/pkg/api"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	if flag.Arg(0) == "version" {
		fmt.Println(version.String())
		return
	}

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "playmoney: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "playmoney: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	creds, err := auth.LoadCredentials(cfg.API.APIKey, cfg.API.APIKeyFile)
	if err != nil {
		logger.Error("failed to load credentials", "error", err)
		closeLog()
		os.Exit(1)
	}

	logger.Debug("starting playmoney",
		"version", version.Version,
		"commit", version.Commit,
		"endpoint", cfg.API.Endpoint(),
		"api_key", creds.Redacted(),
		"key_source", creds.Source,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	client := api.NewClient(
		cfg.API.Endpoint(),
		creds.APIKey,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
	)

	if err := run(ctx, client, flag.Args(), os.Stdout); err != nil {
		logger.Error("command failed", "command", flag.Arg(0), "error", err)
		cancel()
		closeLog()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(flag.CommandLine.Output(), `usage: playmoney [-config file] <command> [args]

commands:
  market <id> [activity|balance|balances|comments|graph|positions|related]
  markets [-status s] [-limit n] [-cursor c] [-pages n] [-tags a,b]
  user <id> [balance|graph|positions|stats|transactions]
  username <name>
  referral <code>
  me
  check-username <name>
  list <id> [balance|comments]
  leaderboard [-year y] [-month m]
  version

flags:
`)
	flag.PrintDefaults()
}
