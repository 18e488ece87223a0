package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"blogcomments/app/auth"
	"blogcomments/app/config"
	"blogcomments/app/logger"
	"blogcomments/app/maintenance"
	"blogcomments/app/metrics"
	"blogcomments/app/repositories"
	"blogcomments/app/routes"
	"blogcomments/app/server"

	"github.com/rs/zerolog"
)

const CliVersion = "1.0.0"

// exit is swapped out in tests
var exit = os.Exit

func main() {
	RealMain()
}

func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogcomments version %s\n", CliVersion)
	case "serve":
		exitOnError(serve())
	case "token":
		if len(os.Args) < 3 {
			fmt.Println("Error: user id required for token command")
			exit(1)
			return
		}
		exitOnError(printToken(os.Args[2]))
	case "indexes":
		exitOnError(ensureIndexes())
	case "db":
		runDB(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogcomments <command> [options]
Commands:
  help              Display this help message.
  version           Show version information.
  serve             Run the comments API until SIGINT or SIGTERM.
  token <userId>    Print a bearer token for userId signed with the configured secret.
  indexes           Create the MongoDB indexes (nothing to do for the badger store).
  db <command>      Maintain the badger database (init, clean, backup, restore <file>).

Configuration is read from BLOGCOMMENTS_* environment variables and an optional .env file.
`
	fmt.Println(helpText)
}

func exitOnError(err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		exit(1)
	}
}

// serve opens the configured store and runs the HTTP server.
func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	store, err := repositories.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore(store, log)

	if _, err := store.EnsureIndexes(ctx); err != nil {
		return err
	}

	router := routes.SetupRoutes(routes.Dependencies{
		Store:   store,
		Tokens:  auth.NewTokens(cfg.Auth.SecretKey, cfg.Auth.Issuer, cfg.Auth.TokenTTL),
		Logger:  log,
		Metrics: metrics.NewHTTPMetrics(metrics.NewRegistry(), "blogcomments"),
	})

	log.Info().
		Str("env", cfg.Env).
		Str("store", cfg.Store.Driver).
		Msg("blog comments service configured")

	return server.New(cfg.Server, router, log).Run(ctx)
}

func closeStore(store *repositories.Store, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		log.Error().Err(err).Msg("failed to close store")
	}
}

func printToken(userID string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	token, err := auth.NewTokens(cfg.Auth.SecretKey, cfg.Auth.Issuer, cfg.Auth.TokenTTL).MakeToken(userID)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func ensureIndexes() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log)
	ctx := log.WithContext(context.Background())

	store, err := repositories.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore(store, log)

	created, err := store.EnsureIndexes(ctx)
	if err != nil {
		return err
	}
	if !created {
		fmt.Printf("No indexes needed for the %s store\n", cfg.Store.Driver)
		return nil
	}
	fmt.Println("Indexes are in place")
	return nil
}

// runDB runs a maintenance command against the configured badger directory.
func runDB(args []string) {
	cfg, err := config.Load()
	if err != nil {
		exitOnError(err)
		return
	}
	if cfg.Store.Driver != config.DriverBadger {
		exitOnError(fmt.Errorf("db commands need the badger store, configured store is %s", cfg.Store.Driver))
		return
	}

	if code := maintenance.New(cfg.Store.BadgerPath).HandleCommand(args); code != 0 {
		exit(code)
	}
}
