package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"leadboard/pkg/api"
	"leadboard/pkg/auth"
	"leadboard/pkg/cli"
	"leadboard/pkg/config"
	"leadboard/pkg/contacts"
	"leadboard/pkg/logging"
	"leadboard/pkg/ui"
)

func main() {
	// Optional .env so LEADBOARD_* variables can come from a file
	_ = godotenv.Load()

	args := cli.ParseArgs()

	logger := logging.Discard()
	if args.Verbose {
		fileLogger, err := logging.NewDated("debug")
		if err != nil {
			fmt.Printf("Error initializing logger: %v\n", err)
			os.Exit(1)
		}
		defer fileLogger.Close()
		logger = fileLogger
	}

	// Load configuration
	cfg, styles, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if args.Endpoint != "" {
		cfg.Endpoint = args.Endpoint
	}

	// Resolve the identity provider session. Without a signed-in user
	// there is nothing to show.
	session := auth.NewProvider(cfg.TokenFile, auth.WithLogger(logger))
	if err := session.Resolve(args.Token); err != nil {
		switch {
		case errors.Is(err, auth.ErrNoSession):
			fmt.Println("Not signed in. Pass an identity token with -token or set one in", cfg.TokenFile)
		case errors.Is(err, auth.ErrTokenExpired):
			fmt.Println("Your session has expired. Sign in again and pass a fresh token with -token.")
		default:
			fmt.Printf("Error resolving session: %v\n", err)
		}
		os.Exit(1)
	}

	client := api.NewClient(cfg.Endpoint,
		api.WithToken(session.Token()),
		api.WithLimit(cfg.FetchLimit),
		api.WithLogger(logger),
	)

	// Handle one-shot CLI commands (export) before starting the UI
	if cli.HandleCommands(client, args) {
		return
	}

	store := contacts.NewStore()

	// Create and run the Bubble Tea program
	p := tea.NewProgram(ui.NewModel(store, client, session, cfg, styles, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
