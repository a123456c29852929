package cli

import (
	"flag"

	"leadboard/pkg/api"
	"leadboard/pkg/commands"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool

	// Session/API overrides
	Token    string
	Endpoint string

	// Export operation
	ExportFile string
	TypeFlag   string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Session/API overrides
	flag.StringVar(&args.Token, "token", "", "Identity provider session token (overrides stored session)")
	flag.StringVar(&args.Endpoint, "endpoint", "", "Submissions API base URL (overrides config)")

	// Export operation
	flag.StringVar(&args.ExportFile, "export", "", "Export fetched submissions to file and exit")
	flag.StringVar(&args.TypeFlag, "type", "json", "Export file type (json, txt)")

	flag.Parse()
	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(client *api.Client, args *Args) bool {
	if args.ExportFile != "" {
		commands.HandleExportCommand(client, args.ExportFile, args.TypeFlag)
		return true
	}

	// No CLI command was handled
	return false
}
