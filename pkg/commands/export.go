package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"leadboard/pkg/api"
)

// HandleExportCommand processes --export commands: fetch one batch of
// submissions and write it to a file instead of starting the dashboard.
func HandleExportCommand(client *api.Client, filename, exportType string) {
	list, err := client.FetchSubmissions(context.Background())
	if err != nil {
		fmt.Printf("Error loading submissions: %v\n", err)
		os.Exit(1)
	}

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte

	switch exportType {
	case "json":
		content, err = json.MarshalIndent(list, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling submissions to JSON: %v\n", err)
			os.Exit(1)
		}
	case "txt":
		var lines []string
		for _, c := range list {
			lines = append(lines, fmt.Sprintf("- %s <%s> %s", orNA(c.Name), orNA(c.Email), orNA(c.Date)))
			if c.Message != "" {
				lines = append(lines, "  "+c.Message)
			}
		}
		content = []byte(strings.TrimSpace(strings.Join(lines, "\n")))
	default:
		fmt.Printf("Unknown export type: %s\n", exportType)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d submission(s) to %s\n", len(list), filename)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
