package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"text/template"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"playmenu/internal/config"
	"playmenu/internal/players"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active media players",
	Long: `Query the control tool and list the active media players with their
playback status.

The output format can be customized in ~/.config/playmenu/config.yaml
using a Go template. Available fields: .Name, .DisplayName, .Status, .Label

An empty list is not an error: it simply means no media player is active
(or the control tool is not installed).`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	// Add format flag to override config
	listCmd.Flags().StringP("format", "f", "", "Output format template (overrides config)")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Check for format flag override
	formatFlag, _ := cmd.Flags().GetString("format")
	if formatFlag != "" {
		cfg.ListFormat = formatFlag
	}

	client := players.NewPlayerctlClient(cfg.Command)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.CommandTimeout())
	defer cancel()

	registry := players.NewRegistry(client, zerolog.Nop())
	records := registry.List(ctx)

	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "No players found")
		return nil
	}

	for _, rec := range records {
		line, err := formatRecord(rec, cfg.ListFormat)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		fmt.Println(line)
	}
	return nil
}

// formatRecord applies the template to one player record
func formatRecord(rec players.PlayerRecord, templateStr string) (string, error) {
	tmpl, err := template.New("output").Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("invalid template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, rec); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return buf.String(), nil
}
