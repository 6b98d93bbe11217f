/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)



// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playmenu",
	Short: "Menu-driven control for desktop media players",
	Long: `playmenu discovers the media players active on your desktop session
through a playerctl-compatible control tool and lets you drive them from a
terminal menu or straight from the command line.

Run it with no arguments for the interactive menu, or use the subcommands
(list, play, pause, toggle, next, prev, pause-all, pause-others) from
scripts and keybindings.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	RunE:    runMenu,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags can be added here if needed
}
