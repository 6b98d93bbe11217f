package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the media control tool is reachable",
	Long: `Run a diagnostic invocation of the external control tool and print
its version string.

A non-zero exit means the tool is missing or broken; the other commands
will then show an empty player list.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	client, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	version, err := client.Version(ctx)
	if err != nil {
		return fmt.Errorf("media control tool not reachable: %w", err)
	}

	fmt.Println(version)
	return nil
}
