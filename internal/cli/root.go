// internal/cli/root.go
//
// Command-line surface. The root command only carries the global
// --force-cache-update flag; the work happens in the gather/play/solve
// subcommands. cobra's built-in help command covers `help <subcommand>`
// with each command's Long text.

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sinnerdle/ptndle-cli/internal/game"
	"github.com/sinnerdle/ptndle-cli/internal/roster"
)

var forceCacheUpdate bool

var rootCmd = &cobra.Command{
	Use:   "ptndle-cli",
	Short: "Play and solve games of Path to Nowordle",
	Long: `A cli tool for both playing and solving games of Path to Nowordle
(https://ptndle.com/), a game for guessing Path to Nowhere characters based
on their characteristics.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&forceCacheUpdate, "force-cache-update", "f", false,
		"force-fetch the latest sinner data and store it in the cache")
	rootCmd.AddCommand(gatherCmd, playCmd, solveCmd)
}

// Execute runs the CLI. Any error has already been printed by cobra; the
// process exits 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadRoster fetches the roster honoring the global cache flag.
func loadRoster(cmd *cobra.Command) ([]game.Sinner, error) {
	return roster.Load(cmd.Context(), forceCacheUpdate)
}
