// internal/cli/play.go
//
// The play subcommand: an interactive game against a random target.

package cli

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/sinnerdle/ptndle-cli/internal/game"
	"github.com/sinnerdle/ptndle-cli/internal/ui"
)

const playWelcome = `
      __
     /  \
     |,_,|______
     /        ` + "`" + `-----.___
    ,|                  ` + "`" + `
    /       __       __  |
    |      /  \_____/  \  |
    ` + "`" + `     |   O    X   | |
    ` + "`" + `+___ ` + "`" + `-----------` + "`" + `__^
      /   \__\      /__/ \
      |   ,--, --- ,--,   |
      |   | .|     | .|   |
      |   ` + "`" + `-*   >  ` + "`" + `-*    |
       \                 /
        \      ._>      /
         \             /
          ` + "`" + `-----------` + "`" + `

Welcome to Path to Nowordle CLI edition.
To guess a sinner, use the ` + "`guess`" + ` command.
To view a sinner's info, use the ` + "`info`" + ` command.
To quit, type ` + "`quit`" + ` or press Ctrl + C.

You can press tab to attempt to complete a command at any time`

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of Path to Nowordle from the terminal",
	Long: `Play a game of Path to Nowordle from the terminal

You will be put into an interactive shell with the following commands:

info [sinner]:  View info on a sinner
guess [sinner]: Guess a sinner
quit:           Quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sinners, err := loadRoster(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), playWelcome)
		target, err := randomSinner(sinners)
		if err != nil {
			return err
		}
		game.Play(cmd.OutOrStdout(), target, ui.NewHumanPlayer(sinners))
		return nil
	},
}

// randomSinner picks a uniformly random target from the roster.
func randomSinner(sinners []game.Sinner) (*game.Sinner, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(sinners))))
	if err != nil {
		return nil, fmt.Errorf("failed to get random number: %w", err)
	}
	return &sinners[n.Int64()], nil
}
