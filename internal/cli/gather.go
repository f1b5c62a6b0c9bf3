// internal/cli/gather.go
//
// The gather subcommand: simulate every possible target with a fresh
// optimal player and print solver statistics.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sinnerdle/ptndle-cli/internal/game"
)

var gatherCmd = &cobra.Command{
	Use:   "gather",
	Short: "Play every possible game and gather solver statistics",
	Long: `Play every possible game of Path To Nowordle and gather statistical data
about the solver's performance.

The results of playing each game are sent to stdout along with a summary of
the gathered data containing the following information:
    - The first sinner the solver chooses to play
    - The maximum number of guesses it takes to guess any sinner
    - The distribution of the number of guesses it takes to guess sinners
    - The sinners that take the maximum number of guesses to guess
    - The mean number of guesses it takes to guess a sinner`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sinners, err := loadRoster(cmd)
		if err != nil {
			return err
		}
		gather(cmd.OutOrStdout(), sinners)
		return nil
	},
}

// gather plays each roster entry as the target and summarizes the guess
// counts.
func gather(w io.Writer, sinners []game.Sinner) {
	counts := make([]uint8, len(sinners))
	for i := range sinners {
		counts[i] = game.Play(w, &sinners[i], game.NewOptimalPlayer(sinners))
	}

	first := game.NewOptimalPlayer(sinners).NextGuess()
	fmt.Fprintf(w, "Goto first sinner to play: %s\n", first.Name)

	var max uint8
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	fmt.Fprintf(w, "It takes %d or less guesses to guess any sinner.\n", max)

	for rounds := uint8(1); rounds <= max; rounds++ {
		n := 0
		for _, c := range counts {
			if c == rounds {
				n++
			}
		}
		fmt.Fprintf(w, "    %d sinners take %d guesses (%.2f%%)\n",
			n, rounds, float64(n)*100/float64(len(sinners)))
		if rounds == max {
			break
		}
	}

	fmt.Fprintln(w, "The sinners that take the maximum number of guesses rounds are:")
	for i, c := range counts {
		if c == max {
			fmt.Fprintf(w, "    %s\n", sinners[i].Name)
		}
	}

	var sum int
	for _, c := range counts {
		sum += int(c)
	}
	fmt.Fprintf(w, "The mean number of guesses is %.2f\n",
		float64(sum)/float64(len(sinners)))
}
