// internal/cli/solve.go
//
// The solve subcommand: drive the optimal player against a live external
// game, with an optional comma-separated Name:hint seed list.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sinnerdle/ptndle-cli/internal/game"
	"github.com/sinnerdle/ptndle-cli/internal/roster"
)

var solveCmd = &cobra.Command{
	Use:   "solve [guesses]",
	Short: "Solve a game of Path to Nowordle",
	Long: `Solve a game of Path to Nowordle from an optional set of starting guesses.

Guesses are made up of 5 whitespace-separated components, Code (comparison),
Alignment (boolean), Tendency (boolean), Height (comparison), and
Birthplace (boolean). Booleans are entered as 0 or 1 and comparisons are
entered as follows:

    N/A:         x
    Correct:     =
    Far Less:    vv
    Less:        v
    Near:        ~
    Greater:     ^
    Far Greater: ^^

An example input for a guess is ^^ 0 0 ~ 1 and an example input for the
guesses argument is "L.L.:^ 0 0 vv 0,Angell:^^ 0 0 vv 0"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var seeds []seedGuess
		if len(args) == 1 {
			var err error
			seeds, err = parseSeeds(args[0])
			if err != nil {
				return err
			}
		}
		sinners, err := loadRoster(cmd)
		if err != nil {
			return err
		}
		return solve(cmd.OutOrStdout(), cmd.InOrStdin(), seeds, sinners)
	},
}

// seedGuess is one previously played Name:hint pair.
type seedGuess struct {
	name string
	hint game.Hint
}

// parseSeeds parses a comma-separated list of Name:hint pairs.
func parseSeeds(s string) ([]seedGuess, error) {
	parts := strings.Split(s, ",")
	seeds := make([]seedGuess, 0, len(parts))
	for _, part := range parts {
		name, hintText, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("invalid guess %q: no : in input", part)
		}
		h, err := game.ParseHint(hintText)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, seedGuess{name: strings.TrimSpace(name), hint: h})
	}
	return seeds, nil
}

const solveWelcome = `======== Welcome to the Path to Nowordle Solver ========
This solver always wins within 4 guesses from an unknown sinner target, but
typically wins in 3 or less.

======== Instructions ========
Enter a row as seen on the website when prompted and guess the sinner you
are prompted to play.
Entries in the row are separated by whitespace.
Comparisons are entered as vv/v/~/=/^/^^ and booleans are entered as 0 or 1.
An example input is ^^ 0 0 ~ 1
==============================`

// solve seeds the optimal player and then loops: recommend a guess, read
// the reported hint row, update, show the survivors.
func solve(w io.Writer, in io.Reader, seeds []seedGuess, sinners []game.Sinner) error {
	fmt.Fprintln(w, solveWelcome)
	player := game.NewOptimalPlayer(sinners)

	for _, seed := range seeds {
		s, err := roster.FindByName(sinners, seed.name)
		if err != nil {
			return err
		}
		player.Update(seed.hint, s)
	}
	if len(seeds) > 0 {
		printCandidates(w, player)
	}

	reader := bufio.NewReader(in)
	for {
		s := player.NextGuess()
		if s == nil {
			return errors.New("no possible guesses in this state, there is likely a contradiction")
		}
		fmt.Fprintf(w, "Guess %s\n", s.Name)
		if len(player.Candidates()) == 1 {
			fmt.Fprintln(w, "GG! You won.")
			return nil
		}

		var h game.Hint
		for {
			fmt.Fprint(w, "Enter row or q to quit: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return fmt.Errorf("failed to read line of input: %w", err)
			}
			line = strings.TrimSpace(line)
			if line == "q" {
				return nil
			}
			parsed, perr := game.ParseHint(line)
			if perr != nil {
				fmt.Fprintln(w, perr)
				continue
			}
			h = parsed
			break
		}

		player.Update(h, s)
		printCandidates(w, player)
	}
}

func printCandidates(w io.Writer, player *game.OptimalPlayer) {
	names := make([]string, 0, len(player.Candidates()))
	for _, c := range player.Candidates() {
		names = append(names, c.Name)
	}
	fmt.Fprintf(w, "Possible Sinners: %s\n", strings.Join(names, ", "))
}
