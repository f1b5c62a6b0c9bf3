// internal/ui/human.go
//
// The interactive player. Obtains guesses from the terminal with the
// info/guess/quit command set; Update is a no-op because the driver renders
// the hint row directly.

package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sinnerdle/ptndle-cli/internal/game"
)

// HumanPlayer is a game.Player connected to the terminal.
type HumanPlayer struct {
	choices     []game.Sinner
	suggestions []string
}

// NewHumanPlayer builds an interactive player offering the given sinners.
func NewHumanPlayer(choices []game.Sinner) *HumanPlayer {
	suggestions := make([]string, 0, 2*len(choices)+1)
	for i := range choices {
		suggestions = append(suggestions, "info "+choices[i].Name)
	}
	for i := range choices {
		suggestions = append(suggestions, "guess "+choices[i].Name)
	}
	suggestions = append(suggestions, "quit")
	return &HumanPlayer{choices: choices, suggestions: suggestions}
}

// NextGuess prompts until the player plays a sinner. quit exits the
// process; info prints a sinner's attributes and re-prompts.
func (p *HumanPlayer) NextGuess() *game.Sinner {
	for {
		line, err := ReadLine("ptndle >> ", p.suggestions)
		if err != nil {
			if errors.Is(err, ErrAborted) {
				fmt.Fprintln(os.Stderr, "Aborted!")
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "Failed to read line of input: %v\n", err)
			os.Exit(1)
		}
		if line == "quit" {
			os.Exit(0)
		}
		cmd, arg, ok := strings.Cut(line, " ")
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown command: `%s`\n", line)
			continue
		}
		switch cmd {
		case "info":
			sinner := p.find(arg)
			if sinner == nil {
				fmt.Fprintf(os.Stderr, "Unknown Sinner: `%s`\n", arg)
				continue
			}
			fmt.Printf("Name: %s\n", sinner.Name)
			fmt.Printf("Code: %s\n", sinner.CodeString())
			fmt.Printf("Alignment: %s\n", sinner.Alignment)
			fmt.Printf("Tendency: %s\n", sinner.Tendency)
			fmt.Printf("Height: %dcm\n", sinner.Height)
			fmt.Printf("Birthplace: %s\n", sinner.Birthplace)
		case "guess":
			sinner := p.find(arg)
			if sinner == nil {
				fmt.Fprintf(os.Stderr, "Unknown Sinner: `%s`\n", arg)
				continue
			}
			return sinner
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: `%s`\n", cmd)
		}
	}
}

// Update is a no-op; the human sees the rendered hint row.
func (p *HumanPlayer) Update(game.Hint, *game.Sinner) {}

func (p *HumanPlayer) find(name string) *game.Sinner {
	for i := range p.choices {
		if strings.EqualFold(p.choices[i].Name, name) {
			return &p.choices[i]
		}
	}
	return nil
}
