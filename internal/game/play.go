// internal/game/play.go
//
// Game driver for a single Path to Nowordle session.
// Loops guess → hint → update until the target is identified. Used by both
// the interactive game and the batch simulation; the player side is
// polymorphic over Player.

package game

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ContradictionGuesses is the sentinel guess count reported when a player
// runs out of candidates before finding the target.
const ContradictionGuesses = 255

// Game holds the state of a single session.
type Game struct {
	ID       string // correlates log lines across one session
	target   *Sinner
	guessNum uint8
}

// NewGame starts a session against the given target.
func NewGame(target *Sinner) *Game {
	return &Game{
		ID:       uuid.NewString(),
		target:   target,
		guessNum: 1,
	}
}

// GuessNum returns the 1-based number of the current guess.
func (g *Game) GuessNum() uint8 { return g.guessNum }

// Guess plays a sinner against the target. Returns won=true when the played
// sinner is the target (structural equality); otherwise returns the hint
// row and advances the guess counter.
func (g *Game) Guess(s *Sinner) (Hint, bool) {
	if *s == *g.target {
		return 0, true
	}
	h := Evaluate(g.target, s)
	g.guessNum++
	return h, false
}

// Play runs a full game of target against player, writing guesses, hint
// rows and the result banner to w. Returns the number of guesses taken, or
// ContradictionGuesses if the player ran out of candidates.
//
// Every hint row is checked against its own inverse before being fed back
// to the player; a mismatch means the inverse predicates are buggy and is
// not recoverable.
func Play(w io.Writer, target *Sinner, player Player) uint8 {
	g := NewGame(target)
	log.Debug().Str("game_id", g.ID).Str("target", target.Name).Msg("starting game")

	for {
		play := player.NextGuess()
		if play == nil {
			fmt.Fprintln(w, "No possible guesses in this state. There is likely a contradiction.")
			log.Debug().Str("game_id", g.ID).Msg("contradiction")
			return ContradictionGuesses
		}
		fmt.Fprintf(w, "Guessed %s\n", play.Name)
		h, won := g.Guess(play)
		if won {
			fmt.Fprintln(w, renderWinRow())
			fmt.Fprintf(w, "Won! The sinner was %s!\n", target.Name)
			fmt.Fprintf(w, "Won in %d guesses!\n\n", g.GuessNum())
			log.Debug().Str("game_id", g.ID).Uint8("guesses", g.GuessNum()).Msg("won")
			return g.GuessNum()
		}
		fmt.Fprintln(w, h.Render())
		if !Matches(h, play, target) {
			panic(fmt.Sprintf(
				"target %+v does not match its own hint %q for guess %+v; the inverse predicates are buggy",
				target, h.String(), play,
			))
		}
		player.Update(h, play)
	}
}
