package game_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinnerdle/ptndle-cli/internal/game"
)

// recordingPlayer wraps the optimal player and remembers the last guess it
// handed to the driver.
type recordingPlayer struct {
	*game.OptimalPlayer
	last *game.Sinner
}

func (p *recordingPlayer) NextGuess() *game.Sinner {
	p.last = p.OptimalPlayer.NextGuess()
	return p.last
}

// The optimal player identifies every possible target, and the last sinner
// it plays is the target itself.
func TestPlayFindsEveryTarget(t *testing.T) {
	sinners := loadRoster(t)
	bound := uint8(len(sinners))

	for i := range sinners {
		target := &sinners[i]
		player := &recordingPlayer{OptimalPlayer: game.NewOptimalPlayer(sinners)}

		var out bytes.Buffer
		guesses := game.Play(&out, target, player)

		require.NotEqual(t, uint8(game.ContradictionGuesses), guesses, "target %s", target.Name)
		assert.GreaterOrEqual(t, guesses, uint8(1))
		assert.LessOrEqual(t, guesses, bound, "target %s", target.Name)
		require.NotNil(t, player.last)
		assert.Equal(t, *target, *player.last, "target %s", target.Name)
		assert.Contains(t, out.String(), fmt.Sprintf("Won! The sinner was %s!", target.Name))
	}
}

func TestPlayReportsContradiction(t *testing.T) {
	sinners := loadRoster(t)
	player := game.NewOptimalPlayer(nil)

	var out bytes.Buffer
	guesses := game.Play(&out, &sinners[0], player)

	assert.Equal(t, uint8(game.ContradictionGuesses), guesses)
	assert.Contains(t, out.String(), "contradiction")
}

func TestGameGuessCounting(t *testing.T) {
	trio := testTrio()
	g := game.NewGame(&trio[0])
	require.Equal(t, uint8(1), g.GuessNum())

	_, won := g.Guess(&trio[1])
	assert.False(t, won)
	assert.Equal(t, uint8(2), g.GuessNum())

	_, won = g.Guess(&trio[0])
	assert.True(t, won)
	assert.Equal(t, uint8(2), g.GuessNum())
}
