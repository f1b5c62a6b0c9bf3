package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinnerdle/ptndle-cli/internal/game"
)

func testRoster() []game.Sinner {
	return []game.Sinner{
		{Name: "a", Code: 100, Alignment: game.AlignmentDeath, Tendency: game.TendencyCatalyst, Height: 168, Birthplace: game.BirthplaceOther},
		{Name: "b", Code: 101, Alignment: game.AlignmentFraud, Tendency: game.TendencyArcane, Height: 150, Birthplace: game.BirthplaceSyndicate},
		{Name: "c", Code: 300, Alignment: game.AlignmentDeath, Tendency: game.TendencyCatalyst, Height: 168, Birthplace: game.BirthplaceOther},
	}
}

func TestParseSeeds(t *testing.T) {
	seeds, err := parseSeeds("L.L.:^ 0 0 vv 0,Angell:^^ 0 0 vv 0")
	require.NoError(t, err)
	require.Len(t, seeds, 2)

	assert.Equal(t, "L.L.", seeds[0].name)
	code, ok := seeds[0].hint.Code()
	require.True(t, ok)
	assert.Equal(t, game.Greater, code)
	assert.Equal(t, game.FarLess, seeds[0].hint.Height())

	assert.Equal(t, "Angell", seeds[1].name)
	code, ok = seeds[1].hint.Code()
	require.True(t, ok)
	assert.Equal(t, game.FarGreater, code)
}

func TestParseSeedsErrors(t *testing.T) {
	_, err := parseSeeds("no colon here")
	assert.Error(t, err)

	_, err = parseSeeds("Angell:zz 0 0 vv 0")
	assert.Error(t, err)
}

// Seeding the solver with a hint that identifies the target uniquely makes
// it recommend the target and stop without reading any input.
func TestSolveSeededToUniqueCandidate(t *testing.T) {
	sinners := testRoster()
	secret := &sinners[0] // a
	played := &sinners[1] // b

	seedText := "b:" + game.Evaluate(secret, played).String()
	seeds, err := parseSeeds(seedText)
	require.NoError(t, err)

	var out bytes.Buffer
	err = solve(&out, strings.NewReader(""), seeds, sinners)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Possible Sinners: a")
	assert.Contains(t, out.String(), "Guess a")
	assert.Contains(t, out.String(), "GG! You won.")
}

func TestSolveUnknownSeedName(t *testing.T) {
	seeds, err := parseSeeds("nobody:^ 0 0 vv 0")
	require.NoError(t, err)

	var out bytes.Buffer
	err = solve(&out, strings.NewReader(""), seeds, testRoster())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nobody")
}

// A full scripted session: the solver recommends a guess, the user reports
// the row the website showed, and the candidate set narrows to the target.
func TestSolveScriptedSession(t *testing.T) {
	sinners := testRoster()
	secret := &sinners[2] // c

	player := game.NewOptimalPlayer(sinners)
	first := player.NextGuess()
	require.NotNil(t, first)
	row := game.Evaluate(secret, first).String()

	var out bytes.Buffer
	err := solve(&out, strings.NewReader(row+"\n"), nil, sinners)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "GG! You won.")
	assert.Contains(t, out.String(), "Guess "+secret.Name)
}
