package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholdCompareBuckets(t *testing.T) {
	// Code bands for a secret with code 100: near = 15, far = 85
	// (held scaled by 20: 300 and 1700).
	th := codeThreshold(100)
	require.Equal(t, Threshold{Near: 300, Far: 1700}, th)

	assert.Equal(t, Correct, th.Compare(100, 100))
	assert.Equal(t, Near, th.Compare(100, 95))
	assert.Equal(t, Greater, th.Compare(100, 50))
	assert.Equal(t, FarGreater, th.Compare(100, 10))
	assert.Equal(t, Less, th.Compare(100, 140))
	assert.Equal(t, FarLess, th.Compare(100, 300))
}

func TestThresholdCompareEdgeTies(t *testing.T) {
	th := codeThreshold(100)

	// A distance exactly on the far edge (85) falls into the looser
	// Greater bucket, not FarGreater.
	assert.Equal(t, Greater, th.Compare(100, 15))
	assert.Equal(t, FarGreater, th.Compare(100, 14))
	assert.Equal(t, Less, th.Compare(100, 185))
	assert.Equal(t, FarLess, th.Compare(100, 186))

	// A distance exactly on the near edge (15) is still Near.
	assert.Equal(t, Near, th.Compare(100, 85))
	assert.Equal(t, Greater, th.Compare(100, 84))
	assert.Equal(t, Near, th.Compare(100, 115))
	assert.Equal(t, Less, th.Compare(100, 116))
}

func TestHeightThresholdWidensWithDistance(t *testing.T) {
	// At the most common height the bands are the base 3/15.
	assert.Equal(t, Threshold{Near: 60, Far: 300}, heightThreshold(MostCommonHeight))
	// d = 8 on either side: near = 3.8, far = 17.8.
	assert.Equal(t, Threshold{Near: 76, Far: 356}, heightThreshold(160))
	assert.Equal(t, Threshold{Near: 76, Far: 356}, heightThreshold(176))
}

func TestEvaluateFarApart(t *testing.T) {
	// target code 10 height 160 vs guess code 200 height 180:
	// code distance −190 is beyond far = 53.5, height distance −20 is
	// beyond far = 17.8.
	target := &Sinner{Name: "a", Code: 10, Height: 160}
	guess := &Sinner{Name: "b", Code: 200, Height: 180}
	h := Evaluate(target, guess)

	code, ok := h.Code()
	require.True(t, ok)
	assert.Equal(t, FarLess, code)
	assert.Equal(t, FarLess, h.Height())
	assert.True(t, h.Alignment())
	assert.True(t, h.Tendency())
	assert.True(t, h.Birthplace())
}

func TestEvaluateCodelessSides(t *testing.T) {
	nox := &Sinner{Name: "NOX", Code: CodeNone, Height: 175}
	coded := &Sinner{Name: "c", Code: 113, Height: 175}

	// Both codeless: the code slot is present and Correct so NOX can be
	// guessed.
	h := Evaluate(nox, nox)
	code, ok := h.Code()
	require.True(t, ok)
	assert.Equal(t, Correct, code)
	assert.Equal(t, Correct, h.Height())

	// Exactly one side codeless: the code slot is absent.
	for _, pair := range [][2]*Sinner{{nox, coded}, {coded, nox}} {
		h := Evaluate(pair[0], pair[1])
		_, ok := h.Code()
		assert.False(t, ok)
	}
}
