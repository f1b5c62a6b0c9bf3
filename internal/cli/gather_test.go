package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherSummarizesEveryTarget(t *testing.T) {
	sinners := testRoster()

	var out bytes.Buffer
	gather(&out, sinners)
	text := out.String()

	// One finished game per roster entry.
	assert.Equal(t, len(sinners), strings.Count(text, "Won! The sinner was"))
	for _, s := range sinners {
		assert.Contains(t, text, "Won! The sinner was "+s.Name+"!")
	}

	assert.Contains(t, text, "Goto first sinner to play: ")
	assert.Contains(t, text, "or less guesses to guess any sinner.")
	assert.Contains(t, text, "The sinners that take the maximum number of guesses rounds are:")
	require.Contains(t, text, "The mean number of guesses is ")
}
