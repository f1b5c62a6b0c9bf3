package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinnerdle/ptndle-cli/internal/game"
)

func TestParseSingleSinner(t *testing.T) {
	payload := []byte(`[{"name": "Langley", "code": "113", "alignment": "Violence",
		"tendency": "Fury", "height": "183cm", "birthplace": "Syndicate"}]`)
	sinners, err := Parse(payload)
	require.NoError(t, err)
	require.Len(t, sinners, 1)

	assert.Equal(t, game.Sinner{
		Name:       "Langley",
		Code:       113,
		Alignment:  game.AlignmentViolence,
		Tendency:   game.TendencyFury,
		Height:     183,
		Birthplace: game.BirthplaceSyndicate,
	}, sinners[0])
}

func TestParseNonNumericCodeBecomesAbsent(t *testing.T) {
	payload := []byte(`[{"name": "NOX", "code": "NOX", "alignment": "Death",
		"tendency": "Umbra", "height": "175cm", "birthplace": "Other"}]`)
	sinners, err := Parse(payload)
	require.NoError(t, err)
	require.Len(t, sinners, 1)
	assert.False(t, sinners[0].HasCode())
	assert.Equal(t, "NOX", sinners[0].CodeString())
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad json":     `{`,
		"empty roster": `[]`,
		"bad height suffix": `[{"name": "x", "code": "1", "alignment": "Death",
			"tendency": "Umbra", "height": "175", "birthplace": "Other"}]`,
		"non-numeric height": `[{"name": "x", "code": "1", "alignment": "Death",
			"tendency": "Umbra", "height": "tallcm", "birthplace": "Other"}]`,
		"unknown alignment": `[{"name": "x", "code": "1", "alignment": "Gluttony",
			"tendency": "Umbra", "height": "175cm", "birthplace": "Other"}]`,
		"unknown tendency": `[{"name": "x", "code": "1", "alignment": "Death",
			"tendency": "Wrath", "height": "175cm", "birthplace": "Other"}]`,
		"unknown birthplace": `[{"name": "x", "code": "1", "alignment": "Death",
			"tendency": "Umbra", "height": "175cm", "birthplace": "Mars"}]`,
		"duplicate codes": `[
			{"name": "x", "code": "7", "alignment": "Death", "tendency": "Umbra", "height": "175cm", "birthplace": "Other"},
			{"name": "y", "code": "7", "alignment": "Fraud", "tendency": "Fury", "height": "160cm", "birthplace": "Eastside"}]`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(payload))
			assert.Error(t, err)
		})
	}
}

func TestEmbeddedRoster(t *testing.T) {
	sinners, err := Embedded()
	require.NoError(t, err)
	require.NotEmpty(t, sinners)

	// Exactly one codeless entry: the NOX sentinel.
	codeless := 0
	for i := range sinners {
		if !sinners[i].HasCode() {
			codeless++
			assert.Equal(t, "NOX", sinners[i].Name)
		}
	}
	assert.Equal(t, 1, codeless)
}

func TestFindByName(t *testing.T) {
	sinners, err := Embedded()
	require.NoError(t, err)

	s, err := FindByName(sinners, "langley")
	require.NoError(t, err)
	assert.Equal(t, "Langley", s.Name)

	_, err = FindByName(sinners, "nobody")
	assert.Error(t, err)
}
