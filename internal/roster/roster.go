// internal/roster/roster.go
//
// Roster parsing and validation.
//
// Responsibilities:
//   - Decode the roster JSON (an array of all-string records as published
//     by the web game) into game.Sinner values.
//   - Validate the loaded roster: codes must be unique among coded sinners
//     because the candidate filter relies on code inequality to exclude the
//     sinner just played.
//   - Carry an embedded fallback copy so the tool works offline.
//
// Record shape:
//   {"name": ..., "code": "113" | "NOX", "alignment": ..., "tendency": ...,
//    "height": "172cm", "birthplace": ...}
//
// A code that fails integer parsing becomes the absent code; NOX is the
// only such entry in practice.

package roster

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sinnerdle/ptndle-cli/internal/game"
)

//go:embed sinners.json
var embeddedSinners []byte

// Embedded parses the bundled roster copy. It is the last resort of the
// fallback chain and the fixed roster used by the engine tests.
func Embedded() ([]game.Sinner, error) {
	return Parse(embeddedSinners)
}

// rawSinner is the on-the-wire record; every field is a string.
type rawSinner struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	Alignment  string `json:"alignment"`
	Tendency   string `json:"tendency"`
	Height     string `json:"height"`
	Birthplace string `json:"birthplace"`
}

func (r rawSinner) toSinner() (game.Sinner, error) {
	code := game.CodeNone
	if v, err := strconv.Atoi(r.Code); err == nil && v >= 0 && v <= 65535 {
		code = v
	}
	heightText, ok := strings.CutSuffix(r.Height, "cm")
	if !ok {
		return game.Sinner{}, fmt.Errorf("sinner %q: invalid height %q", r.Name, r.Height)
	}
	height, err := strconv.Atoi(heightText)
	if err != nil || height < 1 || height > 255 {
		return game.Sinner{}, fmt.Errorf("sinner %q: invalid height %q", r.Name, r.Height)
	}
	alignment, err := game.ParseAlignment(r.Alignment)
	if err != nil {
		return game.Sinner{}, fmt.Errorf("sinner %q: %w", r.Name, err)
	}
	tendency, err := game.ParseTendency(r.Tendency)
	if err != nil {
		return game.Sinner{}, fmt.Errorf("sinner %q: %w", r.Name, err)
	}
	birthplace, err := game.ParseBirthplace(r.Birthplace)
	if err != nil {
		return game.Sinner{}, fmt.Errorf("sinner %q: %w", r.Name, err)
	}
	return game.Sinner{
		Name:       r.Name,
		Code:       code,
		Alignment:  alignment,
		Tendency:   tendency,
		Height:     height,
		Birthplace: birthplace,
	}, nil
}

// Parse decodes and validates a roster JSON payload. The returned slice
// preserves the payload's order; the selector's tie-break depends on it.
func Parse(payload []byte) ([]game.Sinner, error) {
	var raw []rawSinner
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("roster is empty")
	}
	sinners := make([]game.Sinner, 0, len(raw))
	for _, r := range raw {
		s, err := r.toSinner()
		if err != nil {
			return nil, err
		}
		sinners = append(sinners, s)
	}
	if err := validate(sinners); err != nil {
		return nil, err
	}
	return sinners, nil
}

// validate enforces code uniqueness and warns when the codeless-entry count
// is not exactly one.
func validate(sinners []game.Sinner) error {
	seen := make(map[int]string, len(sinners))
	codeless := 0
	for i := range sinners {
		s := &sinners[i]
		if !s.HasCode() {
			codeless++
			continue
		}
		if prev, dup := seen[s.Code]; dup {
			return fmt.Errorf("duplicate code %d shared by %q and %q", s.Code, prev, s.Name)
		}
		seen[s.Code] = s.Name
	}
	if codeless != 1 {
		log.Warn().Int("count", codeless).Msg("expected exactly one codeless sinner in the roster")
	}
	return nil
}

// FindByName looks a sinner up case-insensitively.
func FindByName(sinners []game.Sinner, name string) (*game.Sinner, error) {
	for i := range sinners {
		if strings.EqualFold(sinners[i].Name, name) {
			return &sinners[i], nil
		}
	}
	return nil, fmt.Errorf("no sinner with name %q found", name)
}
