// internal/game/compare.go
//
// Forward comparison engine.
// Responsibilities:
//   - Comparison: the six-valued ordinal hint for a numeric axis.
//   - Threshold: per-target near/far bands in twentieths of a unit.
//   - Evaluate: score a guess against a secret, producing a packed Hint.
//
// The web game computes bands in floating point (near = 5 + 0.1·code,
// far = 50 + 0.35·code for codes; near = 3 + 0.1·d, far = 15 + 0.35·d with
// d = |height − 168| for heights). All inputs are small integers and every
// band constant is a multiple of 0.05, so the bands are held here scaled by
// 20 (0.1 → 2, 0.35 → 7) and compared against 20·(target − guess). That
// keeps every tie point exact.

package game

// Comparison describes how a target value relates to a guessed value on a
// numeric axis, quantized by the target's near/far bands.
type Comparison uint8

const (
	Correct Comparison = iota
	FarLess
	Less
	Near
	Greater
	FarGreater
)

// Token returns the textual input form of the comparison as typed by a
// solve user.
func (c Comparison) Token() string {
	switch c {
	case Correct:
		return "="
	case FarLess:
		return "vv"
	case Less:
		return "v"
	case Near:
		return "~"
	case Greater:
		return "^"
	case FarGreater:
		return "^^"
	}
	return "?"
}

// Glyph returns the two-column visual form of the comparison as shown in
// hint rows.
func (c Comparison) Glyph() string {
	switch c {
	case Correct:
		return " ="
	case FarLess:
		return "↓↓"
	case Less:
		return " ↓"
	case Near:
		return " ≅"
	case Greater:
		return " ↑"
	case FarGreater:
		return "↑↑"
	}
	return " ?"
}

func (c Comparison) String() string { return c.Token() }

// Threshold holds a target's near/far band half-widths, scaled by 20.
// Invariant: 0 < Near < Far.
type Threshold struct {
	Near int
	Far  int
}

// codeThreshold derives the code bands for a target with the given code.
func codeThreshold(code int) Threshold {
	return Threshold{Near: 100 + 2*code, Far: 1000 + 7*code}
}

// heightThreshold derives the height bands for a target with the given
// height. Bands widen with distance from the most common height.
func heightThreshold(height int) Threshold {
	d := height - MostCommonHeight
	if d < 0 {
		d = -d
	}
	return Threshold{Near: 60 + 2*d, Far: 300 + 7*d}
}

// Compare buckets target relative to guess. Ties on a band edge fall into
// the looser bucket: a distance exactly equal to Far is Greater, not
// FarGreater.
func (t Threshold) Compare(target, guess int) Comparison {
	if target == guess {
		return Correct
	}
	d := 20 * (target - guess)
	switch {
	case d > t.Far:
		return FarGreater
	case d > t.Near:
		return Greater
	case d < -t.Far:
		return FarLess
	case d < -t.Near:
		return Less
	}
	return Near
}

// Evaluate scores guess against the secret target, producing the packed
// hint row the web game would show.
//
// The code comparison is present when both sinners carry numeric codes, and
// also (as Correct) when neither does, so the codeless NOX entry can still
// be guessed. A codeless sinner on exactly one side yields an absent code
// comparison.
func Evaluate(target, guess *Sinner) Hint {
	codeCmp := Correct
	codeValid := false
	switch {
	case target.HasCode() && guess.HasCode():
		codeCmp = codeThreshold(target.Code).Compare(target.Code, guess.Code)
		codeValid = true
	case !target.HasCode() && !guess.HasCode():
		codeCmp = Correct
		codeValid = true
	}
	heightCmp := heightThreshold(target.Height).Compare(target.Height, guess.Height)
	return NewHint(
		codeCmp, codeValid,
		target.Alignment == guess.Alignment,
		target.Tendency == guess.Tendency,
		heightCmp,
		target.Birthplace == guess.Birthplace,
	)
}
