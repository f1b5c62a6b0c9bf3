// internal/game/inverse.go
//
// Inverse predicates: would playing guess against candidate as the secret
// reproduce an observed hint? The forward compare derives its bands from
// the secret, so the inverse solves each bucket's inequalities for the
// candidate value t given the guessed value g. Everything is
// cross-multiplied into integer form; any off-by-one here silently
// eliminates the true target, so every boundary below mirrors Evaluate
// exactly (see the round-trip tests).

package game

// codeMatches reports whether comparing codes with candidate t as the
// secret and g as the guess yields cmp.
//
// Derived from the code bands near = 5 + 0.1·t, far = 50 + 0.35·t applied
// to the distance t − g:
//
//	FarLess:    t < (g − 50) / 1.35
//	Less:       (g − 50) / 1.35 ≤ t ≤ (g − 5) / 1.1
//	Near:       t ≠ g, (g − 5) / 1.1 ≤ t ≤ (g + 5) / 0.9
//	Greater:    (g + 5) · 0.9 < t ≤ (g + 50) / 0.65
//	FarGreater: t > (g + 50) / 0.65
func codeMatches(g, t int, cmp Comparison) bool {
	switch cmp {
	case Correct:
		return t == g
	case FarLess:
		return 27*t < 20*g-1000
	case Less:
		return 27*t >= 20*g-1000 && 22*t <= 20*g-100
	case Near:
		return t != g && 11*t >= 10*g-50 && 9*t <= 10*g+50
	case Greater:
		return 10*t > 9*g+45 && 13*t <= 20*g+1000
	case FarGreater:
		return 13*t > 20*g+1000
	}
	return false
}

// The height bands depend on the secret's distance from the most common
// height, so each bound is piecewise in g: the near crossover sits at
// 168 ± 3 and the far crossover at 168 ± 15. Lower bounds carry a rounding
// bias so the truncating division acts as a ceiling, mirroring the floor on
// the opposite inequality.

func heightBelowUpperNear(g, t int) bool {
	if g <= MostCommonHeight-3 {
		return t <= (10*g+MostCommonHeight+30)/11
	}
	return t <= (10*g-MostCommonHeight+30)/9
}

func heightAboveLowerNear(g, t int) bool {
	if g <= MostCommonHeight+3 {
		return t >= (10*g-MostCommonHeight-30+8)/9
	}
	return t >= (10*g+MostCommonHeight-30+10)/11
}

func heightBelowUpperFar(g, t int) bool {
	if g <= MostCommonHeight-15 {
		return t <= (20*g+7*MostCommonHeight+300)/27
	}
	return t <= (20*g-7*MostCommonHeight+300)/13
}

func heightAboveLowerFar(g, t int) bool {
	if g <= MostCommonHeight+15 {
		return t >= (20*g-7*MostCommonHeight-300+12)/13
	}
	return t >= (20*g+7*MostCommonHeight-300+26)/27
}

// heightMatches reports whether comparing heights with candidate t as the
// secret and g as the guess yields cmp.
func heightMatches(g, t int, cmp Comparison) bool {
	switch cmp {
	case Correct:
		return g == t
	case Near:
		return g != t && heightBelowUpperNear(g, t) && heightAboveLowerNear(g, t)
	case Greater:
		return !heightBelowUpperNear(g, t) && heightBelowUpperFar(g, t)
	case FarGreater:
		return !heightBelowUpperNear(g, t) && !heightBelowUpperFar(g, t)
	case Less:
		return !heightAboveLowerNear(g, t) && heightAboveLowerFar(g, t)
	case FarLess:
		return !heightAboveLowerNear(g, t) && !heightAboveLowerFar(g, t)
	}
	return false
}

// Matches reports whether candidate, as the secret, would have produced h
// in response to playing guess. The categorical cues are plain equality
// checks against the hint bits; code and height go through the inverse
// predicates above.
func Matches(h Hint, guess, candidate *Sinner) bool {
	if (guess.Tendency == candidate.Tendency) != h.Tendency() {
		return false
	}
	if (guess.Alignment == candidate.Alignment) != h.Alignment() {
		return false
	}
	if (guess.Birthplace == candidate.Birthplace) != h.Birthplace() {
		return false
	}
	if code, ok := h.Code(); ok {
		if !guess.HasCode() || !candidate.HasCode() {
			return false
		}
		if !codeMatches(guess.Code, candidate.Code, code) {
			return false
		}
	} else if guess.HasCode() && candidate.HasCode() {
		return false
	}
	return heightMatches(guess.Height, candidate.Height, h.Height())
}
