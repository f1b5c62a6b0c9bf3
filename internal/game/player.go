// internal/game/player.go
//
// Player capability set and the optimal player.
// Responsibilities:
//   - Player: the two-method capability the driver is polymorphic over.
//   - OptimalPlayer: maintains the surviving candidate set and picks the
//     guess minimizing the expected number of survivors.

package game

// Player is anything the driver can run a game against: the optimal solver
// or a human at a terminal.
type Player interface {
	// NextGuess returns the player's chosen sinner, or nil when the
	// player's state admits no guess (a contradiction).
	NextGuess() *Sinner
	// Update feeds the hint row produced by playing guessed back into the
	// player's state.
	Update(h Hint, guessed *Sinner)
}

// OptimalPlayer guesses sinners by minimizing the mean number of candidates
// remaining after the guess.
//
// The candidate set starts as the full roster and only ever shrinks.
type OptimalPlayer struct {
	candidates []Sinner
}

// NewOptimalPlayer constructs an optimal player over a copy of the roster.
func NewOptimalPlayer(roster []Sinner) *OptimalPlayer {
	candidates := make([]Sinner, len(roster))
	copy(candidates, roster)
	return &OptimalPlayer{candidates: candidates}
}

// Candidates exposes the surviving candidate set in roster order.
func (p *OptimalPlayer) Candidates() []Sinner { return p.candidates }

// Update drops every candidate inconsistent with the observed hint, along
// with the sinner just played. Codes are unique among coded sinners, so the
// code comparison suffices to exclude the guess itself; the NOX pair is
// covered by the hint.
func (p *OptimalPlayer) Update(h Hint, guessed *Sinner) {
	// guessed may point into the candidate set being compacted.
	g := *guessed
	kept := p.candidates[:0]
	for i := range p.candidates {
		c := &p.candidates[i]
		if Matches(h, &g, c) && c.Code != g.Code {
			kept = append(kept, *c)
		}
	}
	p.candidates = kept
}

// NextGuess returns the candidate minimizing the expected size of the
// filtered candidate set over all possible secrets:
//
//	score(g) = (1/|S|) · Σ_{t ∈ S, t ≠ g} |{c ∈ S : Matches(Evaluate(t, g), g, c)}|
//
// The divisor is constant across guesses, so the argmin is taken over the
// integer totals. Ties break to the earliest candidate in set order, which
// keeps the selector deterministic for a given roster order. Returns nil on
// an empty set.
func (p *OptimalPlayer) NextGuess() *Sinner {
	if len(p.candidates) == 0 {
		return nil
	}
	if len(p.candidates) == 1 {
		return &p.candidates[0]
	}
	best := -1
	bestTotal := 0
	for i := range p.candidates {
		g := &p.candidates[i]
		total := 0
		for j := range p.candidates {
			if j == i {
				continue
			}
			h := Evaluate(&p.candidates[j], g)
			for k := range p.candidates {
				if Matches(h, g, &p.candidates[k]) {
					total++
				}
			}
		}
		if best == -1 || total < bestTotal {
			best = i
			bestTotal = total
		}
	}
	return &p.candidates[best]
}
