// internal/game/types.go
//
// Core type definitions for the Path to Nowordle engine.
// Defines:
//   - Alignment, Tendency, Birthplace: closed categorical attributes.
//   - Sinner: one roster entry, immutable once constructed.
//
// Sinners are compared structurally; the struct is kept comparable on
// purpose so the driver can test for a win with ==.

package game

import "fmt"

// MostCommonHeight is the reference height (cm) around which the height
// comparison bands widen.
const MostCommonHeight = 168

// CodeNone marks the one sinner (NOX) whose code is not numeric.
const CodeNone = -1

// Alignment is a sinner's alignment. Compared only for equality.
type Alignment uint8

const (
	AlignmentDeath Alignment = iota
	AlignmentFraud
	AlignmentLimbo
	AlignmentAnger
	AlignmentLove
	AlignmentGreed
	AlignmentHeresy
	AlignmentSloth
	AlignmentPestilence
	AlignmentImmortal
	AlignmentFamine
	AlignmentViolence
	AlignmentTreachery
)

var alignmentNames = map[string]Alignment{
	"Death":      AlignmentDeath,
	"Fraud":      AlignmentFraud,
	"Limbo":      AlignmentLimbo,
	"Anger":      AlignmentAnger,
	"Love":       AlignmentLove,
	"Greed":      AlignmentGreed,
	"Heresy":     AlignmentHeresy,
	"Sloth":      AlignmentSloth,
	"Pestilence": AlignmentPestilence,
	"Immortal":   AlignmentImmortal,
	"Famine":     AlignmentFamine,
	"Violence":   AlignmentViolence,
	"Treachery":  AlignmentTreachery,
}

// ParseAlignment maps an enum name string to its Alignment.
func ParseAlignment(s string) (Alignment, error) {
	a, ok := alignmentNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown alignment %q", s)
	}
	return a, nil
}

func (a Alignment) String() string {
	for name, v := range alignmentNames {
		if v == a {
			return name
		}
	}
	return fmt.Sprintf("Alignment(%d)", uint8(a))
}

// Tendency is a sinner's combat tendency. Compared only for equality.
type Tendency uint8

const (
	TendencyCatalyst Tendency = iota
	TendencyArcane
	TendencyEndura
	TendencyFury
	TendencyReticle
	TendencyUmbra
)

var tendencyNames = map[string]Tendency{
	"Catalyst": TendencyCatalyst,
	"Arcane":   TendencyArcane,
	"Endura":   TendencyEndura,
	"Fury":     TendencyFury,
	"Reticle":  TendencyReticle,
	"Umbra":    TendencyUmbra,
}

// ParseTendency maps an enum name string to its Tendency.
func ParseTendency(s string) (Tendency, error) {
	t, ok := tendencyNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown tendency %q", s)
	}
	return t, nil
}

func (t Tendency) String() string {
	for name, v := range tendencyNames {
		if v == t {
			return name
		}
	}
	return fmt.Sprintf("Tendency(%d)", uint8(t))
}

// Birthplace is a sinner's place of origin. Compared only for equality.
type Birthplace uint8

const (
	BirthplaceOther Birthplace = iota
	BirthplaceSyndicate
	BirthplaceEastside
)

var birthplaceNames = map[string]Birthplace{
	"Other":     BirthplaceOther,
	"Syndicate": BirthplaceSyndicate,
	"Eastside":  BirthplaceEastside,
}

// ParseBirthplace maps an enum name string to its Birthplace.
func ParseBirthplace(s string) (Birthplace, error) {
	b, ok := birthplaceNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown birthplace %q", s)
	}
	return b, nil
}

func (b Birthplace) String() string {
	for name, v := range birthplaceNames {
		if v == b {
			return name
		}
	}
	return fmt.Sprintf("Birthplace(%d)", uint8(b))
}

// Sinner is one character in the roster.
type Sinner struct {
	Name string
	// Code is the sinner's numeric code, or CodeNone for the single
	// non-numeric entry (NOX).
	Code       int
	Alignment  Alignment
	Tendency   Tendency
	Height     int // centimetres
	Birthplace Birthplace
}

// HasCode reports whether the sinner has a numeric code.
func (s *Sinner) HasCode() bool { return s.Code != CodeNone }

// CodeString renders the code for display, using the NOX literal for the
// codeless entry.
func (s *Sinner) CodeString() string {
	if !s.HasCode() {
		return "NOX"
	}
	return fmt.Sprintf("%d", s.Code)
}
