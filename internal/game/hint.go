// internal/game/hint.go
//
// Packed hint rows.
// A Hint is the row of five cues produced by one guess against the secret:
// code comparison (optional), alignment match, tendency match, height
// comparison, birthplace match. The packed uint16 is the single source of
// truth; accessors derive fields by mask+shift and two hints are equal iff
// their words are equal.
//
// Bit layout:
//   0..3  code comparison (valid only when bit 7 is set)
//   3..6  height comparison
//   6     alignment match
//   7     code comparison present
//   8     tendency match
//   9     birthplace match

package game

import (
	"fmt"
	"strings"
)

// Hint is a packed hint row.
type Hint uint16

const (
	heightOffset     = 3
	alignOffset      = 6
	codeValidOffset  = 7
	tendencyOffset   = 8
	birthplaceOffset = 9
	cmpBits          = 0b111
)

// NewHint packs a hint row. codeValid reports whether the code comparison
// slot is present; when it is false the code bits stay zero.
func NewHint(code Comparison, codeValid bool, alignment, tendency bool, height Comparison, birthplace bool) Hint {
	var data uint16
	if codeValid {
		data = 1<<codeValidOffset | uint16(code)
	}
	data |= uint16(height) << heightOffset
	if alignment {
		data |= 1 << alignOffset
	}
	if tendency {
		data |= 1 << tendencyOffset
	}
	if birthplace {
		data |= 1 << birthplaceOffset
	}
	return Hint(data)
}

// Code returns the code comparison and whether it is present.
func (h Hint) Code() (Comparison, bool) {
	if h&(1<<codeValidOffset) == 0 {
		return 0, false
	}
	return Comparison(h & cmpBits), true
}

// Height returns the height comparison. Always present.
func (h Hint) Height() Comparison {
	return Comparison((h >> heightOffset) & cmpBits)
}

// Alignment reports whether the guess matched the secret's alignment.
func (h Hint) Alignment() bool { return h&(1<<alignOffset) != 0 }

// Tendency reports whether the guess matched the secret's tendency.
func (h Hint) Tendency() bool { return h&(1<<tendencyOffset) != 0 }

// Birthplace reports whether the guess matched the secret's birthplace.
func (h Hint) Birthplace() bool { return h&(1<<birthplaceOffset) != 0 }

// String renders the hint in its textual input form: five whitespace
// separated tokens in the order code alignment tendency height birthplace.
// The output re-parses to the same packed word.
func (h Hint) String() string {
	var b strings.Builder
	if code, ok := h.Code(); ok {
		b.WriteString(code.Token())
	} else {
		b.WriteString("x")
	}
	b.WriteByte(' ')
	b.WriteString(boolToken(h.Alignment()))
	b.WriteByte(' ')
	b.WriteString(boolToken(h.Tendency()))
	b.WriteByte(' ')
	b.WriteString(h.Height().Token())
	b.WriteByte(' ')
	b.WriteString(boolToken(h.Birthplace()))
	return b.String()
}

func boolToken(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// ParseHint parses the textual form of a hint row.
//
// Comparison tokens: = vv v ~ ^ ^^, plus x for an absent code comparison
// (only valid in the code slot). Boolean tokens: one of y Y t T 1 for true,
// n N f F 0 for false.
func ParseHint(s string) (Hint, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 5 {
		return 0, fmt.Errorf("invalid hint %q: want 5 tokens, got %d", s, len(fields))
	}
	code, codeValid, err := parseComparisonToken(fields[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hint %q: code: %w", s, err)
	}
	alignment, err := parseBoolToken(fields[1])
	if err != nil {
		return 0, fmt.Errorf("invalid hint %q: alignment: %w", s, err)
	}
	tendency, err := parseBoolToken(fields[2])
	if err != nil {
		return 0, fmt.Errorf("invalid hint %q: tendency: %w", s, err)
	}
	height, heightValid, err := parseComparisonToken(fields[3])
	if err != nil {
		return 0, fmt.Errorf("invalid hint %q: height: %w", s, err)
	}
	if !heightValid {
		return 0, fmt.Errorf("invalid hint %q: height comparison cannot be absent", s)
	}
	birthplace, err := parseBoolToken(fields[4])
	if err != nil {
		return 0, fmt.Errorf("invalid hint %q: birthplace: %w", s, err)
	}
	return NewHint(code, codeValid, alignment, tendency, height, birthplace), nil
}

// parseComparisonToken parses one comparison token. The second return is
// false for the absent marker x.
func parseComparisonToken(tok string) (Comparison, bool, error) {
	switch tok {
	case "x", "X":
		return 0, false, nil
	case "=":
		return Correct, true, nil
	case "vv":
		return FarLess, true, nil
	case "v":
		return Less, true, nil
	case "~":
		return Near, true, nil
	case "^":
		return Greater, true, nil
	case "^^":
		return FarGreater, true, nil
	}
	return 0, false, fmt.Errorf("unknown comparison token %q", tok)
}

func parseBoolToken(tok string) (bool, error) {
	if len(tok) != 1 {
		return false, fmt.Errorf("unknown boolean token %q", tok)
	}
	switch tok[0] {
	case 'y', 'Y', 't', 'T', '1':
		return true, nil
	case 'n', 'N', 'f', 'F', '0':
		return false, nil
	}
	return false, fmt.Errorf("unknown boolean token %q", tok)
}
