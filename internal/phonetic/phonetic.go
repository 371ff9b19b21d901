// Package phonetic handles zhuyin (bopomofo) annotations embedded in
// generated text. An annotated character is written as the character
// followed by its reading in parentheses, e.g. "國(ㄍㄨㄛˊ)".
package phonetic

import (
	"strings"
	"unicode"
)

// Tone marks. The first tone has no mark.
const (
	ToneRising  = 'ˊ'
	ToneDipping = 'ˇ'
	ToneFalling = 'ˋ'
	ToneNeutral = '˙'
)

// Segment is a run of plain text or a single annotated character.
type Segment struct {
	// Text is the plain text, or the annotated character.
	Text string

	// Reading is the bopomofo symbols without the tone mark. Empty for
	// plain text.
	Reading string

	// Tone is the tone mark, or 0 for the first tone and plain text.
	Tone rune
}

// Annotated reports whether the segment carries a reading.
func (s Segment) Annotated() bool {
	return s.Reading != ""
}

// Ruby returns the full reading with the tone mark in its written position:
// the neutral tone comes first, other tones last.
func (s Segment) Ruby() string {
	switch s.Tone {
	case 0:
		return s.Reading
	case ToneNeutral:
		return string(s.Tone) + s.Reading
	default:
		return s.Reading + string(s.Tone)
	}
}

func isTone(r rune) bool {
	return r == ToneRising || r == ToneDipping || r == ToneFalling || r == ToneNeutral
}

func isSymbol(r rune) bool {
	return r >= 'ㄅ' && r <= 'ㄩ'
}

func isOpen(r rune) bool  { return r == '(' || r == '（' }
func isClose(r rune) bool { return r == ')' || r == '）' }

// reading scans an annotation starting at rs[i], which must be an opening
// parenthesis. It returns the symbols, the tone and the index just past the
// closing parenthesis. ok is false if rs[i:] is not an annotation.
func reading(rs []rune, i int) (symbols string, tone rune, next int, ok bool) {
	var b strings.Builder
	for j := i + 1; j < len(rs); j++ {
		r := rs[j]
		switch {
		case isClose(r):
			if b.Len() == 0 {
				return "", 0, 0, false
			}
			return b.String(), tone, j + 1, true
		case isSymbol(r):
			b.WriteRune(r)
		case isTone(r):
			if tone == 0 {
				tone = r
			}
		case r == ' ':
		default:
			return "", 0, 0, false
		}
	}
	return "", 0, 0, false
}

// Parse splits text into plain runs and annotated characters. Parentheses
// that do not hold a valid reading after a Han character stay plain text.
func Parse(text string) []Segment {
	rs := []rune(text)
	var out []Segment
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			out = append(out, Segment{Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if unicode.Is(unicode.Han, r) && i+1 < len(rs) && isOpen(rs[i+1]) {
			if sym, tone, next, ok := reading(rs, i+1); ok {
				flush()
				out = append(out, Segment{Text: string(r), Reading: sym, Tone: tone})
				i = next - 1
				continue
			}
		}
		plain.WriteRune(r)
	}
	flush()
	return out
}

// Strip removes every reading and returns the bare text.
func Strip(text string) string {
	var b strings.Builder
	for _, seg := range Parse(text) {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Format rewrites every annotated character with annotate. Plain text is
// copied unchanged.
func Format(text string, annotate func(char, ruby string) string) string {
	var b strings.Builder
	for _, seg := range Parse(text) {
		if seg.Annotated() {
			b.WriteString(annotate(seg.Text, seg.Ruby()))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// HasReadings reports whether text contains at least one annotation.
func HasReadings(text string) bool {
	for _, seg := range Parse(text) {
		if seg.Annotated() {
			return true
		}
	}
	return false
}
