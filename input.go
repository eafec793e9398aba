package parsekit

import "regexp"

// inputBuffer owns the mutable input text and the cursor, measured in bytes
// from the start of text. The cursor moves forward on every successful
// match and is restored only by code that owns a snapshot of it: a
// combinator (Parser.Pos/Parser.SetPos) or a token reader undoing its own
// partial match.
type inputBuffer struct {
	text   string
	cursor int
	pcalc  positionCalculator
}

func newInputBuffer(text string) *inputBuffer {
	return &inputBuffer{text: text, pcalc: positionCalculator{text: text}}
}

// matchAt attempts pat anchored exactly at the cursor. On success it
// advances the cursor past the match and returns the full match plus any
// parenthesised capture groups, in input order.
func (buf *inputBuffer) matchAt(re *regexp.Regexp) (matched string, groups []string, ok bool) {
	loc := re.FindStringSubmatchIndex(buf.text[buf.cursor:])
	if loc == nil || loc[0] != 0 {
		return "", nil, false
	}
	matched = buf.text[buf.cursor : buf.cursor+loc[1]]
	if n := len(loc) / 2; n > 1 {
		groups = make([]string, n-1)
		for i := 1; i < n; i++ {
			lo, hi := loc[2*i], loc[2*i+1]
			if lo < 0 {
				continue
			}
			groups[i-1] = buf.text[buf.cursor+lo : buf.cursor+hi]
		}
	}
	buf.cursor += loc[1]
	return matched, groups, true
}

// peekAt is matchAt without consuming the match.
func (buf *inputBuffer) peekAt(re *regexp.Regexp) bool {
	loc := re.FindStringIndex(buf.text[buf.cursor:])
	return loc != nil && loc[0] == 0
}

func (buf *inputBuffer) position() int {
	return buf.cursor
}

func (buf *inputBuffer) setPosition(p int) {
	buf.cursor = p
}

func (buf *inputBuffer) atEndOfText() bool {
	return buf.cursor >= len(buf.text)
}

// where computes the 1-based line and 0-based column at the cursor. The
// full text of that line comes from lineText.
func (buf *inputBuffer) where() Position {
	return buf.pcalc.calculate(buf.cursor)
}

func (buf *inputBuffer) lineText(offset int) string {
	start, stop := buf.pcalc.lineBounds(offset)
	return buf.text[start:stop]
}

// append appends more text without moving the cursor. Only the Skipper
// calls this, and only while resolved to be sitting on whitespace, since
// that is the only position guaranteed not to split a token in half.
func (buf *inputBuffer) append(more string) {
	buf.text += more
	buf.pcalc.text = buf.text
}
