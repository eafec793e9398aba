package parsekit

import (
	"fmt"
	"regexp"
)

// Pattern is a compiled regular expression paired with a human-readable
// description used in failure messages. It plays the role the teacher's
// Pattern tree played for rendering match failures, pared down to the
// regex-driven primitives this kernel is built from.
type Pattern struct {
	re   *regexp.Regexp
	desc string
}

func (pat *Pattern) String() string {
	return pat.desc
}

// Re compiles an arbitrary regular expression into a Pattern. The
// expression is used exactly as given; it need not (and should not)
// contain an explicit anchor, since every match attempt is already
// anchored at the parser's cursor.
func Re(expr string) *Pattern {
	return &Pattern{re: regexp.MustCompile(expr), desc: expr}
}

// Lit builds a Pattern that matches text literally, regex-escaping it
// first. This is the normalisation the spec calls for wherever a
// combinator or token reader accepts "a literal string or a regex".
func Lit(text string) *Pattern {
	return &Pattern{re: regexp.MustCompile(regexp.QuoteMeta(text)), desc: fmt.Sprintf("%q", text)}
}

// reOf returns pat's compiled regex, or nil for a nil Pattern; the caller
// decides what a missing pattern means (ListOf substitutes emptySep).
func reOf(pat *Pattern) *regexp.Regexp {
	if pat == nil {
		return nil
	}
	return pat.re
}
