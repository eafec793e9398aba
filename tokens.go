package parsekit

import (
	"fmt"
	"regexp"
	"strconv"
)

var signPattern = regexp.MustCompile(`-`)

// Number is the result of TokenNumber: whichever of float or integer
// actually matched, so a caller never loses integer precision to a
// float64 round-trip just because the grammar wasn't sure in advance
// which shape it was parsing.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

// Expect matches pat anchored at the cursor (after skipping
// whitespace/comments), returning the text it consumed. It fails if the
// parser is at an implicit end of input or pat does not match.
func (p *Parser) Expect(pat *Pattern) (string, error) {
	text, _, err := p.ExpectCaptures(pat)
	return text, err
}

// ExpectCaptures is Expect, additionally returning pat's parenthesised
// capture groups in input order.
func (p *Parser) ExpectCaptures(pat *Pattern) (string, []string, error) {
	if p.AtEOS() {
		return "", nil, p.Fail(fmt.Sprintf("Expected %s", pat))
	}
	text, groups, ok := p.buf.matchAt(pat.re)
	if !ok {
		return "", nil, p.Fail(fmt.Sprintf("Expected %s", pat))
	}
	return text, groups, nil
}

// MaybeExpect is Expect without ever raising a recoverable failure: a
// mismatch simply reports ok=false with the cursor back where it was on
// entry (any whitespace/comments skipped before the attempt included), as
// Maybe around Expect would leave it, so no caller-side snapshot/restore
// is required.
func (p *Parser) MaybeExpect(pat *Pattern) (string, bool) {
	snapshot := p.buf.position()
	if p.AtEOS() {
		p.buf.setPosition(snapshot)
		return "", false
	}
	text, _, ok := p.buf.matchAt(pat.re)
	if !ok {
		p.buf.setPosition(snapshot)
	}
	return text, ok
}

// SubstringBefore does not skip whitespace. It consumes and returns the
// maximal prefix up to (but excluding) the next occurrence of pat; if pat
// never matches before end-of-text or before the innermost active scope's
// closer, it consumes up to that boundary instead. Returning "" is not a
// failure.
func (p *Parser) SubstringBefore(pat *Pattern) (string, error) {
	rest := p.buf.text[p.buf.cursor:]
	boundary := len(rest)
	if pat != nil {
		if loc := pat.re.FindStringIndex(rest); loc != nil && loc[0] < boundary {
			boundary = loc[0]
		}
	}
	if closer := p.scopes.top(); closer != nil {
		if loc := closer.FindStringIndex(rest); loc != nil && loc[0] < boundary {
			boundary = loc[0]
		}
	}
	text := rest[:boundary]
	p.buf.cursor += boundary
	return text, nil
}

// TokenInt matches an optional leading '-' followed by the configured int
// pattern (hex "0x...", octal "0..." or, if enabled, "0o...", decimal
// otherwise), returning the signed value.
func (p *Parser) TokenInt() (int64, error) {
	if p.AtEOS() {
		return 0, p.Fail("Expected integer")
	}
	snapshot := p.buf.position()
	neg := false
	if _, _, ok := p.buf.matchAt(signPattern); ok {
		neg = true
	}
	text, _, ok := p.buf.matchAt(p.patterns.Int.re)
	if !ok {
		p.buf.setPosition(snapshot)
		return 0, p.Fail("Expected integer")
	}
	val, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		p.buf.setPosition(snapshot)
		return 0, p.Fail("Expected integer")
	}
	if neg {
		val = -val
	}
	return val, nil
}

// TokenFloat matches the configured float pattern, which already bundles
// its own optional sign.
func (p *Parser) TokenFloat() (float64, error) {
	if p.AtEOS() {
		return 0, p.Fail("Expected float")
	}
	text, _, ok := p.buf.matchAt(p.patterns.Float.re)
	if !ok {
		return 0, p.Fail("Expected float")
	}
	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, p.Fail("Expected float")
	}
	return val, nil
}

// TokenNumber tries TokenFloat first, falling back to the equivalent of
// TokenInt, so that a decimal point or exponent always wins over a
// coincidentally-int-shaped prefix.
func (p *Parser) TokenNumber() (Number, error) {
	if p.AtEOS() {
		return Number{}, p.Fail("Expected number")
	}
	snapshot := p.buf.position()

	if text, _, ok := p.buf.matchAt(p.patterns.Float.re); ok {
		val, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.buf.setPosition(snapshot)
			return Number{}, p.Fail("Expected number")
		}
		return Number{IsFloat: true, Float: val}, nil
	}

	neg := false
	if _, _, ok := p.buf.matchAt(signPattern); ok {
		neg = true
	}
	text, _, ok := p.buf.matchAt(p.patterns.Int.re)
	if !ok {
		p.buf.setPosition(snapshot)
		return Number{}, p.Fail("Expected number")
	}
	val, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		p.buf.setPosition(snapshot)
		return Number{}, p.Fail("Expected number")
	}
	if neg {
		val = -val
	}
	return Number{Int: val}, nil
}

// TokenString matches an opening string_delim character, a body
// tolerating backslash escapes, and the same delimiter character closing
// it, returning the decoded body. See decodeStringBody for the supported
// escapes.
func (p *Parser) TokenString() (string, error) {
	if p.AtEOS() {
		return "", p.Fail("Expected string delimiter")
	}
	snapshot := p.buf.position()

	delim, _, ok := p.buf.matchAt(p.patterns.StringDelim.re)
	if !ok {
		return "", p.Fail("Expected string delimiter")
	}

	_, groups, ok := p.buf.matchAt(stringBodyPattern(delim))
	if !ok {
		p.buf.setPosition(snapshot)
		return "", p.Fail("Unterminated string")
	}

	var body string
	if len(groups) > 0 {
		body = groups[0]
	}
	return decodeStringBody(body)
}

func stringBodyPattern(delim string) *regexp.Regexp {
	q := regexp.QuoteMeta(delim)
	return regexp.MustCompile(`(?s)((?:\\.|[^` + q + `\\])*)` + q)
}

// matchIdentCandidate matches the configured ident pattern and, if it is
// still the framework default, trims the match down to the longest prefix
// whose runes are valid Unicode identifier characters (see
// validateIdentRunes). Assumes the caller already ruled out AtEOS.
func (p *Parser) matchIdentCandidate() (string, bool) {
	text, _, ok := p.buf.matchAt(p.patterns.Ident.re)
	if !ok {
		return "", false
	}
	if !p.patterns.identIsDefault {
		return text, true
	}

	trimmed := validateIdentRunes(text)
	if trimmed == "" {
		p.buf.setPosition(p.buf.position() - len(text))
		return "", false
	}
	if trimmed != text {
		p.buf.setPosition(p.buf.position() - (len(text) - len(trimmed)))
	}
	return trimmed, true
}

// TokenIdent matches the configured ident pattern.
func (p *Parser) TokenIdent() (string, error) {
	if p.AtEOS() {
		return "", p.Fail("Expected identifier")
	}
	text, ok := p.matchIdentCandidate()
	if !ok {
		return "", p.Fail("Expected identifier")
	}
	return text, nil
}

// TokenKeyword matches an identifier and requires it to be one of
// keywords, restoring the cursor to before the identifier if it is not.
func (p *Parser) TokenKeyword(keywords ...string) (string, error) {
	if p.AtEOS() {
		return "", p.Fail("Expected keyword")
	}
	snapshot := p.buf.position()

	text, ok := p.matchIdentCandidate()
	if !ok {
		return "", p.Fail("Expected keyword")
	}
	for _, kw := range keywords {
		if kw == text {
			return text, nil
		}
	}
	p.buf.setPosition(snapshot)
	return "", p.Fail("Expected keyword")
}

// GenericToken matches pat anchored at the cursor and runs convert over
// the matched text. A non-nil error from convert is never wrapped as a
// recoverable Failure: per the spec's error model, any error raised by
// user code besides a regex mismatch is fatal.
func GenericToken[T any](p *Parser, name string, pat *Pattern, convert func(string) (T, error)) (T, error) {
	if p.AtEOS() {
		return zero[T](), p.Fail("Expected "+name)
	}
	text, _, ok := p.buf.matchAt(pat.re)
	if !ok {
		return zero[T](), p.Fail("Expected "+name)
	}
	return convert(text)
}
