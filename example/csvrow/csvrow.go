// Package csvrow is a demonstration grammar for parsekit: a single-line
// comma-separated row, built without any whitespace-skipping behaviour so
// that field text (including leading/trailing spaces) is preserved
// verbatim. It exists to exercise SubstringBefore and ListOf in a grammar
// that isn't whitespace-delimited at all.
package csvrow

import "github.com/birkelund/parsekit"

var comma = parsekit.Lit(",")

// neverMatches is a character class excluding every Unicode code point, so
// it can never match: overriding the ws pattern with it disables the
// Skipper entirely.
const neverMatches = `[^\x{0}-\x{10FFFF}]`

var grammar = parsekit.Grammar[[]string]{
	TopLevel: parseRow,
	Patterns: map[string]string{
		parsekit.PatternWS: neverMatches,
	},
}

// Parse splits a single line into its comma-separated fields. An empty
// line yields zero fields, not one empty field.
func Parse(line string) ([]string, error) {
	return grammar.ParseString(line)
}

func parseRow(p *parsekit.Parser) ([]string, error) {
	return parsekit.ListOf(p, comma, parseField)
}

func parseField(p *parsekit.Parser) (string, error) {
	return p.SubstringBefore(comma)
}
