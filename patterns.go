package parsekit

import (
	"fmt"
	"regexp"

	"github.com/smasher164/xid"
)

// Names of the patterns a PatternSet resolves, matching the configurable
// names from the spec's data model.
const (
	PatternWS          = "ws"
	PatternComment     = "comment"
	PatternInt         = "int"
	PatternFloat       = "float"
	PatternIdent       = "ident"
	PatternStringDelim = "string_delim"
)

const (
	defaultWSSource          = `[ \t\r\n]+`
	defaultIntSource         = `0[xX][0-9a-fA-F]+|0[0-7]*|[1-9][0-9]*`
	defaultFloatSource       = `(?i)-?(?:[0-9]*\.[0-9]+|[0-9]+\.)(?:e-?[0-9]+)?|-?[0-9]+e-?[0-9]+`
	defaultIdentSource       = `[\p{L}_][\p{L}\p{N}_]*`
	defaultStringDelimSource = `['"]`
)

// PatternSet is the resolved, compiled regexes a Parser matches primitives
// against: whitespace, an optional comment, integers, floats, identifiers
// and the string-literal delimiter. Only comment may be absent.
type PatternSet struct {
	WS          *Pattern
	Comment     *Pattern // nil if not configured
	Int         *Pattern
	Float       *Pattern
	Ident       *Pattern
	StringDelim *Pattern

	// identIsDefault records whether Ident is still the framework default,
	// in which case TokenIdent additionally checks each matched rune
	// against Unicode XID_Start/XID_Continue (see TokenIdent). A
	// user-supplied override is trusted as-is.
	identIsDefault bool
}

// newPatternSet resolves a PatternSet from optional overrides, applying
// the accept_0o_oct construction rule last, as the spec requires ("the int
// pattern is replaced by the alternation 0o[0-7]+ | <current int>").
func newPatternSet(overrides map[string]string, acceptOctal bool) (*PatternSet, error) {
	src := map[string]string{
		PatternWS:          defaultWSSource,
		PatternInt:         defaultIntSource,
		PatternFloat:       defaultFloatSource,
		PatternIdent:       defaultIdentSource,
		PatternStringDelim: defaultStringDelimSource,
	}
	identOverridden := false
	for name, pat := range overrides {
		switch name {
		case PatternWS, PatternComment, PatternInt, PatternFloat, PatternIdent, PatternStringDelim:
			src[name] = pat
			if name == PatternIdent {
				identOverridden = true
			}
		default:
			return nil, fmt.Errorf("parsekit: unknown pattern name %q", name)
		}
	}

	if acceptOctal {
		src[PatternInt] = `0[oO][0-7]+|` + src[PatternInt]
	}

	ps := &PatternSet{identIsDefault: !identOverridden}

	compile := func(name string) (*Pattern, error) {
		s, ok := src[name]
		if !ok {
			return nil, nil
		}
		re, err := regexp.Compile(s)
		if err != nil {
			return nil, fmt.Errorf("parsekit: pattern %q: %w", name, err)
		}
		return &Pattern{re: re, desc: s}, nil
	}

	var err error
	if ps.WS, err = compile(PatternWS); err != nil {
		return nil, err
	}
	if comment, overridden := overrides[PatternComment]; overridden {
		src[PatternComment] = comment
		if ps.Comment, err = compile(PatternComment); err != nil {
			return nil, err
		}
	}
	if ps.Int, err = compile(PatternInt); err != nil {
		return nil, err
	}
	if ps.Float, err = compile(PatternFloat); err != nil {
		return nil, err
	}
	if ps.Ident, err = compile(PatternIdent); err != nil {
		return nil, err
	}
	if ps.StringDelim, err = compile(PatternStringDelim); err != nil {
		return nil, err
	}
	return ps, nil
}

// validateIdentRunes trims a regex-matched identifier candidate to the
// longest prefix whose runes are all valid Unicode XID_Start/XID_Continue
// characters (underscore included), the same rune classification
// vippsas/sqlcode's scanner uses for T-SQL identifiers. The configured
// ident regex is deliberately permissive (\p{L}, not a precise XID table);
// this is the "further checked" step the spec's token readers describe.
func validateIdentRunes(s string) string {
	for i, r := range s {
		if i == 0 {
			if !xid.Start(r) && r != '_' {
				return ""
			}
			continue
		}
		if !xid.Continue(r) && r != '_' {
			return s[:i]
		}
	}
	return s
}
