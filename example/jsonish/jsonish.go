// Package jsonish is a demonstration grammar for parsekit: a JSON-like
// value language (objects, arrays, strings, numbers, booleans and null)
// built entirely from combinators and token readers, nothing bespoke.
package jsonish

import "github.com/birkelund/parsekit"

var (
	comma     = parsekit.Lit(",")
	colon     = parsekit.Lit(":")
	braceOpen = parsekit.Lit("{")
	braceStop = parsekit.Lit("}")
	brackOpen = parsekit.Lit("[")
	brackStop = parsekit.Lit("]")
)

var grammar = parsekit.Grammar[any]{TopLevel: parseValue}

// Parse parses a single jsonish value from text, requiring the value to
// account for the entire input besides surrounding whitespace.
func Parse(text string) (any, error) {
	return grammar.ParseString(text)
}

func parseValue(p *parsekit.Parser) (any, error) {
	return parsekit.AnyOf(p, parseObject, parseArray, parseStringValue, parseNumberValue, parseBoolValue, parseNullValue)
}

func parseObject(p *parsekit.Parser) (any, error) {
	return parsekit.ScopeOf(p, braceOpen, func(p *parsekit.Parser) (any, error) {
		members, err := parsekit.ListOf(p, comma, parseMember)
		if err != nil {
			return nil, err
		}
		obj := make(map[string]any, len(members))
		for _, m := range members {
			obj[m.key] = m.value
		}
		return obj, nil
	}, braceStop)
}

type member struct {
	key   string
	value any
}

func parseMember(p *parsekit.Parser) (member, error) {
	key, err := p.TokenString()
	if err != nil {
		return member{}, err
	}
	if _, err := p.Expect(colon); err != nil {
		return member{}, err
	}
	value, err := parseValue(p)
	if err != nil {
		return member{}, err
	}
	return member{key: key, value: value}, nil
}

func parseArray(p *parsekit.Parser) (any, error) {
	return parsekit.ScopeOf(p, brackOpen, func(p *parsekit.Parser) (any, error) {
		items, err := parsekit.ListOf(p, comma, parseValue)
		if err != nil {
			return nil, err
		}
		return items, nil
	}, brackStop)
}

func parseStringValue(p *parsekit.Parser) (any, error) {
	s, err := p.TokenString()
	if err != nil {
		return nil, err
	}
	return s, nil
}

func parseNumberValue(p *parsekit.Parser) (any, error) {
	n, err := p.TokenNumber()
	if err != nil {
		return nil, err
	}
	if n.IsFloat {
		return n.Float, nil
	}
	return n.Int, nil
}

func parseBoolValue(p *parsekit.Parser) (any, error) {
	kw, err := p.TokenKeyword("true", "false")
	if err != nil {
		return nil, err
	}
	return kw == "true", nil
}

func parseNullValue(p *parsekit.Parser) (any, error) {
	if _, err := p.TokenKeyword("null"); err != nil {
		return nil, err
	}
	return nil, nil
}
