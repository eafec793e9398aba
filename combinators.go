package parsekit

import "regexp"

// emptySep is the separator ListOf falls back to when called as
// SequenceOf: a pattern that always matches zero bytes, so the only ways
// the loop can stop are AtEOS or the body failing.
var emptySep = regexp.MustCompile(``)

// Maybe runs f, backtracking the cursor if it fails recoverably. A
// recoverable failure raised after Commit has run inside f re-raises
// instead of being swallowed. Any non-recoverable error from f always
// propagates. ok reports whether f succeeded.
func Maybe[T any](p *Parser, f func(*Parser) (T, error)) (value T, ok bool, err error) {
	snapshot := p.Pos()
	p.commits.push()
	value, err = f(p)
	committed := p.commits.pop()

	if err == nil {
		return value, true, nil
	}
	if _, isFailure := asFailure(err); isFailure {
		if committed {
			return zero[T](), false, err
		}
		p.SetPos(snapshot)
		return zero[T](), false, nil
	}
	return zero[T](), false, err
}

// AnyOf tries each alternative in order, returning the first that
// succeeds. If every alternative fails recoverably it reports "Found
// nothing parseable" at the cursor position on entry. A committed
// alternative's recoverable failure propagates immediately rather than
// falling through to the next alternative.
func AnyOf[T any](p *Parser, alts ...func(*Parser) (T, error)) (T, error) {
	entry := p.Pos()
	for _, alt := range alts {
		snapshot := p.Pos()
		p.commits.push()
		value, err := alt(p)
		committed := p.commits.pop()

		if err == nil {
			return value, nil
		}
		if _, isFailure := asFailure(err); isFailure {
			if committed {
				return zero[T](), err
			}
			p.SetPos(snapshot)
			continue
		}
		return zero[T](), err
	}
	return zero[T](), p.FailFrom(entry, "Found nothing parseable")
}

// ListOf repeats body, requiring sep between items, stopping at AtEOS, at
// an uncommitted body failure (which backtracks to before that attempt),
// or when sep fails to match after a successful item. The result may be
// empty.
func ListOf[T any](p *Parser, sep *Pattern, body func(*Parser) (T, error)) ([]T, error) {
	sepRe := reOf(sep)
	if sepRe == nil {
		sepRe = emptySep
	}

	items := []T{}
	for {
		if p.AtEOS() {
			return items, nil
		}

		snapshot := p.Pos()
		p.commits.push()
		value, err := body(p)
		committed := p.commits.pop()

		if err != nil {
			if _, isFailure := asFailure(err); isFailure {
				if committed {
					return items, err
				}
				p.SetPos(snapshot)
				return items, nil
			}
			return items, err
		}
		items = append(items, value)

		p.skipWS()
		if _, _, ok := p.buf.matchAt(sepRe); !ok {
			return items, nil
		}
	}
}

// SequenceOf is ListOf with an always-matching separator: items run back
// to back, with termination driven entirely by AtEOS or a body failure.
func SequenceOf[T any](p *Parser, body func(*Parser) (T, error)) ([]T, error) {
	return ListOf[T](p, nil, body)
}

// ScopeOf delimits a nested region: start (if non-nil) is consumed with
// Expect, stop is pushed onto the scope stack for the duration of body (so
// AtEOS becomes true at the scope's closer without body needing to test
// for it), and stop is then consumed with Expect. The scope is always
// popped, whether body returns successfully or raises.
func ScopeOf[T any](p *Parser, start *Pattern, body func(*Parser) (T, error), stop *Pattern) (T, error) {
	if start != nil {
		if _, err := p.Expect(start); err != nil {
			return zero[T](), err
		}
	}

	p.scopes.push(stop.re)
	value, err := body(p)
	p.scopes.pop()

	if err != nil {
		return zero[T](), err
	}

	if _, err := p.Expect(stop); err != nil {
		return zero[T](), err
	}
	return value, nil
}

func zero[T any]() T {
	var v T
	return v
}
