package parsekit

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Grammar wires a top-level grammar rule to the framework: the pattern
// overrides and options every from_string/from_file/from_reader call
// shares. Grammar is plain data; ParseString/ParseFile/ParseReader use
// value receivers so a Grammar is safe to reuse and safe to copy.
type Grammar[T any] struct {
	// TopLevel is the rule the whole input must reduce to. It must consume
	// the entire input; a driver method fails with "Expected end of input"
	// if anything besides trailing whitespace/comments remains.
	TopLevel func(*Parser) (T, error)

	// Patterns overrides one or more of the named default patterns (see
	// PatternWS, PatternComment, PatternInt, PatternFloat, PatternIdent,
	// PatternStringDelim).
	Patterns map[string]string

	// Accept0oOct additionally accepts a "0o" octal integer prefix, folded
	// into the int pattern ahead of whatever Patterns[PatternInt] supplies.
	Accept0oOct bool

	// Logger, if non-nil, receives a Debug-level line for each Commit as the
	// grammar runs. Backtracking and scope entry/exit are not logged.
	Logger logrus.FieldLogger
}

// FileOptions configures ParseFile.
type FileOptions struct {
	// Binmode selects how the file's bytes become the parser's input text.
	// "" and "text" read the file as-is (UTF-8 assumed); no other mode is
	// currently implemented.
	Binmode string
}

// ParseString runs TopLevel over the entirety of text.
func (g Grammar[T]) ParseString(text string) (T, error) {
	return g.run(text, nil)
}

// ParseFile reads path and runs TopLevel over its contents.
func (g Grammar[T]) ParseFile(path string, opts FileOptions) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return zero[T](), fatalf("parsekit: reading %s: %w", path, err)
	}
	return g.run(string(data), nil)
}

// ParseReader runs TopLevel over text supplied incrementally by reader,
// which is consulted only when the Skipper sits on whitespace/comments at
// end of the buffered text so far.
func (g Grammar[T]) ParseReader(reader Reader) (T, error) {
	return g.run("", reader)
}

// ReaderFromIOReader adapts a standard io.Reader into a Reader, reading
// one chunk at a time and detaching once it returns io.EOF.
func ReaderFromIOReader(r io.Reader) Reader {
	buf := make([]byte, 4096)
	return func(p *Parser) (string, bool) {
		n, err := r.Read(buf)
		if n > 0 {
			return string(buf[:n]), true
		}
		if err != nil {
			return "", false
		}
		return "", true
	}
}

func (g Grammar[T]) run(text string, reader Reader) (T, error) {
	patterns, err := newPatternSet(g.Patterns, g.Accept0oOct)
	if err != nil {
		return zero[T](), fatalf("parsekit: %w", err)
	}

	p := newParser(text, patterns, reader, g.Logger)
	value, err := g.TopLevel(p)
	if err != nil {
		return zero[T](), err
	}

	if !p.AtEOS() {
		return zero[T](), &FatalError{Err: p.Fail("Expected end of input")}
	}
	return value, nil
}
