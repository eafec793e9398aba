package parsekit

import "github.com/sirupsen/logrus"

// Reader is a streaming input source. The Skipper calls it, and only it,
// at a whitespace boundary; a nil-string/false return detaches the reader
// permanently for the remainder of the parse.
type Reader func(p *Parser) (more string, ok bool)

// Parser is the running state of one from_string/from_file/from_reader
// invocation: the input cursor, the resolved pattern set, the scope stack
// and the commit stack. A Parser is owned exclusively by whatever grammar
// call tree is driving it; nothing about it is safe for concurrent use.
type Parser struct {
	buf      *inputBuffer
	patterns *PatternSet
	scopes   scopeStack
	commits  commitStack
	reader   Reader
	logger   logrus.FieldLogger
}

func newParser(text string, patterns *PatternSet, reader Reader, logger logrus.FieldLogger) *Parser {
	return &Parser{
		buf:      newInputBuffer(text),
		patterns: patterns,
		reader:   reader,
		logger:   logger,
	}
}

// Pos returns the cursor's raw byte offset.
func (p *Parser) Pos() int {
	return p.buf.position()
}

// SetPos restores the cursor to a value previously returned by Pos, during
// the same parse. Only combinators call this.
func (p *Parser) SetPos(at int) {
	p.buf.setPosition(at)
}

// Where reports the line/column of the cursor and the full text of the
// line it is on. It does not skip whitespace.
func (p *Parser) Where() (Position, string) {
	pos := p.buf.where()
	return pos, p.buf.lineText(p.buf.position())
}

// ScopeLevel is the number of scopes currently nested via ScopeOf.
func (p *Parser) ScopeLevel() int {
	return p.scopes.level()
}

// Fail raises a recoverable failure at the current cursor.
func (p *Parser) Fail(msg string) error {
	return p.failAt(p.buf.position(), msg)
}

// FailFrom raises a recoverable failure at an explicit, previously
// recorded position rather than the current cursor.
func (p *Parser) FailFrom(at int, msg string) error {
	return p.failAt(at, msg)
}

func (p *Parser) failAt(at int, msg string) error {
	pos := p.buf.pcalc.calculate(at)
	return &Failure{
		Message:  msg,
		Line:     pos.Line,
		Column:   pos.Column,
		LineText: p.buf.lineText(at),
	}
}

func (p *Parser) debugf(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debugf(format, args...)
	}
}
