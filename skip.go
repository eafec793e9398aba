package parsekit

// skipWS repeatedly consumes, at the cursor, any prefix matching the
// whitespace pattern or (if configured) the comment pattern, in any
// order, until neither matches. Only skippable whitespace is a safe
// input-append point: it can never split a token, so this is the only
// place a streaming reader is ever consulted.
func (p *Parser) skipWS() {
	for {
		for {
			if text, _, ok := p.buf.matchAt(p.patterns.WS.re); ok && text != "" {
				continue
			}
			if p.patterns.Comment != nil {
				if text, _, ok := p.buf.matchAt(p.patterns.Comment.re); ok && text != "" {
					continue
				}
			}
			break
		}

		if !p.buf.atEndOfText() {
			return
		}
		if p.reader == nil {
			return
		}

		more, ok := p.reader(p)
		if !ok {
			p.reader = nil
			return
		}
		if more == "" {
			return
		}
		p.buf.append(more)
	}
}

// AtEOS reports whether the parser is at an implicit end of input: either
// genuine end-of-text, or (inside a scope introduced by ScopeOf) sitting
// exactly at the innermost scope's closing pattern. It always skips
// whitespace/comments first.
func (p *Parser) AtEOS() bool {
	p.skipWS()
	if p.buf.atEndOfText() {
		return true
	}
	if closer := p.scopes.top(); closer != nil {
		return p.buf.peekAt(closer)
	}
	return false
}
