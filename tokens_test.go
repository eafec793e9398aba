package parsekit

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1: integer token.
func TestTokenIntScenario(t *testing.T) {
	cases := []struct {
		in  string
		out int64
	}{
		{"123", 123},
		{"0", 0},
		{"0x20", 32},
		{"010", 8},
		{"-4", -4},
	}
	for _, c := range cases {
		g := Grammar[int64]{TopLevel: func(p *Parser) (int64, error) { return p.TokenInt() }}
		got, err := g.ParseString(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.out, got, c.in)
	}

	g := Grammar[int64]{TopLevel: func(p *Parser) (int64, error) { return p.TokenInt() }}
	_, err := g.ParseString("hello")
	require.Error(t, err)
	assert.Equal(t, "Expected integer on line 1 at:\nhello\n^\n", err.Error())
}

// Scenario 2: quoted string.
func TestTokenStringScenario(t *testing.T) {
	g := Grammar[string]{TopLevel: func(p *Parser) (string, error) { return p.TokenString() }}

	got, err := g.ParseString(`'single'`)
	require.NoError(t, err)
	assert.Equal(t, "single", got)

	got, err = g.ParseString(`"double"`)
	require.NoError(t, err)
	assert.Equal(t, "double", got)

	got, err = g.ParseString(`"foo 'bar'"`)
	require.NoError(t, err)
	assert.Equal(t, "foo 'bar'", got)

	restricted := Grammar[string]{
		TopLevel: func(p *Parser) (string, error) { return p.TokenString() },
		Patterns: map[string]string{PatternStringDelim: `"`},
	}
	_, err = restricted.ParseString(`'single'`)
	require.Error(t, err)
}

// Scenario 3: scope + commit.
func TestScopeCommitScenario(t *testing.T) {
	rule := func(p *Parser) (string, error) {
		return AnyOf(p,
			func(p *Parser) (string, error) {
				n, err := p.TokenInt()
				if err != nil {
					return "", err
				}
				return itoa(n), nil
			},
			func(p *Parser) (string, error) {
				return ScopeOf(p, Lit("("), func(p *Parser) (string, error) {
					if err := Commit(p); err != nil {
						return "", err
					}
					return p.TokenString()
				}, Lit(")"))
			},
		)
	}
	g := Grammar[string]{TopLevel: rule}

	got, err := g.ParseString("123")
	require.NoError(t, err)
	assert.Equal(t, "123", got)

	got, err = g.ParseString(`("hi")`)
	require.NoError(t, err)
	assert.Equal(t, "hi", got)

	_, err = g.ParseString("(456)")
	require.Error(t, err)
	assert.Equal(t, "Expected string delimiter on line 1 at:\n(456)\n ^\n", err.Error())
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}

// Scenario 4: expect pair with intervening whitespace.
func TestExpectPairScenario(t *testing.T) {
	worldPat := Re("world")
	rule := func(p *Parser) ([]string, error) {
		a, err := p.Expect(Lit("hello"))
		if err != nil {
			return nil, err
		}
		b, err := p.Expect(worldPat)
		if err != nil {
			return nil, err
		}
		return []string{a, b}, nil
	}
	g := Grammar[[]string]{TopLevel: rule}

	got, err := g.ParseString("hello world")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, got)

	got, err = g.ParseString("  hello world  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, got)

	_, err = g.ParseString("goodbye world")
	require.Error(t, err)
	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, `Expected "hello"`, failure.Message)
	assert.Equal(t, 1, failure.Line)
	assert.Equal(t, 0, failure.Column)
}

// Scenario 5: list_of(",", token_int).
func TestListOfIntScenario(t *testing.T) {
	rule := func(p *Parser) ([]int64, error) {
		return ListOf(p, Lit(","), func(p *Parser) (int64, error) { return p.TokenInt() })
	}
	g := Grammar[[]int64]{TopLevel: rule}

	got, err := g.ParseString("123")
	require.NoError(t, err)
	assert.Equal(t, []int64{123}, got)

	got, err = g.ParseString("4,5,6")
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5, 6}, got)

	got, err = g.ParseString("7, 8")
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 8}, got)

	got, err = g.ParseString("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// Scenario 6: Where() reporting.
func TestWhereScenario(t *testing.T) {
	type snap struct {
		line, col int
		lineText  string
	}
	run := func(text string) []snap {
		var snaps []snap
		rule := func(p *Parser) (any, error) {
			record := func() {
				pos, lt := p.Where()
				snaps = append(snaps, snap{pos.Line, pos.Column, lt})
			}
			record()
			if _, err := p.Expect(Lit("hello")); err != nil {
				return nil, err
			}
			record()
			if _, err := p.Expect(Re("world")); err != nil {
				return nil, err
			}
			record()
			return nil, nil
		}
		g := Grammar[any]{TopLevel: rule}
		_, err := g.ParseString(text)
		require.NoError(t, err)
		return snaps
	}

	got := run("hello world")
	require.Len(t, got, 3)
	assert.Equal(t, snap{1, 0, "hello world"}, got[0])
	assert.Equal(t, snap{1, 5, "hello world"}, got[1])
	assert.Equal(t, snap{1, 11, "hello world"}, got[2])

	got = run("hello\nworld")
	require.Len(t, got, 3)
	assert.Equal(t, snap{1, 0, "hello"}, got[0])
	assert.Equal(t, snap{1, 5, "hello"}, got[1])
	assert.Equal(t, snap{2, 5, "world"}, got[2])
}

func TestTokenFloatAndNumber(t *testing.T) {
	g := Grammar[Number]{TopLevel: func(p *Parser) (Number, error) { return p.TokenNumber() }}

	got, err := g.ParseString("3.5")
	require.NoError(t, err)
	assert.True(t, got.IsFloat)
	assert.Equal(t, 3.5, got.Float)

	got, err = g.ParseString("-2e3")
	require.NoError(t, err)
	assert.True(t, got.IsFloat)
	assert.Equal(t, -2000.0, got.Float)

	got, err = g.ParseString("42")
	require.NoError(t, err)
	assert.False(t, got.IsFloat)
	assert.Equal(t, int64(42), got.Int)
}

func TestTokenIdent(t *testing.T) {
	g := Grammar[string]{TopLevel: func(p *Parser) (string, error) { return p.TokenIdent() }}
	got, err := g.ParseString("foo_bar2")
	require.NoError(t, err)
	assert.Equal(t, "foo_bar2", got)
}

func TestTokenKeywordRestoresCursorOnMismatch(t *testing.T) {
	rule := func(p *Parser) (string, error) {
		kw, err := p.TokenKeyword("if", "else")
		if err != nil {
			// cursor must not have moved: a following ident read should
			// still see the whole word.
			ident, identErr := p.TokenIdent()
			if identErr != nil {
				return "", identErr
			}
			return ident, nil
		}
		return kw, nil
	}
	g := Grammar[string]{TopLevel: rule}
	got, err := g.ParseString("iffy")
	require.NoError(t, err)
	assert.Equal(t, "iffy", got)
}

func TestSubstringBeforeStopsAtScopeCloser(t *testing.T) {
	rule := func(p *Parser) (string, error) {
		return ScopeOf(p, Lit("("), func(p *Parser) (string, error) {
			return p.SubstringBefore(nil)
		}, Lit(")"))
	}
	g := Grammar[string]{TopLevel: rule}
	got, err := g.ParseString("(abc)")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestStringEscapes(t *testing.T) {
	g := Grammar[string]{TopLevel: func(p *Parser) (string, error) { return p.TokenString() }}

	got, err := g.ParseString(`"a\nb"`)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	got, err = g.ParseString(`"\x41"`)
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	got, err = g.ParseString(`"\x{48}\x{49}"`)
	require.NoError(t, err)
	assert.Equal(t, "HI", got)

	got, err = g.ParseString(`"\101"`)
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	got, err = g.ParseString(`"\v"`)
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	got, err = g.ParseString(`"\q"`)
	require.NoError(t, err)
	assert.Equal(t, "q", got)
}

func TestGenericToken(t *testing.T) {
	hexByte := Re(`[0-9a-fA-F]{2}`)
	rule := func(p *Parser) (byte, error) {
		return GenericToken(p, "hex byte", hexByte, func(text string) (byte, error) {
			v, err := strconv.ParseUint(text, 16, 8)
			if err != nil {
				return 0, err
			}
			return byte(v), nil
		})
	}
	g := Grammar[byte]{TopLevel: rule}

	got, err := g.ParseString("ff")
	require.NoError(t, err)
	assert.Equal(t, byte(0xff), got)

	_, err = g.ParseString("zz")
	require.Error(t, err)
	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "Expected hex byte", failure.Message)
}
