package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPatternSetDefaults(t *testing.T) {
	ps, err := newPatternSet(nil, false)
	require.NoError(t, err)
	assert.True(t, ps.identIsDefault)
	assert.Nil(t, ps.Comment)
	assert.True(t, ps.Int.re.MatchString("123"))
}

func TestNewPatternSetOverride(t *testing.T) {
	ps, err := newPatternSet(map[string]string{
		PatternComment: `#.*`,
		PatternIdent:   `[a-z]+`,
	}, false)
	require.NoError(t, err)
	require.NotNil(t, ps.Comment)
	assert.False(t, ps.identIsDefault)
}

func TestNewPatternSetUnknownName(t *testing.T) {
	_, err := newPatternSet(map[string]string{"bogus": "x"}, false)
	require.Error(t, err)
}

func TestNewPatternSetAccept0oOct(t *testing.T) {
	ps, err := newPatternSet(nil, true)
	require.NoError(t, err)
	loc := ps.Int.re.FindStringIndex("0o17")
	require.NotNil(t, loc)
	assert.Equal(t, 0, loc[0])
	assert.Equal(t, 4, loc[1])
}

func TestValidateIdentRunes(t *testing.T) {
	assert.Equal(t, "foo_bar", validateIdentRunes("foo_bar"))
	assert.Equal(t, "", validateIdentRunes("123abc"))
	assert.Equal(t, "_underscore1", validateIdentRunes("_underscore1"))
}
