package dictionary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	for c := 0; c < 256; c++ {
		i, ok := Index(byte(c))
		if c >= 'a' && c <= 'z' {
			require.True(t, ok, "byte %q", c)
			assert.Equal(t, uint(c-'a'), i)
			assert.Equal(t, byte(c), Letter(i))
		} else {
			assert.False(t, ok, "byte %q", c)
		}
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(""))
	assert.NoError(t, Validate("abcxyz"))

	for _, word := range []string{"Abc", "ab c", "a-b", "café", "a\x00"} {
		err := Validate(word)
		assert.Error(t, err, word)
		assert.True(t, errors.Is(err, ErrInvalidCharacter), word)
	}
}

func TestPrepare(t *testing.T) {
	in := []string{"zoo", "burn", "", "burner", "zoo", "ahem", "burn"}
	orig := append([]string(nil), in...)

	out, err := Prepare(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "ahem", "burn", "burner", "zoo"}, out)
	assert.Equal(t, orig, in, "input must not be modified")

	out, err = Prepare(nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = Prepare([]string{"ok", "Bad"})
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

type fakeSessions struct {
	Dictionary
	sessions int
}

func (f *fakeSessions) NewSession() Dictionary {
	f.sessions++
	return f.Dictionary
}

func TestSession(t *testing.T) {
	var plain Dictionary
	assert.Nil(t, Session(plain))

	f := &fakeSessions{}
	Session(f)
	Session(f)
	assert.Equal(t, 2, f.sessions)
}
