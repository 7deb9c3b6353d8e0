package tokenize

import (
	"bufio"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	requireT := require.New(t)

	var words []string
	err := Tokenize(strings.NewReader("The cat, the HAT...\n\t and -- \"the\" cat's 42!"), func(word string) error {
		words = append(words, word)
		return nil
	})
	requireT.NoError(err)
	requireT.Equal([]string{"the", "cat", "the", "hat", "and", "the", "cat's", "42"}, words)
}

func TestTokenizeEmpty(t *testing.T) {
	requireT := require.New(t)

	err := Tokenize(strings.NewReader(" \n ... !!! \n"), func(word string) error {
		requireT.Fail("unexpected word", word)
		return nil
	})
	requireT.NoError(err)
}

func TestTokenizeStops(t *testing.T) {
	requireT := require.New(t)

	errStop := errors.New("stop")
	var words []string
	err := Tokenize(strings.NewReader("a b c d"), func(word string) error {
		if word == "c" {
			return errStop
		}
		words = append(words, word)
		return nil
	})
	requireT.ErrorIs(err, errStop)
	requireT.Equal([]string{"a", "b"}, words)
}

func TestTokenizeTooLong(t *testing.T) {
	requireT := require.New(t)

	err := Tokenize(strings.NewReader(strings.Repeat("x", MaxTokenSize+1)), func(string) error {
		return nil
	})
	requireT.ErrorIs(err, bufio.ErrTooLong)
}

func TestTokenizeLongest(t *testing.T) {
	requireT := require.New(t)

	longest := strings.Repeat("x", MaxTokenSize)
	for _, input := range []string{longest, longest + " y", "y " + longest + "\n"} {
		var words []string
		err := Tokenize(strings.NewReader(input), func(word string) error {
			words = append(words, word)
			return nil
		})
		requireT.NoError(err)
		requireT.Contains(words, longest)
	}

	err := Tokenize(strings.NewReader(longest+"x y"), func(string) error {
		return nil
	})
	requireT.ErrorIs(err, bufio.ErrTooLong)
}

func TestNormalize(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal("übung", Normalize("«Übung»"))
	requireT.Equal("ünïcode", Normalize("ÜNÏCODE."))
	requireT.Equal("", Normalize("---"))
	requireT.Equal("a-b", Normalize("(A-B)"))
}
