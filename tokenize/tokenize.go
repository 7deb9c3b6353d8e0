// Package tokenize splits text into words suitable for counting.
package tokenize

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
)

// MaxTokenSize is the size limit of whitespace-separated token in bytes. Longer tokens fail Tokenize.
const MaxTokenSize = 1000

// Tokenize reads whitespace-separated tokens from r, normalizes them with Normalize
// and calls fn for every non-empty word. Error returned by fn stops the processing and is returned as is.
func Tokenize(r io.Reader, fn func(word string) error) error {
	scanner := bufio.NewScanner(r)
	// Scanner needs one byte more than the token to see the delimiter following it.
	scanner.Buffer(make([]byte, 0, 256), MaxTokenSize+1)
	scanner.Split(bufio.ScanWords)

	folder := cases.Fold()
	for scanner.Scan() {
		word := normalize(folder, scanner.Text())
		if word == "" {
			continue
		}
		if err := fn(word); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "reading words failed")
}

// Normalize trims leading and trailing runes which are neither letters nor digits
// and case-folds the rest. Returns empty string if nothing is left.
func Normalize(token string) string {
	return normalize(cases.Fold(), token)
}

func normalize(folder cases.Caser, token string) string {
	token = strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if token == "" {
		return ""
	}
	return folder.String(token)
}
