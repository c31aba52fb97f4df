// SPDX-License-Identifier: MIT

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// FirstWordIndex returns the byte index of the first space in s, or len(s).
func FirstWordIndex(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return i
		}
	}

	return len(s)
}

// FirstWord returns s up to (not including) its first space.
func FirstWord(s string) string {
	return s[:FirstWordIndex(s)]
}

// ReadFirstWord reads a single line from r and returns its first word.
// The line terminator ("\n" or "\r\n") is not part of the word.
func ReadFirstWord(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("words: read line: %w", err)
	}
	if line == "" && errors.Is(err, io.EOF) {
		return "", ErrNoInput
	}
	line = strings.TrimRight(line, "\r\n")

	return FirstWord(line), nil
}
