package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ganzhi/goban/game"
	"github.com/pkg/errors"
)

// GTP move text is a column letter plus a 1-based row number counted from
// the bottom of the board, e.g. "D4" or "Q16". The letter I is skipped by
// convention (it reads too much like 1 over a serial link), so the columns
// of a 19x19 board run A..H then J..T.

// ParseColour parses "b"/"black"/"w"/"white", case-insensitively.
func ParseColour(s string) (game.Colour, error) {
	switch strings.ToLower(s) {
	case "b", "black":
		return game.Black, nil
	case "w", "white":
		return game.White, nil
	}
	return game.None, errors.Errorf("cannot understand colour %q", s)
}

// FormatColour renders a colour in its short GTP form.
func FormatColour(c game.Colour) string {
	switch c {
	case game.Black:
		return "B"
	case game.White:
		return "W"
	}
	return "?"
}

// ParsePoint parses GTP move text into a point on a size×size board.
// "pass" parses to game.Pass.
func ParsePoint(s string, size int) (game.Single, error) {
	s = strings.ToLower(s)
	if s == "pass" {
		return game.Pass, nil
	}
	if len(s) < 2 {
		return game.Invalid, errors.Errorf("coordinate %q is too short", s)
	}

	letter := s[0]
	if letter < 'a' || letter > 'z' {
		return game.Invalid, errors.Errorf("letter part of coordinate %q not in range a-z", s)
	}
	if letter == 'i' {
		return game.Invalid, errors.Errorf("the letter i is not used in coordinates")
	}
	col := int(letter - 'a')
	if letter > 'i' {
		col--
	}

	number, err := strconv.Atoi(s[1:])
	if err != nil {
		return game.Invalid, errors.WithMessagef(err, "cannot parse number part of coordinate %q", s)
	}
	row := size - number

	if col >= size || row < 0 || row >= size {
		return game.Invalid, errors.Errorf("coordinate %q is off the board", s)
	}
	return game.Single(row*size + col), nil
}

// FormatPoint renders a point on a size×size board as GTP move text.
func FormatPoint(p game.Single, size int) string {
	if p.IsPass() {
		return "pass"
	}
	row := int(p) / size
	col := int(p) % size
	letter := rune('A' + col)
	if letter >= 'I' {
		letter++
	}
	return fmt.Sprintf("%c%d", letter, size-row)
}
