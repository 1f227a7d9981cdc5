// Package game holds the types shared by board game implementations:
// colours, coordinates and moves. The rules themselves live in subpackages
// (currently only baduk).
package game

import (
	"fmt"
)

type Colour int32

const (
	None Colour = iota
	Black
	White
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Move is a tuple indicating the colour of the stone and where it is to be
// placed.
type Move struct {
	Colour
	Single
}

// Eq returns true if both are equal
func (m Move) Eq(other Move) bool {
	return m.Colour == other.Colour && m.Single == other.Single
}

func (m Move) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%d", m.Colour, m.Single) }

// Coord represents a (row, col) coordinate.
// Given we're unlikely to actually have a board size of 255x255 or greater,
// a pair of bytes is sufficient to represent the coordinates
//
// The Coord uses a standard computer cartesian coordinates
//		- (0, 0) represents the top left
//		- (18, 18) represents the bottom right of a 19x19 board
type Coord struct {
	X, Y int16
}

func (c Coord) Add(other Coord) Coord { return Coord{c.X + other.X, c.Y + other.Y} }

func (c Coord) Eq(other Coord) bool { return c.X == other.X && c.Y == other.Y }

// Single represents a coordinate as a single number, utilized in a rowmajor fashion.
//		- 0 represents the top left
//		- 18 represents the top right of a 19x19 board
//		- 19 represents (1, 0)
// 		- -1 represents the "pass" move
//		- -2 represents an invalid point
type Single int32

const (
	Pass    Single = -1
	Invalid Single = -2
)

// IsPass returns true when the coordinate represents a "pass" move
func (c Single) IsPass() bool { return c == Pass }

// Zobrist is a type representing a "zobrist" hash of a board position.
// The word "Zobrist" is put in quotes because only Go and chess use zobrist
// hashing. Other games have different hashes of the boards (because only Go
// and Chess have subtractive boards)
type Zobrist uint64
