// Package baduk implements the rules of Go (the board game): board state,
// move legality (occupancy, suicide, positional superko), capture and
// Tromp-Taylor area scoring.
//
// The package is named after the Korean word for the game, because the
// standard library of the Go language has claimed the prefix "go".
package baduk

import (
	"fmt"

	"github.com/ganzhi/goban/game"
	"github.com/pkg/errors"
)

// Board represents a board of size×size points.
//
// The occupancy lives in a flat backing slice addressed in row-major order;
// adjacency is derived from coordinates, so no graph structure is ever
// allocated. The zobrist hash is maintained incrementally: it changes in
// Place and Remove and nowhere else, and is always the XOR of the table
// entries of the stones currently on the board.
type Board struct {
	size    int32
	data    []game.Colour   // backing data
	it      [][]game.Colour // iterator for quick access
	zobrist                 // hashing of the board
}

func newBoard(size int) *Board {
	data, it := makeBoard(size)
	z := makeZobrist(size)
	return &Board{
		size:    int32(size),
		data:    data,
		it:      it,
		zobrist: z,
	}
}

// Size returns the length of one side of the board.
func (b *Board) Size() int { return int(b.size) }

// Hash returns the current position hash.
func (b *Board) Hash() game.Zobrist { return b.hash }

// Data returns a copy of the occupancy, in row-major order.
func (b *Board) Data() []game.Colour {
	data := make([]game.Colour, len(b.data))
	copy(data, b.data)
	return data
}

// Clone clones the board.
func (b *Board) Clone() *Board {
	data, it := makeBoard(int(b.size))
	z := makeZobrist(int(b.size))
	z.hash = b.hash
	copy(data, b.data)
	return &Board{
		size:    b.size,
		data:    data,
		it:      it,
		zobrist: z,
	}
}

// Eq checks that both boards hold the same position.
func (b *Board) Eq(other *Board) bool {
	if b == other {
		return true
	}
	// easy to check stuff
	if b.size != other.size || b.hash != other.hash {
		return false
	}
	for i, c := range b.data {
		if c != other.data[i] {
			return false
		}
	}
	return true
}

// Reset resets the board to all-Empty and zeroes the hash.
func (b *Board) Reset() {
	for i := range b.data {
		b.data[i] = game.None
	}
	b.zobrist.hash = 0
}

// Get returns the colour of the stone on p, or None for an empty point.
// Asking for an off-board point is a bug in the caller and panics.
func (b *Board) Get(p game.Single) game.Colour {
	if !b.isOnBoard(p) {
		panic(errors.Errorf("point %d is out of bounds on a %d×%d board", p, b.size, b.size))
	}
	return b.data[p]
}

// Place sets a stone of colour c on p and xors its entry into the hash. It
// is a pure mutation primitive: the caller is responsible for legality.
func (b *Board) Place(p game.Single, c game.Colour) {
	b.data[p] = c
	b.update(p, c)
}

// Remove lifts the stone on p, xoring its entry back out of the hash.
// Removing an empty point is a no-op.
func (b *Board) Remove(p game.Single) {
	c := b.data[p]
	if c == game.None {
		return
	}
	b.update(p, c)
	b.data[p] = game.None
}

// Format implements fmt.Formatter
func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		for _, row := range b.it {
			fmt.Fprint(s, "⎢ ")
			for _, col := range row {
				fmt.Fprintf(s, "%s ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}

// Itol takes a single and returns a coordinate.
func (b *Board) Itol(p game.Single) game.Coord {
	x := int16(int32(p) / b.size)
	y := int16(int32(p) % b.size)
	return game.Coord{X: x, Y: y}
}

// Ltoi takes a coordinate and returns a single.
func (b *Board) Ltoi(c game.Coord) game.Single { return game.Single(int32(c.X)*b.size + int32(c.Y)) }

func (b *Board) isOnBoard(p game.Single) bool { return p >= 0 && int32(p) < b.size*b.size }

func (b *Board) isCoordValid(c game.Coord) bool {
	x, y := int32(c.X), int32(c.Y)
	if x >= b.size || x < 0 {
		return false
	}
	if y >= b.size || y < 0 {
		return false
	}
	return true
}

// neighbours returns the up-to-four adjacent points of p. Off-board
// directions are reported as game.Invalid.
func (b *Board) neighbours(p game.Single) (retVal [4]game.Single) {
	c := b.Itol(p)
	for i, adj := range adjacents {
		a := c.Add(adj)
		if b.isCoordValid(a) {
			retVal[i] = b.Ltoi(a)
		} else {
			retVal[i] = game.Invalid
		}
	}
	return retVal
}

var adjacents = [4]game.Coord{
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
}

// Opponent returns the colour of the opponent player
func Opponent(c game.Colour) game.Colour {
	switch c {
	case game.White:
		return game.Black
	case game.Black:
		return game.White
	}
	panic("unreachable")
}

// isValid checks that a colour can actually be played
func isValid(c game.Colour) bool { return c == game.Black || c == game.White }
