package baduk

import (
	"math/rand"

	"github.com/ganzhi/goban/game"
	"github.com/pkg/errors"
)

// zobristSeed pins the random table so that identical positions hash
// identically across games, processes and board resets. Replaying the same
// move sequence therefore always rebuilds the same position history.
const zobristSeed int64 = 0x6ba1c0de5eed

// zobrist is a data structure for calculating Zobrist hashes.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// The table is conceptually a (BOARDSIZE * BOARDSIZE, 2) matrix of uniform
// random 64-bit values, one per (point, stone colour) pair. It is stored as
// a flat backing slice plus an iterator for quick access (see naughty.go).
// The table is never mutated after construction; the hash changes only when
// a stone enters or leaves the board.
type zobrist struct {
	table []uint64   // backing storage
	it    [][]uint64 // iterator: one row of (black, white) entries per point
	hash  game.Zobrist
}

func makeZobrist(size int) zobrist {
	r := rand.New(rand.NewSource(zobristSeed))
	table, it := makeZobristTable(size)
	for i := range table {
		table[i] = r.Uint64()
	}
	return zobrist{
		table: table,
		it:    it,
	}
}

// entry returns the table value for a stone of colour c on point p. Empty
// points do not hash; asking for one is a bug in the caller.
func (z *zobrist) entry(p game.Single, c game.Colour) game.Zobrist {
	switch c {
	case game.Black:
		return game.Zobrist(z.it[p][0])
	case game.White:
		return game.Zobrist(z.it[p][1])
	}
	panic(errors.Errorf("no zobrist entry for %v at %d", c, p))
}

// update xors the entry for (p, c) into the hash and returns the new hash.
// As per the namesake, the stored hash is updated as a side effect.
func (z *zobrist) update(p game.Single, c game.Colour) game.Zobrist {
	z.hash ^= z.entry(p, c)
	return z.hash
}
