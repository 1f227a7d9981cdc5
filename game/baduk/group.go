package baduk

import (
	"github.com/ganzhi/goban/game"
	"github.com/pkg/errors"
)

// Group is a maximal 4-connected set of same-coloured stones. Groups are
// derived on demand from the occupancy and never stored, so there are no
// stale liberties to invalidate.
type Group map[game.Single]struct{}

// FindGroup returns the group of the stone on p. Calling it on an empty
// point is a bug in the caller and panics.
func (b *Board) FindGroup(p game.Single) Group {
	c := b.Get(p)
	if c == game.None {
		panic(errors.Errorf("empty point %d has no group", p))
	}
	return b.group(p, c, game.Invalid, game.None)
}

// HasLiberty reports whether any point adjacent to the group is empty.
func (b *Board) HasLiberty(g Group) bool {
	return b.hasLiberty(g, game.Invalid, game.None)
}

// at reads a point through a one-stone overlay: pretend is treated as
// holding pc regardless of what the board says. The overlay is how legality
// checks look one move ahead without mutating the board; pass game.Invalid
// to read the board as it is.
func (b *Board) at(p, pretend game.Single, pc game.Colour) game.Colour {
	if p == pretend {
		return pc
	}
	return b.data[p]
}

// group flood-fills same-coloured points starting at start, reading the
// board through the (pretend, pc) overlay. start must hold colour c under
// that overlay.
func (b *Board) group(start game.Single, c game.Colour, pretend game.Single, pc game.Colour) Group {
	retVal := Group{start: {}}
	stack := []game.Single{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range b.neighbours(p) {
			if a == game.Invalid {
				continue
			}
			if b.at(a, pretend, pc) != c {
				continue
			}
			if _, ok := retVal[a]; ok {
				continue
			}
			retVal[a] = struct{}{}
			stack = append(stack, a)
		}
	}
	return retVal
}

// hasLiberty reports whether the group has at least one empty adjacent
// point, reading the board through the (pretend, pc) overlay.
func (b *Board) hasLiberty(g Group, pretend game.Single, pc game.Colour) bool {
	for p := range g {
		for _, a := range b.neighbours(p) {
			if a == game.Invalid {
				continue
			}
			if b.at(a, pretend, pc) == game.None {
				return true
			}
		}
	}
	return false
}
