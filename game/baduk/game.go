package baduk

import (
	"fmt"

	"github.com/ganzhi/goban/game"
	"github.com/pkg/errors"
)

// Game owns one board and its position history. Board and history live and
// die together: Resize and Clear rebuild both, a successful move mutates
// both, and nothing else touches either.
//
// A Game is single-threaded. Callers that want concurrent games must give
// each its own Game; there is nothing to share.
type Game struct {
	board   *Board
	history map[game.Zobrist]struct{} // positions seen so far, for superko
	moves   []game.Move

	komi       float32
	nextToMove game.Colour
	captures   [2]int32 // stones captured by black, white
	passes     int
}

// New constructs a game on an all-empty size×size board with an empty
// history (save for the starting position itself).
func New(size int) *Game {
	g := &Game{}
	g.reset(size)
	return g
}

func (g *Game) reset(size int) {
	b := newBoard(size)
	g.board = b
	g.history = map[game.Zobrist]struct{}{b.Hash(): {}}
	g.moves = nil
	g.captures = [2]int32{}
	g.nextToMove = game.Black
	g.passes = 0
}

// Resize throws the game away and starts over on a size×size board. Komi is
// kept; it is a property of the match, not of the position.
func (g *Game) Resize(size int) { g.reset(size) }

// Clear starts the game over on the same board size. Clear after Resize(n)
// is indistinguishable from a fresh New(n).
func (g *Game) Clear() { g.reset(int(g.board.size)) }

// Board returns the underlying board.
func (g *Game) Board() *Board { return g.board }

// Hash returns the hash of the current position.
func (g *Game) Hash() game.Zobrist { return g.board.Hash() }

// SetKomi sets the compensation added to White's score.
func (g *Game) SetKomi(komi float64) error { g.komi = float32(komi); return nil }

// Komi returns the current komi.
func (g *Game) Komi() float32 { return g.komi }

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() game.Colour { return g.nextToMove }

// MoveNumber returns the count of moves (passes included) made so far.
func (g *Game) MoveNumber() int { return len(g.moves) }

// Passes returns the number of consecutive passes ending the move list.
func (g *Game) Passes() int { return g.passes }

// Captures returns how many opposing stones the given colour has captured.
func (g *Game) Captures(c game.Colour) int {
	if !isValid(c) {
		return 0
	}
	return int(g.captures[c-1])
}

// IsLegalMove reports whether placing a stone of colour c on p would be
// legal. It is read-only and idempotent: asking twice with no intervening
// move yields the same answer and changes nothing. Pass is always legal.
func (g *Game) IsLegalMove(p game.Single, c game.Colour) bool {
	if p.IsPass() {
		return true
	}
	_, _, err := g.check(game.Move{Colour: c, Single: p})
	return err == nil
}

// PlayMove validates and commits a move, reporting success. It re-validates
// internally rather than trusting an earlier IsLegalMove call. On any
// illegal move it returns false and the game is left unmodified; that
// boolean is the sole error channel of this operation.
func (g *Game) PlayMove(p game.Single, c game.Colour) bool {
	_, err := g.Apply(game.Move{Colour: c, Single: p})
	return err == nil
}

// Apply commits a move and returns the number of stones captured by it, or
// an error describing why the move is illegal. The game is left untouched
// on error.
func (g *Game) Apply(m game.Move) (int, error) {
	if !isValid(m.Colour) {
		return 0, errors.WithMessage(moveError(m), "impossible colour")
	}
	if m.Single.IsPass() {
		// a pass mutates no board state
		g.passes++
		g.moves = append(g.moves, m)
		g.nextToMove = Opponent(m.Colour)
		return 0, nil
	}

	captures, hash, err := g.check(m)
	if err != nil {
		return 0, err
	}

	// the move is valid. Lift the prisoners, place the stone; the hash
	// follows along inside Remove and Place.
	for q := range captures {
		g.board.Remove(q)
	}
	g.board.Place(m.Single, m.Colour)
	g.history[hash] = struct{}{}
	g.captures[m.Colour-1] += int32(len(captures))
	g.passes = 0
	g.moves = append(g.moves, m)
	g.nextToMove = Opponent(m.Colour)
	return len(captures), nil
}

// check finds the captures a move would make, if it is valid. If the move
// is invalid an error is returned. check never mutates the game: the move
// is evaluated through a one-stone overlay and the post-move hash is
// computed by xor alone.
func (g *Game) check(m game.Move) (captures Group, hash game.Zobrist, err error) {
	b := g.board
	if !isValid(m.Colour) {
		return nil, 0, errors.WithMessage(moveError(m), "impossible colour")
	}
	if !b.isOnBoard(m.Single) {
		return nil, 0, errors.WithMessage(moveError(m), "point is off the board")
	}
	if b.data[m.Single] != game.None {
		return nil, 0, errors.WithMessage(moveError(m), "board location not empty")
	}

	// every opposing group whose last liberty is this point dies, all of
	// them at once, not just the first found
	opp := Opponent(m.Colour)
	for _, a := range b.neighbours(m.Single) {
		if a == game.Invalid || b.data[a] != opp {
			continue
		}
		if _, ok := captures[a]; ok {
			continue
		}
		grp := b.group(a, opp, m.Single, m.Colour)
		if !b.hasLiberty(grp, m.Single, m.Colour) {
			if captures == nil {
				captures = make(Group)
			}
			for q := range grp {
				captures[q] = struct{}{}
			}
		}
	}

	// captures resolve before the suicide check: a capturing move frees at
	// least one point next to the new stone, so it can never be suicide
	if len(captures) == 0 {
		own := b.group(m.Single, m.Colour, m.Single, m.Colour)
		if !b.hasLiberty(own, m.Single, m.Colour) {
			return nil, 0, errors.WithMessage(moveError(m), "suicide is not a valid option")
		}
	}

	// superko compares the hash strictly after captures are lifted. XOR
	// being its own inverse, the post-move hash is computable without
	// touching the board.
	hash = b.Hash() ^ b.entry(m.Single, m.Colour)
	for q := range captures {
		hash ^= b.entry(q, opp)
	}
	if _, seen := g.history[hash]; seen {
		return nil, 0, errors.WithMessage(moveError(m), "positional superko")
	}
	return captures, hash, nil
}

// Eq checks that both games are in the same state.
func (g *Game) Eq(other *Game) bool {
	if g == other {
		return true
	}
	if g.komi != other.komi ||
		g.nextToMove != other.nextToMove ||
		g.passes != other.passes ||
		g.captures != other.captures ||
		len(g.moves) != len(other.moves) ||
		len(g.history) != len(other.history) {
		return false
	}
	for i, m := range g.moves {
		if !m.Eq(other.moves[i]) {
			return false
		}
	}
	for h := range g.history {
		if _, ok := other.history[h]; !ok {
			return false
		}
	}
	return g.board.Eq(other.board)
}

// Format implements fmt.Formatter.
func (g *Game) Format(s fmt.State, c rune) {
	b := g.board
	it := game.MakeIterator(b.data, b.size, b.size)
	defer game.ReturnIterator(b.size, b.size, it)
	switch c {
	case 's', 'v':
		for _, row := range it {
			fmt.Fprint(s, "⎢ ")
			for _, col := range row {
				fmt.Fprintf(s, "%s ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}
