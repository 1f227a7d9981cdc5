package baduk

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ganzhi/goban/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gameFrom builds a game whose board holds the given position. Only the
// hashes of positions reached through Apply take part in superko, which is
// exactly what a mid-game snapshot should look like.
func gameFrom(data []game.Colour) *Game {
	g := New(sqrt(len(data)))
	for i, c := range data {
		if c != game.None {
			g.board.Place(game.Single(i), c)
		}
	}
	return g
}

var applyTests = []struct {
	board   []game.Colour
	move    game.Move
	board2  []game.Colour // nil if invalid
	taken   int
	willErr bool
}{
	// placing on an empty point
	{
		board: []game.Colour{
			None, None, None,
			None, None, None,
			None, None, None,
		},
		move: game.Move{Colour: Black, Single: 4}, // {1, 1}
		board2: []game.Colour{
			None, None, None,
			None, Black, None,
			None, None, None,
		},
		taken:   0,
		willErr: false,
	},

	// basic capture
	// · O ·
	// O X O
	// · · ·
	//
	// becomes:
	//
	// · O ·
	// O · O
	// · O ·
	{
		board: []game.Colour{
			None, White, None,
			White, Black, White,
			None, None, None,
		},
		move: game.Move{Colour: White, Single: 7}, // {2, 1}
		board2: []game.Colour{
			None, White, None,
			White, None, White,
			None, White, None,
		},
		taken:   1,
		willErr: false,
	},

	// group capture
	// · O · ·
	// O X O ·
	// O X O ·
	// · · · ·
	//
	// becomes:
	//
	// · O · ·
	// O · O ·
	// O · O ·
	// · O · ·
	{
		board: []game.Colour{
			None, White, None, None,
			White, Black, White, None,
			White, Black, White, None,
			None, None, None, None,
		},
		move: game.Move{Colour: White, Single: 13}, // {3, 1}
		board2: []game.Colour{
			None, White, None, None,
			White, None, White, None,
			White, None, White, None,
			None, White, None, None,
		},
		taken:   2,
		willErr: false,
	},

	// edge case (literally AT THE EDGE)
	// · · · ·
	// · · · ·
	// · X X ·
	// X O O ·
	//
	// becomes:
	//
	// · · · ·
	// · · · ·
	// · X X ·
	// X · · X
	{
		board: []game.Colour{
			None, None, None, None,
			None, None, None, None,
			None, Black, Black, None,
			Black, White, White, None,
		},
		move: game.Move{Colour: Black, Single: 15}, // {3, 3}
		board2: []game.Colour{
			None, None, None, None,
			None, None, None, None,
			None, Black, Black, None,
			Black, None, None, Black,
		},
		taken:   2,
		willErr: false,
	},

	// two groups die at once
	// · X · X ·
	// X O · O X
	// · X · X ·
	// · · · · ·
	// · · · · ·
	//
	// becomes:
	//
	// · X · X ·
	// X · X · X
	// · X · X ·
	// · · · · ·
	// · · · · ·
	{
		board: []game.Colour{
			None, Black, None, Black, None,
			Black, White, None, White, Black,
			None, Black, None, Black, None,
			None, None, None, None, None,
			None, None, None, None, None,
		},
		move: game.Move{Colour: Black, Single: 7}, // {1, 2}
		board2: []game.Colour{
			None, Black, None, Black, None,
			Black, None, Black, None, Black,
			None, Black, None, Black, None,
			None, None, None, None, None,
			None, None, None, None, None,
		},
		taken:   2,
		willErr: false,
	},

	// suicide
	// · X ·
	// X · X
	// · X ·
	//
	// Disallowed:
	// · X ·
	// X O X
	// · X ·
	{
		board: []game.Colour{
			None, Black, None,
			Black, None, Black,
			None, Black, None,
		},
		move:    game.Move{Colour: White, Single: 4}, // {1, 1}
		board2:  nil,
		taken:   0,
		willErr: true,
	},

	// corner suicide: two neighbours are enough to smother a corner stone
	// · O ·
	// O · ·
	// · · ·
	{
		board: []game.Colour{
			None, White, None,
			White, None, None,
			None, None, None,
		},
		move:    game.Move{Colour: Black, Single: 0}, // {0, 0}
		board2:  nil,
		taken:   0,
		willErr: true,
	},

	// occupied point, independent of colour
	{
		board: []game.Colour{
			None, None, None,
			None, Black, None,
			None, None, None,
		},
		move:    game.Move{Colour: Black, Single: 4},
		board2:  nil,
		taken:   0,
		willErr: true,
	},

	// impossible move
	{
		board: []game.Colour{
			None, None, None,
			None, None, None,
			None, None, None,
		},
		move:    game.Move{Colour: Black, Single: 15}, // {3, 3}
		board2:  nil,
		taken:   0,
		willErr: true,
	},

	// impossible colour
	{
		board: []game.Colour{
			None, None, None,
			None, None, None,
			None, None, None,
		},
		move:    game.Move{Colour: None, Single: 4},
		board2:  nil,
		taken:   0,
		willErr: true,
	},
}

func TestGame_Apply(t *testing.T) {
	for testID, at := range applyTests {
		g := gameFrom(at.board)
		before := g.board.Clone()

		taken, err := g.Apply(at.move)

		switch {
		case at.willErr && err == nil:
			t.Errorf("Test %d: expected an error for \n%s", testID, g)
			continue
		case at.willErr && err != nil:
			// a rejected move leaves the board untouched
			if !g.board.Eq(before) {
				t.Errorf("Test %d: board changed by a rejected move:\n%s", testID, g)
			}
			continue
		case !at.willErr && err != nil:
			t.Errorf("Test %d: err %v", testID, err)
			continue
		}

		if taken != at.taken {
			t.Errorf("Test %d: expected %d to be taken. Got %d instead", testID, at.taken, taken)
		}
		if diff := cmp.Diff(at.board2, g.board.data); diff != "" {
			t.Errorf("Test %d: board mismatch (-want +got):\n%s", testID, diff)
		}
	}
}

func TestCaptureOverSuicide(t *testing.T) {
	assert := assert.New(t)

	// · X O ·
	// X O · O   black plays {1, 2}: surrounded on all four sides, but it
	// · X O ·   captures the white stone at {1, 1} first, so it is legal
	// · · · ·
	g := gameFrom([]game.Colour{
		None, Black, White, None,
		Black, White, None, White,
		None, Black, White, None,
		None, None, None, None,
	})

	assert.True(g.IsLegalMove(6, game.Black))
	taken, err := g.Apply(game.Move{Colour: Black, Single: 6})
	require.NoError(t, err)
	assert.Equal(1, taken)
	assert.Equal(game.None, g.board.Get(5), "the captured stone is lifted")
	assert.Equal(game.Black, g.board.Get(6))
}

func TestPositionalSuperko(t *testing.T) {
	assert := assert.New(t)
	g := New(4)

	// build a ko shape move by move so every position lands in the history
	//
	// · X O ·
	// X O · O
	// · X O ·
	// · · · ·
	setup := []game.Move{
		{Colour: Black, Single: 1},
		{Colour: White, Single: 2},
		{Colour: Black, Single: 4},
		{Colour: White, Single: 7},
		{Colour: Black, Single: 9},
		{Colour: White, Single: 10},
		{Colour: White, Single: 5},
	}
	for _, m := range setup {
		_, err := g.Apply(m)
		require.NoError(t, err, "setup move %v", m)
	}

	// black takes the ko
	taken, err := g.Apply(game.Move{Colour: Black, Single: 6})
	require.NoError(t, err)
	assert.Equal(1, taken)
	assert.Equal(game.None, g.board.Get(5))

	// white retaking immediately would recreate the previous position: the
	// move is otherwise perfectly legal (it captures, it is no suicide),
	// but the post-capture hash has been seen
	assert.False(g.IsLegalMove(5, game.White))
	before := g.board.Clone()
	assert.False(g.PlayMove(5, game.White))
	assert.True(g.board.Eq(before), "rejected move must not touch the board")

	// white may play the ko threat elsewhere instead
	assert.True(g.IsLegalMove(15, game.White))
}

func TestHistoryGrowth(t *testing.T) {
	assert := assert.New(t)
	g := New(5)
	assert.Equal(1, len(g.history), "the starting position itself is on record")

	require.True(t, g.PlayMove(0, game.Black))
	require.True(t, g.PlayMove(1, game.White))
	require.True(t, g.PlayMove(7, game.Black))
	assert.Equal(4, len(g.history), "one entry per played move")

	// rejected moves leave no trace
	assert.False(g.PlayMove(7, game.White))
	assert.Equal(4, len(g.history))

	// passes change no position, so they add nothing either
	require.True(t, g.PlayMove(game.Pass, game.White))
	assert.Equal(4, len(g.history))
}

func TestIsLegalMoveIdempotent(t *testing.T) {
	assert := assert.New(t)
	g := gameFrom([]game.Colour{
		None, Black, None,
		Black, None, Black,
		None, Black, None,
	})
	before := g.board.Clone()
	hist := len(g.history)

	first := g.IsLegalMove(4, game.White)
	second := g.IsLegalMove(4, game.White)
	assert.Equal(first, second)
	assert.False(first, "suicide stays illegal on re-ask")

	first = g.IsLegalMove(0, game.Black)
	second = g.IsLegalMove(0, game.Black)
	assert.Equal(first, second)
	assert.True(first, "connecting to a living group stays legal on re-ask")

	assert.True(g.board.Eq(before), "IsLegalMove must not change state")
	assert.Equal(hist, len(g.history))
}

func TestPass(t *testing.T) {
	assert := assert.New(t)
	g := New(9)

	assert.True(g.IsLegalMove(game.Pass, game.Black))
	assert.True(g.PlayMove(game.Pass, game.Black))
	assert.Equal(game.Zobrist(0), g.Hash(), "a pass mutates no board state")
	assert.Equal(1, g.MoveNumber())
	assert.Equal(1, g.Passes())
	assert.Equal(game.White, g.ToMove())

	assert.True(g.PlayMove(game.Pass, game.White))
	assert.Equal(2, g.Passes())

	assert.True(g.PlayMove(40, game.Black))
	assert.Equal(0, g.Passes(), "a stone resets the consecutive pass count")
}

func TestCapturesCounter(t *testing.T) {
	assert := assert.New(t)
	// · O ·
	// O X O
	// · · ·
	g := gameFrom([]game.Colour{
		None, White, None,
		White, Black, White,
		None, None, None,
	})
	require.True(t, g.PlayMove(7, game.White))
	assert.Equal(1, g.Captures(game.White))
	assert.Equal(0, g.Captures(game.Black))
}

func TestResizeClearRoundTrip(t *testing.T) {
	assert := assert.New(t)

	g := New(9)
	g.SetKomi(5.5)
	require.True(t, g.PlayMove(0, game.Black))
	require.True(t, g.PlayMove(1, game.White))

	g.Resize(13)
	g.Clear()

	want := New(13)
	want.SetKomi(5.5)
	assert.True(g.Eq(want), "Resize(13) then Clear() must equal a fresh New(13)")
	assert.Equal(game.Zobrist(0), g.Hash())
	assert.Equal(1, len(g.history), "history holds only the empty position")

	g2 := New(9)
	require.True(t, g2.PlayMove(40, game.Black))
	g2.Clear()
	assert.True(g2.Eq(New(9)))
}
