package baduk

import (
	"testing"

	"github.com/ganzhi/goban/game"
	"github.com/stretchr/testify/assert"
)

func TestScoreEmptyBoard(t *testing.T) {
	// no stones: the single empty region borders nobody and is neutral, so
	// komi is all there is
	g := New(9)
	g.SetKomi(7.5)
	assert.Equal(t, float32(-7.5), g.Score())
	assert.Equal(t, "W+7.5", g.Result())
}

func TestScoreFullBoard(t *testing.T) {
	g := New(5)
	for i := 0; i < 25; i++ {
		g.board.Place(game.Single(i), game.Black)
	}
	assert.Equal(t, float32(25), g.Score())
	assert.Equal(t, "B+25.0", g.Result())
}

func TestScoreLoneStoneOwnsEverything(t *testing.T) {
	// one black stone: the whole empty region borders only black
	g := New(9)
	g.board.Place(40, game.Black)
	assert.Equal(t, float32(81), g.Score())
}

func TestScoreNeutralRegion(t *testing.T) {
	// a black and a white stone sharing one open region: the region scores
	// for neither, stones count for themselves
	g := New(9)
	g.board.Place(0, game.Black)
	g.board.Place(80, game.White)
	assert.Equal(t, float32(0), g.Score())
	assert.Equal(t, "0", g.Result())
}

func TestScoreWalledTerritory(t *testing.T) {
	// X wall on the middle column, one white stone on the right side:
	//
	// · · X · ·
	// · · X · ·
	// · · X · O
	// · · X · ·
	// · · X · ·
	//
	// left region (10 points) borders only black; right region borders both
	// colours and is neutral. black: 5 stones + 10 territory, white: 1 stone.
	g := New(5)
	for row := 0; row < 5; row++ {
		g.board.Place(game.Single(row*5+2), game.Black)
	}
	g.board.Place(game.Single(2*5+4), game.White)

	g.SetKomi(0.5)
	assert.Equal(t, float32(15-1-0.5), g.Score())
	assert.Equal(t, "B+13.5", g.Result())
}

func TestScoreIsCaptureBlind(t *testing.T) {
	// area scoring does not care how many prisoners were taken along the
	// way: only the final position counts
	g := New(3)
	// black captures one white stone in the corner
	// O X ·      · X ·
	// X · ·  →   X · ·
	// · · ·      · · ·
	g.board.Place(0, game.White)
	g.board.Place(1, game.Black)
	assert.True(t, g.PlayMove(3, game.Black))
	assert.Equal(t, 1, g.Captures(game.Black))
	assert.Equal(t, float32(9), g.Score(), "all nine points are black's")
}
