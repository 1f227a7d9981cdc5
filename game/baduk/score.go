package baduk

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/ganzhi/goban/game"
)

// Score returns the Tromp-Taylor area score of the current position from
// Black's point of view: (Black area) − (White area) − komi. Positive means
// Black leads by that margin.
//
// This is pure area scoring (https://senseis.xmp.net/?TrompTaylorRules):
// stones always count for their own colour regardless of capture history,
// and no dead-stone removal is attempted — Tromp-Taylor assumes play
// continued until no disputed territory remained.
func (g *Game) Score() float32 { return g.board.score(g.komi) }

func (b *Board) score(komi float32) float32 {
	var black, white float32
	for _, c := range b.data {
		switch c {
		case game.Black:
			black++
		case game.White:
			white++
		}
	}

	// each maximal empty region counts for a colour iff that colour alone
	// borders it; a region touching both colours (or, on an all-empty
	// board, neither) is neutral
	seen := make([]bool, len(b.data))
	for i := range b.data {
		if b.data[i] != game.None || seen[i] {
			continue
		}
		var region float32
		var bordersBlack, bordersWhite bool
		stack := []game.Single{game.Single(i)}
		seen[i] = true
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			region++
			for _, a := range b.neighbours(p) {
				if a == game.Invalid {
					continue
				}
				switch b.data[a] {
				case game.None:
					if !seen[a] {
						seen[a] = true
						stack = append(stack, a)
					}
				case game.Black:
					bordersBlack = true
				case game.White:
					bordersWhite = true
				}
			}
		}
		switch {
		case bordersBlack && !bordersWhite:
			black += region
		case bordersWhite && !bordersBlack:
			white += region
		}
	}
	return black - white - komi
}

// Result renders the score the way game records do: B+3.5, W+0.5, or 0 for
// a drawn position.
func (g *Game) Result() string {
	score := g.Score()
	switch {
	case score > 0:
		return fmt.Sprintf("B+%.1f", math32.Abs(score))
	case score < 0:
		return fmt.Sprintf("W+%.1f", math32.Abs(score))
	}
	return "0"
}
