// Command goban is a GTP front end to the baduk rules engine: one command
// per stdin line, one "="- or "?"-prefixed response per command. This is
// the loop the scoring harness drives with piped game records.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/ganzhi/goban/game/baduk"
	"github.com/ganzhi/goban/gtp"
)

var (
	boardSize = flag.Int("boardsize", 19, "initial board size")
	komi      = flag.Float64("komi", 7.5, "initial komi")
)

func main() {
	flag.Parse()

	g := baduk.New(*boardSize)
	g.SetKomi(*komi)
	e := gtp.New(g, "goban", "1.0", nil)
	in, out := e.Start()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		in <- scanner.Text()
		fmt.Print(<-out)
		if e.Done() {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
