// Package gtp is a line-oriented command adapter for the baduk rules
// engine, speaking the Go Text Protocol.
// https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html
//
// The adapter owns all of the text handling: the engine underneath reports
// only booleans and errors, and this package turns them into "="- and
// "?"-prefixed response lines.
package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ganzhi/goban/game/baduk"
	"github.com/pkg/errors"
)

type Engine struct {
	g *baduk.Game

	known map[string]Command

	ch  chan string
	ret chan string

	name, version string
	quitting      bool
}

// New creates an Engine around g. A nil known installs StandardLib.
func New(g *baduk.Game, name, version string, known map[string]Command) *Engine {
	if g == nil {
		g = baduk.New(19)
	}
	if known == nil {
		known = StandardLib()
	}
	return &Engine{
		g:       g,
		known:   known,
		name:    name,
		version: version,
	}
}

// Game returns the game the engine drives.
func (e *Engine) Game() *baduk.Game { return e.g }

// Start spins up the command loop. One command goes into input per line;
// exactly one response (possibly empty) comes out of output for it. The
// goroutine owns the Game, so every operation on it — resizes included —
// is serialised through the input channel.
func (e *Engine) Start() (input, output chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

// Done reports whether a quit command has been processed. It is safe to
// call after receiving the response to the command in question.
func (e *Engine) Done() bool { return e.quitting }

func (e *Engine) start() {
	for cmd := range e.ch {
		id, x, args, err := e.parse(cmd)
		switch {
		case err != nil:
			e.ret <- handleErr(id, err)
			continue
		case x == nil:
			// an empty or id-only line gets an empty response, which is
			// GNUGo's behaviour
			e.ret <- ""
			continue
		}
		id, result, err := x.Do(id, args, e)
		e.ret <- handleResult(id, result, err)
		if e.quitting {
			close(e.ret)
			return
		}
	}
	close(e.ret)
}

func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	cmd = preprocess(cmd)
	tokens := strings.Fields(cmd)
	id = -1
	if len(tokens) == 0 {
		return id, nil, nil, nil
	}
	if n, err2 := strconv.Atoi(tokens[0]); err2 == nil {
		// we've consumed the optional ID
		id = n
		tokens = tokens[1:]
	}

	if len(tokens) == 0 {
		return id, nil, nil, nil // GNUGo does nothing when given a bare ID
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return id, x, args, nil
}

func preprocess(a string) string {
	return strings.ToLower(strings.TrimSpace(a))
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
