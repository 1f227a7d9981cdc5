package gtp

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/ganzhi/goban/game"
	"github.com/pkg/errors"
)

// Board sizes the point codec can express: column letters run A..Z with I
// skipped.
const (
	MinBoardSize = 2
	MaxBoardSize = 25
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	cmds := make([]string, 0, len(e.known))
	for c := range e.known {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	var buf bytes.Buffer
	for _, c := range cmds {
		fmt.Fprintf(&buf, "%v\n", c)
	}
	return buf.String()
}

func quit(e *Engine) string       { e.quitting = true; return "" }
func clearBoard(e *Engine) string { e.g.Clear(); return "" }
func showboard(e *Engine) string  { return fmt.Sprintf("\n%s", e.g) }

// finalScore reports the Tromp-Taylor score as a fixed one-decimal real,
// positive when Black leads.
func finalScore(e *Engine) string { return strconv.FormatFloat(float64(e.g.Score()), 'f', 1, 32) }

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func boardSize(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("not enough arguments for \"boardsize\"")
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "unable to parse the boardsize argument")
	}
	if size < MinBoardSize || size > MaxBoardSize {
		return "", errors.New("unacceptable size")
	}
	e.g.Resize(size)
	return "", nil
}

func komi(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("not enough arguments for \"komi\"")
	}

	k, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", errors.WithMessage(err, "unable to parse the komi argument")
	}

	e.g.SetKomi(k) // ignore errors because GTP says so. Accept komi even if ridiculous
	return "", nil
}

func play(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("not enough arguments for \"play\"")
	}
	c, err := ParseColour(args[0])
	if err != nil {
		return "", err
	}
	p, err := ParsePoint(args[1], e.g.Board().Size())
	if err != nil {
		return "", err
	}
	if _, err := e.g.Apply(game.Move{Colour: c, Single: p}); err != nil {
		return "", err
	}
	return "", nil
}

func genmove(e *Engine, args []string) (string, error) {
	return "", errors.New("move generation is not supported")
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"clear_board":      stdlib(clearBoard),
		"showboard":        stdlib(showboard),
		"final_score":      stdlib(finalScore),

		"known_command": stdlib2(knownCommand),
		"boardsize":     stdlib2(boardSize),
		"komi":          stdlib2(komi),
		"play":          stdlib2(play),
		"genmove":       stdlib2(genmove),
	}
}
