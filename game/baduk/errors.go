package baduk

import (
	"fmt"

	"github.com/ganzhi/goban/game"
)

type moveError game.Move

func (err moveError) Error() string {
	return fmt.Sprintf("unable to make %v", game.Move(err))
}
