package baduk

import (
	"reflect"
	"unsafe"

	"github.com/ganzhi/goban/game"
)

// makeBoard makes a board of NxN. Additionally, it also returns a 2D iterator
// that aliases the backing slice, one row per slice.
func makeBoard(size int) (board []game.Colour, iterator [][]game.Colour) {
	board = make([]game.Colour, size*size, size*size)
	iterator = make([][]game.Colour, size)
	for i := range iterator {
		start := i * size
		hdr := &reflect.SliceHeader{
			Data: uintptr(unsafe.Pointer(&board[start])),
			Len:  size,
			Cap:  size,
		}
		iterator[i] = *(*[]game.Colour)(unsafe.Pointer(hdr))
	}
	return
}

// makeZobristTable allocates the (size*size, 2) table of hash entries and an
// iterator over its rows, one row per board point.
func makeZobristTable(size int) (table []uint64, iterator [][]uint64) {
	const rowStride = 2 // black, white
	table = make([]uint64, size*size*rowStride, size*size*rowStride)
	iterator = make([][]uint64, size*size, size*size)
	for i := range iterator {
		start := i * rowStride
		hdr := &reflect.SliceHeader{
			Data: uintptr(unsafe.Pointer(&table[start])),
			Len:  rowStride,
			Cap:  rowStride,
		}
		iterator[i] = *(*[]uint64)(unsafe.Pointer(hdr))
	}
	return
}
