package game

import (
	"sync"
)

// iterator pools, keyed by (rows, cols). Boards are small and iterators are
// only borrowed for the duration of a render, so pooling keeps the per-call
// garbage down.
var iterPool = make(map[int32]map[int32]*sync.Pool)

func borrowIterator(m, n int32) [][]Colour {
	if d, ok := iterPool[m]; ok {
		if d2, ok := d[n]; ok {
			return d2.Get().([][]Colour)
		}
	}
	retVal := make([][]Colour, m)
	for i := range retVal {
		retVal[i] = make([]Colour, n)
	}
	return retVal
}

// ReturnIterator returns an iterator borrowed with MakeIterator to its pool.
func ReturnIterator(m, n int32, it [][]Colour) {
	if _, ok := iterPool[m]; !ok {
		iterPool[m] = make(map[int32]*sync.Pool)
	}
	if _, ok := iterPool[m][n]; !ok {
		iterPool[m][n] = &sync.Pool{
			New: func() interface{} {
				retVal := make([][]Colour, m)
				for i := range retVal {
					retVal[i] = make([]Colour, n)
				}
				return retVal
			},
		}
	}
	iterPool[m][n].Put(it)
}
