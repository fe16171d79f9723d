package game

import "golang.org/x/exp/rand"

type StateHash uint64

// zobristSeed is fixed so hashes are stable between runs.
const zobristSeed = 0x61626c6e

var (
	zobristCells [Size * Size][2]uint64
	zobristWhite uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for _, p := range positions {
		for side := range zobristCells[p.index()] {
			zobristCells[p.index()][side] = nonZero(r)
		}
	}
	zobristWhite = nonZero(r)
}

func nonZero(r *rand.Rand) uint64 {
	for {
		if v := r.Uint64(); v != 0 {
			return v
		}
	}
}

// Hash returns a Zobrist hash of the pieces and the side to move. Equal
// boards have equal hashes.
func (b *Board) Hash() StateHash {
	var h uint64
	for _, p := range positions {
		switch b.cells[p.index()] {
		case Black:
			h ^= zobristCells[p.index()][0]
		case White:
			h ^= zobristCells[p.index()][1]
		}
	}
	if b.next == White {
		h ^= zobristWhite
	}
	return StateHash(h)
}
