package model

import "math/rand"

// Board represents the square game board. The dimension is fixed at
// construction and every row is fully allocated, so the grid is always
// exactly dim×dim.
type Board struct {
	dim   int
	cells [][]bool
}

// NewBoard creates a board of the given dimension with every cell dead.
// The dimension must already be validated by the caller.
func NewBoard(dim int) *Board {
	cells := make([][]bool, dim)
	for i := range cells {
		cells[i] = make([]bool, dim)
	}
	return &Board{
		dim:   dim,
		cells: cells,
	}
}

// Dim returns the board dimension.
func (b *Board) Dim() int {
	return b.dim
}

// Alive returns the state of a cell. Coordinates are not wrapped here;
// consumers that walk off the edge apply the modulus themselves.
func (b *Board) Alive(x, y int) bool {
	return b.cells[y][x]
}

// SetAlive sets a cell to alive (true) or dead (false). Out-of-range
// coordinates are ignored so pattern stamps near the edge are safe.
func (b *Board) SetAlive(x, y int, alive bool) {
	if x >= 0 && x < b.dim && y >= 0 && y < b.dim {
		b.cells[y][x] = alive
	}
}

// Randomize sets every cell independently to alive with the given
// probability, drawn from the provided seeded generator.
func (b *Board) Randomize(rng *rand.Rand, density float64) {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = rng.Float64() < density
		}
	}
}

// Snapshot returns an independently-owned copy of the board, safe to read
// concurrently with further mutation of the original.
func (b *Board) Snapshot() *Board {
	snap := NewBoard(b.dim)
	snap.CopyFrom(b)
	return snap
}

// CopyFrom replaces the board's contents wholesale with those of src.
// Both boards must have the same dimension.
func (b *Board) CopyFrom(src *Board) {
	for y := range b.cells {
		copy(b.cells[y], src.cells[y])
	}
}

// Clear resets every cell to dead.
func (b *Board) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = false
		}
	}
}

// CountAlive returns the total number of living cells.
func (b *Board) CountAlive() (count int) {
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] {
				count++
			}
		}
	}
	return
}
