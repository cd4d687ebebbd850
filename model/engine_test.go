package model

import (
	"math/rand"
	"testing"
)

// equalBoards reports the first differing cell, if any.
func equalBoards(t *testing.T, got, want *Board) {
	t.Helper()
	if got.Dim() != want.Dim() {
		t.Fatalf("dimension mismatch: got %d, want %d", got.Dim(), want.Dim())
	}
	for y := 0; y < want.Dim(); y++ {
		for x := 0; x < want.Dim(); x++ {
			if got.Alive(x, y) != want.Alive(x, y) {
				t.Fatalf("cell (%d,%d) alive=%v, want %v", x, y, got.Alive(x, y), want.Alive(x, y))
			}
		}
	}
}

// boardFromCells builds a board with exactly the given cells alive.
func boardFromCells(dim int, cells ...[2]int) *Board {
	b := NewBoard(dim)
	for _, c := range cells {
		b.SetAlive(c[0], c[1], true)
	}
	return b
}

func TestNextGenerationIsDeterministic(t *testing.T) {
	b := NewBoard(16)
	b.Randomize(rand.New(rand.NewSource(7)), 0.5)

	first := b.Snapshot().NextGeneration(nil)
	second := b.Snapshot().NextGeneration(nil)

	equalBoards(t, second, first)
}

func TestNextGenerationDoesNotMutateInput(t *testing.T) {
	b := NewBoard(8)
	b.Randomize(rand.New(rand.NewSource(3)), 0.5)
	before := b.Snapshot()

	b.NextGeneration(nil)

	equalBoards(t, b, before)
}

func TestBlockStillLife(t *testing.T) {
	b := NewBoard(6)
	b.AddBlock(2, 2)

	next := b.NextGeneration(nil)

	equalBoards(t, next, b)
}

func TestBlinkerOscillatesWithPeriodTwo(t *testing.T) {
	horizontal := boardFromCells(5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	vertical := boardFromCells(5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	step1 := horizontal.NextGeneration(nil)
	equalBoards(t, step1, vertical)

	step2 := step1.NextGeneration(nil)
	equalBoards(t, step2, horizontal)
}

func TestIsolatedCellDies(t *testing.T) {
	b := boardFromCells(5, [2]int{2, 2})

	next := b.NextGeneration(nil)

	if next.CountAlive() != 0 {
		t.Errorf("isolated cell survived, %d live cells", next.CountAlive())
	}
}

func TestOvercrowdedCellDies(t *testing.T) {
	// Center cell with four live neighbors.
	b := boardFromCells(7,
		[2]int{3, 3},
		[2]int{2, 2}, [2]int{4, 2}, [2]int{2, 4}, [2]int{4, 4},
	)

	next := b.NextGeneration(nil)

	if next.Alive(3, 3) {
		t.Error("cell with four neighbors survived")
	}
}

func TestReproduction(t *testing.T) {
	// (3,3) is dead with exactly three live neighbors.
	b := boardFromCells(7, [2]int{2, 2}, [2]int{3, 2}, [2]int{4, 2})

	next := b.NextGeneration(nil)

	if !next.Alive(3, 3) {
		t.Error("dead cell with three neighbors was not born")
	}
}

func TestNeighborCountingWrapsAroundEdges(t *testing.T) {
	// On a 3×3 torus every other cell is adjacent to (0,0).
	b := boardFromCells(3, [2]int{0, 0})

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := 1
			if x == 0 && y == 0 {
				want = 0
			}
			if got := b.countNeighbors(x, y); got != want {
				t.Errorf("countNeighbors(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestBorderStraddlingPatternEvolvesLikeCentered(t *testing.T) {
	// The same horizontal blinker, once centered and once straddling the
	// x edge. Their next generations must match cell for cell after
	// translating back.
	const dim = 5
	const shift = 3 // moves the centered blinker's midpoint from x=2 to x=0

	centered := boardFromCells(dim, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	straddling := boardFromCells(dim, [2]int{4, 2}, [2]int{0, 2}, [2]int{1, 2})

	nextCentered := centered.NextGeneration(nil)
	nextStraddling := straddling.NextGeneration(nil)

	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			translated := (x + shift) % dim
			if nextCentered.Alive(x, y) != nextStraddling.Alive(translated, y) {
				t.Fatalf("cell (%d,%d): centered=%v, straddling at (%d,%d)=%v",
					x, y, nextCentered.Alive(x, y), translated, y, nextStraddling.Alive(translated, y))
			}
		}
	}
}

func TestSingleCellBoardCountsItself(t *testing.T) {
	// With dim 1 every neighbor offset wraps back to the cell itself, so a
	// live cell sees eight neighbors and dies of overcrowding. Uniform
	// wraparound at small dimensions is deliberate.
	b := boardFromCells(1, [2]int{0, 0})

	if got := b.countNeighbors(0, 0); got != 8 {
		t.Errorf("countNeighbors(0,0) on 1×1 = %d, want 8", got)
	}
	if next := b.NextGeneration(nil); next.Alive(0, 0) {
		t.Error("lone cell on 1×1 board survived")
	}
}

func TestTwoByTwoDoubleCounts(t *testing.T) {
	// With dim 2 the eight offsets collapse onto the three other cells
	// (and never the cell itself), so a full board counts eight neighbors
	// everywhere and dies out.
	b := boardFromCells(2, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})

	if got := b.countNeighbors(0, 0); got != 8 {
		t.Errorf("countNeighbors(0,0) on full 2×2 = %d, want 8", got)
	}
	if next := b.NextGeneration(nil); next.CountAlive() != 0 {
		t.Errorf("full 2×2 board left %d live cells, want 0", next.CountAlive())
	}
}

func TestNextGenerationWithPool(t *testing.T) {
	pool := NewBoardPool(5)
	b := boardFromCells(5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	// Dirty the pool first; a recycled buffer must not leak cells.
	dirty := pool.Get()
	dirty.SetAlive(0, 0, true)
	pool.Put(dirty)

	next := b.NextGeneration(pool)
	equalBoards(t, next, boardFromCells(5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3}))
}

func TestGliderTranslatesAcrossTorus(t *testing.T) {
	// A glider returns to its shape every four generations, shifted one
	// cell down-right; on a torus it never falls off.
	b := NewBoard(8)
	b.AddGlider(2, 2)
	start := b.Snapshot()

	current := b
	for i := 0; i < 4; i++ {
		current = current.NextGeneration(nil)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sx := (x + 7) % 8
			sy := (y + 7) % 8
			if current.Alive(x, y) != start.Alive(sx, sy) {
				t.Fatalf("after 4 generations cell (%d,%d) alive=%v, want %v",
					x, y, current.Alive(x, y), start.Alive(sx, sy))
			}
		}
	}
}
