package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"toruslife/rules"
)

// countNeighbors counts living cells in the eight positions around (x, y)
// with toroidal wraparound: each coordinate component is taken modulo the
// dimension, with negative results normalized by adding the dimension.
// Small boards are not special-cased, so for dim 1 a cell counts itself and
// for dim 2 neighbors are double-counted; uniform wraparound is intentional.
func (b *Board) countNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx) % b.dim
			ny := (y + dy) % b.dim
			if nx < 0 {
				nx += b.dim
			}
			if ny < 0 {
				ny += b.dim
			}
			if b.cells[ny][nx] {
				count++
			}
		}
	}
	return count
}

// NextGeneration computes the next generation of the board. The receiver is
// never mutated; the returned board is independently owned. Rows are split
// into bands evaluated in parallel, one worker per CPU, and every cell reads
// only the prior generation, so the result does not depend on worker count.
func (b *Board) NextGeneration(pool *BoardPool) *Board {
	var next *Board
	if pool != nil {
		next = pool.Get()
	} else {
		next = NewBoard(b.dim)
	}

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (b.dim + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.dim)
		)
		if startRow >= b.dim {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < b.dim; x++ {
					next.cells[y][x] = rules.Next(b.cells[y][x], b.countNeighbors(x, y))
				}
			}
			return nil
		})
	}

	// Workers never return errors; Wait is only the barrier.
	_ = eg.Wait()

	return next
}
