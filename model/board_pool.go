package model

import "sync"

// BoardPool recycles generation buffers so the pipeline does not allocate a
// fresh grid every cycle. All boards in one pool share a single dimension.
type BoardPool struct {
	dim  int
	pool sync.Pool
}

// NewBoardPool creates a pool producing boards of the given dimension.
func NewBoardPool(dim int) *BoardPool {
	return &BoardPool{
		dim: dim,
		pool: sync.Pool{
			New: func() interface{} {
				return NewBoard(dim)
			},
		},
	}
}

// Get retrieves a cleared board from the pool.
func (p *BoardPool) Get() *Board {
	b := p.pool.Get().(*Board)
	b.Clear()
	return b
}

// Put returns a board to the pool for reuse. A nil pool is a no-op so
// callers need not special-case unpooled operation.
func (p *BoardPool) Put(b *Board) {
	if p == nil || b == nil {
		return
	}
	p.pool.Put(b)
}
