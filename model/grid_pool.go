package model

import "sync"

// GridToPool returns a superseded grid to the pool for reuse, tolerating a
// nil pool so callers need not branch on whether pooling is enabled.
func GridToPool(grid *Grid, pool *GridPool) {
	if grid == nil || pool == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles generation target grids so the driver's
// advance-and-discard loop does not allocate a fresh board every frame.
// Pooled grids are handed out only as the write target of a generation in
// progress; a grid must not be returned until its successor has replaced
// it, which keeps every grid visible to callers immutable.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid with the requested dimensions.
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(width, height)
	return g
}

// Put returns a grid to the pool once nothing references it
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
