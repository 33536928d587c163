package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Rule decides a cell's next state from its live-neighbour count and its
// current state. The Grid never hard-codes a rule; callers pass one in,
// with rules.ApplyConwayRules as the canonical choice.
type Rule func(neighbours int, alive bool) bool

// Grid is one generation of the game board: height rows by width columns
// of Cells under toroidal wraparound. A Grid never changes once built;
// Next constructs a brand-new Grid and leaves the receiver intact, so the
// prior generation can be read concurrently without locking.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// RandomGrid builds a width x height grid, drawing each cell's state
// independently and uniformly from rng. The random source is injected
// rather than global so callers control determinism.
func RandomGrid(rng *rand.Rand, width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, errors.Errorf("[RandomGrid] grid dimensions must be positive, got %dx%d", width, height)
	}

	g := newGrid(width, height)
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Cell{Alive: rng.Intn(2) == 1}
		}
	}
	return g, nil
}

// GridFromRows builds a grid from explicit cell states, copying the input.
// Every row must have the same nonzero length.
func GridFromRows(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("[GridFromRows] grid must have at least one row and one column")
	}

	width := len(rows[0])
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Errorf("[GridFromRows] row %d has %d cells, want %d", y, len(row), width)
		}
		cells[y] = append([]Cell(nil), row...)
	}
	return &Grid{width: width, height: len(rows), cells: cells}, nil
}

// newGrid allocates an all-dead grid. Internal constructions trust their
// dimensions; the exported constructors validate.
func newGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{width: width, height: height, cells: cells}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Get returns the cell at (x, y). Coordinates must be in range.
func (g *Grid) Get(x, y int) Cell {
	return g.cells[y][x]
}

// Neighbours returns the number of live cells among the 8 positions
// toroidally adjacent to (x, y): column -1 wraps to width-1, column width
// wraps to 0, and likewise for rows, so edge cells see a full
// neighbourhood. Always in [0, 8].
func (g *Grid) Neighbours(x, y int) int {
	var (
		left   = wrap(x-1, g.width)
		right  = wrap(x+1, g.width)
		top    = wrap(y-1, g.height)
		bottom = wrap(y+1, g.height)
	)

	count := 0
	for _, c := range [8]Cell{
		g.cells[top][left], g.cells[top][x], g.cells[top][right],
		g.cells[y][left], g.cells[y][right],
		g.cells[bottom][left], g.cells[bottom][x], g.cells[bottom][right],
	} {
		if c.Alive {
			count++
		}
	}
	return count
}

// wrap maps an index one step outside [0, n) back onto the torus.
func wrap(i, n int) int {
	return (i + n) % n
}

// Next computes the successor generation under rule. Every neighbour count
// reads the receiver only, never the grid being built, so the whole
// generation advances atomically. Rows are split into one band per CPU and
// evaluated concurrently; the bands share no mutable state because all
// reads hit the immutable receiver and each band writes a disjoint slice
// of the target. pool may be nil.
func (g *Grid) Next(rule Rule, pool *GridPool) *Grid {
	next := g.target(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.nextRows(rule, next, startRow, endRow)
			return nil
		})
	}

	// Workers cannot fail; Wait only joins them.
	_ = eg.Wait()

	return next
}

// NextSequential is the single-threaded equivalent of Next. Both produce
// bit-identical grids for the same receiver and rule.
func (g *Grid) NextSequential(rule Rule, pool *GridPool) *Grid {
	next := g.target(pool)
	g.nextRows(rule, next, 0, g.height)
	return next
}

func (g *Grid) nextRows(rule Rule, next *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.width; x++ {
			next.cells[y][x] = Cell{Alive: rule(g.Neighbours(x, y), g.cells[y][x].Alive)}
		}
	}
}

// target produces the write destination for a generation in progress.
func (g *Grid) target(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return newGrid(g.width, g.height)
}

// reset re-shapes a pooled grid and kills all its cells.
func (g *Grid) reset(width, height int) {
	g.width = width
	g.height = height

	if len(g.cells) != height {
		g.cells = make([][]Cell, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]Cell, width)
		} else {
			for j := range g.cells[i] {
				g.cells[i][j] = Cell{}
			}
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x].Alive {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the grid state, used by the driver
// for stagnation detection.
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x].Alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid one row per line, 'O' for live cells and ' ' for
// dead ones, rows joined by CRLF with no trailing separator. Raw-mode
// terminals need the explicit \r, so the output can be written to one
// verbatim.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 2) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteString("\r\n")
		}
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.cells[y][x].Symbol())
		}
	}
	return b.String()
}
