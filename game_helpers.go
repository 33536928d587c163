package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Digital-Chaos/go-life/model"
	"github.com/Digital-Chaos/go-life/rules"
	"github.com/Digital-Chaos/go-life/utils"
)

// game owns the driver-side state: the current generation plus the pacing
// and bookkeeping around it. All simulation logic lives in model.
type game struct {
	config   utils.Config
	rng      *rand.Rand
	grid     *model.Grid
	pool     *model.GridPool
	stats    *utils.Stats
	detector utils.StagnationDetector

	generation     int
	stagnantCount  int
	lastRestartGen int
	restartReason  string
	lastFrame      time.Time
}

// newGame seeds the initial board from the injected random source.
func newGame(config utils.Config, rng *rand.Rand) (*game, error) {
	grid, err := model.RandomGrid(rng, config.Width, config.Height)
	if err != nil {
		return nil, err
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	return &game{
		config:    config,
		rng:       rng,
		grid:      grid,
		pool:      pool,
		stats:     utils.NewStats(),
		lastFrame: time.Now(),
	}, nil
}

// advance moves the simulation forward one generation, handling restart
// conditions along the way. It reports true once the run should end.
func (g *game) advance() (bool, error) {
	var (
		living     = g.grid.CountLivingCells()
		frameStart = time.Now()
	)
	g.stats.Update(g.generation, living, frameStart.Sub(g.lastFrame))
	g.lastFrame = frameStart

	if g.detector.Observe(g.grid.GetGridHash()) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
		return true, nil
	}

	if restart, reason := g.shouldRestart(living); restart {
		if !g.config.AutoRestart {
			return true, nil
		}
		return false, g.restart(reason)
	}

	// The old grid is only pooled after its successor replaces it.
	next := g.nextGrid()
	model.GridToPool(g.grid, g.pool)
	g.grid = next
	g.generation++

	return false, nil
}

// nextGrid advances the board under the standard Conway rule.
func (g *game) nextGrid() *model.Grid {
	if g.config.UseParallel {
		return g.grid.Next(rules.ApplyConwayRules, g.pool)
	}
	return g.grid.NextSequential(rules.ApplyConwayRules, g.pool)
}

// shouldRestart determines if the board needs reseeding
func (g *game) shouldRestart(living int) (bool, string) {
	if living == 0 {
		return true, "extinction"
	}
	if g.stagnantCount >= g.config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restart reseeds the board from the driver's random source.
func (g *game) restart(reason string) error {
	grid, err := model.RandomGrid(g.rng, g.config.Width, g.config.Height)
	if err != nil {
		return err
	}

	model.GridToPool(g.grid, g.pool)
	g.grid = grid
	g.detector.Reset()
	g.stagnantCount = 0
	g.lastRestartGen = g.generation
	g.restartReason = reason

	return nil
}

// draw paints the status line and the current board.
func (g *game) draw(screen tcell.Screen) {
	screen.Clear()

	status := fmt.Sprintf(" Gen: %d | Living: %d | %.1f gen/sec | Avg pop: %.1f | q to quit ",
		g.generation, g.grid.CountLivingCells(),
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
	if g.restartReason != "" {
		status += fmt.Sprintf("| restarted at gen %d: %s ", g.lastRestartGen, g.restartReason)
	}
	drawText(screen, 0, 0, tcell.StyleDefault.Reverse(true), status)

	for y := 0; y < g.grid.GetHeight(); y++ {
		for x := 0; x < g.grid.GetWidth(); x++ {
			if cell := g.grid.Get(x, y); cell.Alive {
				screen.SetContent(x, y+1, cell.Symbol(), nil, tcell.StyleDefault)
			}
		}
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
