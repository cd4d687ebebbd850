package main

import (
	"time"

	"golang.org/x/sync/errgroup"

	"toruslife/model"
	"toruslife/term"
	"toruslife/utils"
)

// Game drives the simulation: it owns the authoritative board and overlaps
// rendering of each frame with computation of the following generation.
type Game struct {
	config   utils.Config
	board    *model.Board
	pool     *model.BoardPool
	renderer *model.Renderer
	keys     <-chan rune
	stats    *utils.Stats

	generation int
}

// NewGame creates a game over a freshly randomized board of the configured
// dimension.
func NewGame(config utils.Config, display model.Display, keys <-chan rune) *Game {
	board := model.NewBoard(config.Dimension)
	board.Randomize(newRNG(config.Seed), config.Density)

	return &Game{
		config:   config,
		board:    board,
		pool:     model.NewBoardPool(config.Dimension),
		renderer: model.NewRenderer(display, config.FrameDelay),
		keys:     keys,
		stats:    utils.NewStats(),
	}
}

// Run executes cycles until the quit key arrives. Each cycle advances the
// board once synchronously, then renders that generation while the next one
// is computed concurrently; both tasks read their own snapshot, so neither
// races the other or the authoritative board. Two generations therefore
// elapse per rendered frame, and the frame on screen is always one
// generation behind the board being computed; this matches the pipeline's
// original behavior and is kept deliberately.
func (g *Game) Run() {
	for running := true; running; {
		select {
		case key := <-g.keys:
			if key == term.QuitKey {
				running = false
				continue
			}
			// Any other key is ignored.
		default:
		}

		cycleStart := time.Now()

		// Prime: the frame about to render already reflects one elapsed
		// generation.
		primed := g.board.NextGeneration(g.pool)
		g.pool.Put(g.board)
		g.board = primed
		g.generation++

		var (
			eg          errgroup.Group
			renderSnap  = g.board.Snapshot()
			computeSnap = g.board.Snapshot()
			next        *model.Board
		)
		eg.Go(func() error {
			g.renderer.Draw(renderSnap)
			return nil
		})
		eg.Go(func() error {
			next = computeSnap.NextGeneration(g.pool)
			return nil
		})
		// Barrier: the sole suspension point in the pipeline.
		_ = eg.Wait()

		g.pool.Put(g.board)
		g.pool.Put(renderSnap)
		g.pool.Put(computeSnap)
		g.board = next
		g.generation++

		g.stats.Update(g.generation, g.board.CountAlive(), time.Since(cycleStart))
	}
}

// Stats returns the run statistics for the teardown summary.
func (g *Game) Stats() *utils.Stats {
	return g.stats
}
