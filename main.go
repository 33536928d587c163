package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/Digital-Chaos/go-life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	if err = run(config); err != nil {
		fmt.Fprintf(os.Stderr, "go-life: %+v\n", err)
		os.Exit(1)
	}
}

// run owns the terminal for the lifetime of the simulation: it sets up the
// raw-mode screen, seeds the board, then advances and renders one
// generation per frame until quit or the generation limit.
func run(config utils.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[run] failed to create terminal screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[run] failed to initialise terminal screen")
	}
	defer screen.Fini()

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	game, err := newGame(config, rng)
	if err != nil {
		return err
	}

	quit := make(chan struct{})
	go pollInput(screen, quit)

	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	for {
		game.draw(screen)

		select {
		case <-quit:
			return nil
		case <-ticker.C:
			done, err := game.advance()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// pollInput forwards quit keys from the terminal to the main loop.
func pollInput(screen tcell.Screen, quit chan<- struct{}) {
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				ev.Rune() == 'q' || ev.Rune() == 'Q' {
				close(quit)
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
