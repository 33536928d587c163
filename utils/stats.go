package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update folds one frame's measurements into the running stats.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// historyDepth bounds the stagnation window: deep enough to catch static
// boards and period-2/3 oscillators, which cover the common stuck states.
const historyDepth = 5

// StagnationDetector watches the stream of grid hashes for recent repeats.
// It lives outside the Grid because grids are immutable values; the driver
// feeds it one hash per generation.
type StagnationDetector struct {
	history []string
}

// Observe records the latest generation's hash and reports whether it
// repeats any of the previous three generations.
func (d *StagnationDetector) Observe(hash string) bool {
	stagnant := false
	for i := len(d.history) - 1; i >= 0 && i >= len(d.history)-3; i-- {
		if d.history[i] == hash {
			stagnant = true
			break
		}
	}

	d.history = append(d.history, hash)
	if len(d.history) > historyDepth {
		d.history = d.history[1:]
	}

	return stagnant
}

// Reset clears the window after a restart reseeds the board.
func (d *StagnationDetector) Reset() {
	d.history = nil
}
