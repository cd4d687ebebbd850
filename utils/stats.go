package utils

import "time"

// Stats for performance monitoring across a run.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	LastPopulation       int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one completed cycle: the generation counter, the current
// population, and how long the cycle took.
func (s *Stats) Update(generation, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.LastPopulation = population
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

// Runtime returns how long the run has been going.
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
