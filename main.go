package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"toruslife/term"
	"toruslife/utils"
)

const configFile = "config.json"

func main() {
	os.Exit(run())
}

// run keeps os.Exit out of the deferred-cleanup path: the terminal session
// must be restored before the process exits, on success and failure alike.
func run() int {
	dim, err := utils.ParseDimension(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return 1
	}

	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println(err)
		return 1
	}
	config.Dimension = dim

	session, err := term.NewSession()
	if err != nil {
		fmt.Println(err)
		return 1
	}
	defer session.Close()

	game := NewGame(config, session, session.Keys())
	game.Run()

	session.Close()
	printSummary(game)

	return 0
}

// printSummary reports the run after the terminal has been restored.
func printSummary(game *Game) {
	stats := game.Stats()
	fmt.Printf("Ran %d generations in %.1f seconds (%.1f gen/sec)\n",
		stats.TotalGenerations, stats.Runtime().Seconds(), stats.GenerationsPerSecond)
	fmt.Printf("Final population: %d (avg %.1f)\n",
		stats.LastPopulation, stats.AveragePopulation)
}

// newRNG builds the seeded generator for board randomization. Seed zero
// means derive one from the clock.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
