package rules

/*
Next determines whether a cell is alive in the next generation.

A live cell survives with two or three live neighbors; any other count kills
it, by underpopulation or overcrowding. A dead cell comes to life with exactly
three live neighbors.
*/
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
