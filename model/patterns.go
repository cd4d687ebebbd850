package model

// AddGlider stamps a glider pattern with its top-left corner at (startX, startY).
func (b *Board) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			b.SetAlive(startX+x, startY+y, cell)
		}
	}
}

// AddBlinker stamps a horizontal blinker (period-2 oscillator) starting at (startX, startY).
func (b *Board) AddBlinker(startX, startY int) {
	b.SetAlive(startX, startY, true)
	b.SetAlive(startX+1, startY, true)
	b.SetAlive(startX+2, startY, true)
}

// AddBlock stamps a 2×2 block (still life) with its top-left corner at (startX, startY).
func (b *Board) AddBlock(startX, startY int) {
	b.SetAlive(startX, startY, true)
	b.SetAlive(startX+1, startY, true)
	b.SetAlive(startX, startY+1, true)
	b.SetAlive(startX+1, startY+1, true)
}
