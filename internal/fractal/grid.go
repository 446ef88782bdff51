package fractal

// Grid holds escape iteration counts, indexed [y][x].
type Grid [][]int

// Size returns the grid side length.
func (g Grid) Size() int {
	return len(g)
}

// Rasterize renders p into a gridSize×gridSize iteration grid. Only
// the left half (columns 0..ceil(gridSize/2)-1) is computed; each
// value is mirrored into column gridSize-1-x of the same row, giving
// every family a horizontally balanced output.
func Rasterize(gridSize int, p Params) Grid {
	grid := make(Grid, gridSize)
	for y := range grid {
		grid[y] = make([]int, gridSize)
	}

	esc := p.Family.kernel()
	half := (gridSize + 1) / 2
	for y := 0; y < gridSize; y++ {
		py := (float64(y)/float64(gridSize) - 0.5) * p.Zoom
		for x := 0; x < half; x++ {
			px := (float64(x)/float64(gridSize) - 0.5) * p.Zoom
			v := esc(px, py, p.CRe, p.CIm, p.MaxIterations)
			grid[y][x] = v
			grid[y][gridSize-1-x] = v
		}
	}
	return grid
}
