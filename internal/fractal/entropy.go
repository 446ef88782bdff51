package fractal

// Quality thresholds for candidate acceptance. A candidate passes when
// at most a quarter of the probe is in-set and at least eight distinct
// iteration values appear.
const (
	maxInSetRatio   = 0.25
	minUniqueValues = 8
	probeGridSize   = 32
	maxAttempts     = 10
)

// GridEntropy measures how visually busy a grid is. inSetRatio is the
// fraction of cells that reached maxIterations, uniqueValues the count
// of distinct iteration values, and score a blended quality metric:
// 0.6×balance + 0.4×variety, where balance rewards an in-set share in
// [0.2,0.6] and variety saturates at 15 distinct values.
//
// The candidate filter in GenerateParams applies the two raw measures
// directly; the blended score is informational.
func GridEntropy(grid Grid, maxIterations int) (inSetRatio float64, uniqueValues int, score float64) {
	total := 0
	inSet := 0
	seen := make(map[int]struct{})
	for _, row := range grid {
		for _, v := range row {
			total++
			if v == maxIterations {
				inSet++
			}
			seen[v] = struct{}{}
		}
	}
	if total == 0 {
		return 0, 0, 0
	}

	inSetRatio = float64(inSet) / float64(total)
	uniqueValues = len(seen)

	var balance float64
	switch {
	case inSetRatio >= 0.2 && inSetRatio <= 0.6:
		balance = 1.0
	case inSetRatio < 0.1 || inSetRatio > 0.9:
		balance = 0.1
	default:
		balance = 0.5
	}

	variety := float64(uniqueValues) / 15
	if variety > 1 {
		variety = 1
	}

	score = 0.6*balance + 0.4*variety
	return inSetRatio, uniqueValues, score
}

// acceptable applies the raw candidate thresholds to a probe grid.
func acceptable(grid Grid, maxIterations int) bool {
	ratio, unique, _ := GridEntropy(grid, maxIterations)
	return ratio <= maxInSetRatio && unique >= minUniqueValues
}
