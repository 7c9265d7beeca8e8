package munkres

import (
	"math"

	"github.com/katalvlaran/tedkit/matrix"
)

const (
	maskNone  int8 = 0
	maskStar  int8 = 1
	maskPrime int8 = 2
)

// Solve finds a minimum-cost perfect assignment over the square cost
// matrix, returning assignment (assignment[row] = col) and the total
// cost of the chosen cells measured against the original, unmodified
// cost values.
//
// Complexity: O(n^3) per spec.md section 4.6's seven-step state
// machine (Step 6 runs at most n times between Step-3 re-entries).
func Solve(cost *matrix.Dense) ([]int, float64, error) {
	if cost == nil {
		return nil, 0, ErrNilCost
	}
	n := cost.Rows()
	if n != cost.Cols() {
		return nil, 0, ErrNotSquare
	}

	original := cost.Clone()
	work := cost.Clone()

	mask := make([][]int8, n)
	for i := range mask {
		mask[i] = make([]int8, n)
	}
	rowCover := make([]bool, n)
	colCover := make([]bool, n)

	stepRowMinima(work, n)
	stepInitialStars(work, mask, rowCover, colCover, n)
	clearCovers(rowCover, colCover)

	primeRow, primeCol := -1, -1
	step := 3
	for step != 7 {
		switch step {
		case 3:
			coverStarredColumns(mask, colCover, n)
			if countTrue(colCover) >= n {
				step = 7
			} else {
				step = 4
			}
		case 4:
			step, primeRow, primeCol = stepPrimeZeros(work, mask, rowCover, colCover, n)
		case 5:
			stepAugmentPath(mask, rowCover, colCover, primeRow, primeCol, n)
			step = 3
		case 6:
			stepAdjustByMin(work, rowCover, colCover, n)
			step = 4
		}
	}

	assignment := make([]int, n)
	var total float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if mask[i][j] == maskStar {
				assignment[i] = j
				total += original.ReadAt(i, j)
			}
		}
	}

	return assignment, total, nil
}

// stepRowMinima subtracts each row's minimum value from every cell in
// that row (Step 1).
func stepRowMinima(work *matrix.Dense, n int) {
	for i := 0; i < n; i++ {
		min := math.Inf(1)
		for j := 0; j < n; j++ {
			if v := work.ReadAt(i, j); v < min {
				min = v
			}
		}
		for j := 0; j < n; j++ {
			_ = work.Set(i, j, work.ReadAt(i, j)-min)
		}
	}
}

// stepInitialStars greedily stars one zero per row and column (Step 2).
func stepInitialStars(work *matrix.Dense, mask [][]int8, rowCover, colCover []bool, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if work.ReadAt(i, j) == 0 && !rowCover[i] && !colCover[j] {
				mask[i][j] = maskStar
				rowCover[i] = true
				colCover[j] = true
			}
		}
	}
}

func clearCovers(rowCover, colCover []bool) {
	for i := range rowCover {
		rowCover[i] = false
	}
	for j := range colCover {
		colCover[j] = false
	}
}

func clearPrimes(mask [][]int8, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if mask[i][j] == maskPrime {
				mask[i][j] = maskNone
			}
		}
	}
}

func countTrue(covers []bool) int {
	var c int
	for _, v := range covers {
		if v {
			c++
		}
	}

	return c
}

// coverStarredColumns covers every column containing a starred zero
// (Step 3).
func coverStarredColumns(mask [][]int8, colCover []bool, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if mask[i][j] == maskStar {
				colCover[j] = true
			}
		}
	}
}

// stepPrimeZeros finds an uncovered zero and primes it (Step 4). If
// its row already has a starred zero, the row is covered and that
// star's column uncovered, and the search continues (still step 4).
// If no starred zero shares the row, the primed cell becomes the path
// start for Step 5. If no uncovered zero remains, falls through to
// Step 6.
func stepPrimeZeros(work *matrix.Dense, mask [][]int8, rowCover, colCover []bool, n int) (nextStep, row, col int) {
	for {
		r, c, found := findUncoveredZero(work, rowCover, colCover, n)
		if !found {
			return 6, -1, -1
		}

		mask[r][c] = maskPrime
		starCol := findStarInRow(mask, r, n)
		if starCol >= 0 {
			rowCover[r] = true
			colCover[starCol] = false
			continue
		}

		return 5, r, c
	}
}

func findUncoveredZero(work *matrix.Dense, rowCover, colCover []bool, n int) (int, int, bool) {
	for i := 0; i < n; i++ {
		if rowCover[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if !colCover[j] && work.ReadAt(i, j) == 0 {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

func findStarInRow(mask [][]int8, row, n int) int {
	for j := 0; j < n; j++ {
		if mask[row][j] == maskStar {
			return j
		}
	}

	return -1
}

func findStarInCol(mask [][]int8, col, n int) int {
	for i := 0; i < n; i++ {
		if mask[i][col] == maskStar {
			return i
		}
	}

	return -1
}

func findPrimeInRow(mask [][]int8, row, n int) int {
	for j := 0; j < n; j++ {
		if mask[row][j] == maskPrime {
			return j
		}
	}

	return -1
}

// stepAugmentPath builds the alternating star/prime path starting at
// (row, col), unstars every starred zero and stars every primed zero
// on the path (Step 5), then clears covers and primes.
func stepAugmentPath(mask [][]int8, rowCover, colCover []bool, row, col, n int) {
	type cell struct{ r, c int }
	path := []cell{{row, col}}

	for {
		r := findStarInCol(mask, path[len(path)-1].c, n)
		if r < 0 {
			break
		}
		path = append(path, cell{r, path[len(path)-1].c})

		c := findPrimeInRow(mask, r, n)
		path = append(path, cell{r, c})
	}

	for _, p := range path {
		if mask[p.r][p.c] == maskStar {
			mask[p.r][p.c] = maskNone
		} else {
			mask[p.r][p.c] = maskStar
		}
	}

	clearCovers(rowCover, colCover)
	clearPrimes(mask, n)
}

// stepAdjustByMin finds the smallest uncovered value, adds it to every
// covered row and subtracts it from every uncovered column (Step 6).
func stepAdjustByMin(work *matrix.Dense, rowCover, colCover []bool, n int) {
	min := math.Inf(1)
	for i := 0; i < n; i++ {
		if rowCover[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if !colCover[j] {
				if v := work.ReadAt(i, j); v < min {
					min = v
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := work.ReadAt(i, j)
			if rowCover[i] {
				v += min
			}
			if !colCover[j] {
				v -= min
			}
			_ = work.Set(i, j, v)
		}
	}
}
