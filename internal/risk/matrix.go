package risk

// Matrix counts scenarios per cell of the 3x4 risk matrix. Rows are
// consequence 1-3, columns probability 1-4, both zero-indexed.
type Matrix [3][4]int

// BuildMatrix tallies the unmitigated position of every assessment.
func BuildMatrix(assessments []Assessment) Matrix {
	var m Matrix
	for _, a := range assessments {
		row := a.AdjustedConsequence - 1
		col := a.AdjustedProbability - 1
		if row >= 0 && row < 3 && col >= 0 && col < 4 {
			m[row][col]++
		}
	}
	return m
}

// Count returns the total number of assessments placed in the matrix.
func (m Matrix) Count() int {
	total := 0
	for _, row := range m {
		for _, n := range row {
			total += n
		}
	}
	return total
}
