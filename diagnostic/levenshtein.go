package diagnostic

// Suggestion returns the candidate closest to value, or an empty string when
// no candidate is within the edit distance allowed for a value of that length.
func Suggestion(value string, candidates []string) string {
	best, bestDist := "", -1
	for _, candidate := range candidates {
		dist := Levenshtein([]rune(value), []rune(candidate))
		if bestDist == -1 || dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	if bestDist == -1 {
		return ""
	}

	limit := 1
	if len(value) > 3 {
		limit = 2
	}
	if bestDist > limit {
		return ""
	}
	return best
}

// Levenshtein returns the edit distance between two rune slices using a
// single column of the distance matrix.
func Levenshtein(s1, s2 []rune) int {
	column := make([]int, len(s1)+1)
	for y := range column {
		column[y] = y
	}

	for x := 1; x <= len(s2); x++ {
		column[0] = x
		lastdiag := x - 1
		for y := 1; y <= len(s1); y++ {
			olddiag := column[y]
			cost := 1
			if s1[y-1] == s2[x-1] {
				cost = 0
			}
			column[y] = min(column[y]+1, column[y-1]+1, lastdiag+cost)
			lastdiag = olddiag
		}
	}
	return column[len(s1)]
}
