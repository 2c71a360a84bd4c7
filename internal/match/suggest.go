package match

// DefaultThreshold is the minimal similarity for a name to be suggested.
const DefaultThreshold = 0.6

// Suggest returns the candidate closest to name after normalization, provided its
// similarity reaches threshold. Ties keep the earliest candidate.
func Suggest(name string, candidates []string, threshold float64) (string, bool) {
	norm := NormalizeIdent(name)

	best, bestScore := "", threshold
	found := false

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(norm, NormalizeIdent(c))
		if score > bestScore || (!found && score == bestScore) {
			best, bestScore, found = c, score, true
		}
	}

	return best, found
}
