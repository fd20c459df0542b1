package chat

import "strings"

// Cutoff is the minimum similarity a catalog title must score against the
// query fragment to be accepted as a fuzzy match.
const Cutoff = 0.5

// Ratio computes the matching-blocks similarity of two strings: 2*M/T where
// M is the total length of all matched blocks and T the combined length.
// Operates on runes so non-ASCII titles score correctly.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	m := matchingSize(ra, rb, 0, len(ra), 0, len(rb))
	return 2 * float64(m) / float64(total)
}

func matchingSize(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	return size +
		matchingSize(a, b, alo, i, blo, j) +
		matchingSize(a, b, i+size, ahi, j+size, bhi)
}

// longestMatch finds the longest block of equal runes within the given
// windows, preferring the earliest occurrence in a, then in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				continue
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}

// BestTitleMatch scores the case-folded fragment against every case-folded
// title and returns the original-cased title of the best candidate at or
// above the cutoff. Earlier titles win ties.
func BestTitleMatch(fragment string, titles []string) (string, bool) {
	frag := strings.ToLower(fragment)
	best := -1
	bestScore := 0.0
	for i, t := range titles {
		score := Ratio(frag, strings.ToLower(t))
		if score >= Cutoff && score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return "", false
	}
	return titles[best], true
}
