package keypad

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the known key name closest to key, or "" when nothing is
// reasonably close.
func Suggest(key string) string {
	in := strings.ToLower(key)
	best, bestDist := "", -1
	for _, k := range KnownKeys() {
		if len(k) == 1 {
			continue
		}
		d := levenshtein.ComputeDistance(in, strings.ToLower(k))
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	if bestDist < 0 || bestDist > len(best)/2 {
		return ""
	}
	return best
}
