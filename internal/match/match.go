// Package match is the reference matcher: Knuth-Morris-Pratt over any
// comparable symbol type, plus a Runner that answers a test file the way
// the external matcher is expected to.
package match

// Plan precompiles a pattern for fast reuse over many texts.
type Plan[S comparable] struct {
	pattern []S
	border  []int // border[i]: longest proper border of pattern[:i+1]
}

func NewPlan[S comparable](pattern []S) Plan[S] {
	border := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = border[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		border[i] = k
	}
	return Plan[S]{pattern: pattern, border: border}
}

// FindAll returns every offset where the pattern starts, overlapping
// occurrences included, in ascending order. An empty pattern matches nowhere.
func (p Plan[S]) FindAll(text []S) []int {
	n := len(p.pattern)
	if n == 0 || len(text) < n {
		return nil
	}
	var out []int
	k := 0
	for i, s := range text {
		for k > 0 && s != p.pattern[k] {
			k = p.border[k-1]
		}
		if s == p.pattern[k] {
			k++
		}
		if k == n {
			out = append(out, i-n+1)
			k = p.border[k-1]
		}
	}
	return out
}

// FindAll compiles pattern per call.
func FindAll[S comparable](pattern, text []S) []int {
	return NewPlan(pattern).FindAll(text)
}

// Unplaced returns the offsets in found that are not in placed. Both must be
// sorted; the result lists occurrences the filler produced by accident.
func Unplaced(found, placed []int) []int {
	var out []int
	j := 0
	for _, f := range found {
		for j < len(placed) && placed[j] < f {
			j++
		}
		if j < len(placed) && placed[j] == f {
			continue
		}
		out = append(out, f)
	}
	return out
}
