package grade

import (
	"fmt"

	"github.com/bulatmain/desrete-analysis-labs/internal/lines"
)

// Mismatch is one entry where the matcher disagrees with the expected list.
type Mismatch struct {
	Index int            `json:"index"`
	Got   lines.Location `json:"got"`
	Want  lines.Location `json:"want"`
}

func (m Mismatch) String() string {
	return fmt.Sprintf("entry %d: result (%v), wanted (%v)", m.Index, m.Got, m.Want)
}

// Report is the outcome of one comparison.
type Report struct {
	Got        int        `json:"got"`
	Want       int        `json:"want"`
	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

// Passed holds when every entry matches and nothing is missing or extra.
func (r Report) Passed() bool {
	return len(r.Mismatches) == 0 && r.Got == r.Want
}

// Compare walks both sorted lists side by side. Entries past the shorter
// list only show up as a count difference.
func Compare(got, want []lines.Location) Report {
	rep := Report{Got: len(got), Want: len(want)}
	n := min(len(got), len(want))
	for i := 0; i < n; i++ {
		if got[i] != want[i] {
			rep.Mismatches = append(rep.Mismatches, Mismatch{Index: i, Got: got[i], Want: want[i]})
		}
	}
	return rep
}
