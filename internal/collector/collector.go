package collector

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/bulatmain/desrete-analysis-labs/internal/gen"
	"github.com/bulatmain/desrete-analysis-labs/internal/grade"
)

// Report is the outcome of one generated test.
type Report struct {
	Run        int              `json:"run"`
	Seed       int64            `json:"seed"`
	Config     gen.Config       `json:"config"`
	TextSize   int              `json:"text_size"`
	Placed     int              `json:"placed"`
	Reported   int              `json:"reported"`
	Accidental int              `json:"accidental,omitempty"`
	Mismatches []grade.Mismatch `json:"mismatches,omitempty"`
	Passed     bool             `json:"passed"`
	Err        string           `json:"error,omitempty"`
}

// Msg delivers the report of run Idx.
type Msg struct {
	Idx    int
	Report Report
}

// Stats is emitted after the input channel closes.
type Stats struct {
	Runs        int `json:"runs"`
	Passed      int `json:"passed"`
	Failed      int `json:"failed"`
	Occurrences int `json:"occurrences"`
	Mismatches  int `json:"mismatches"`
	Accidental  int `json:"accidental"`
}

// New starts the collector goroutine.
//   - send Msg values on the returned chan, in any order
//   - close the chan when workers are done
//   - read the final Stats from the second chan
//
// When reportPath is not empty every report is written there as one JSON
// line, in Idx order.
func New(reportPath string) (chan<- Msg, <-chan Stats, error) {
	var (
		w       io.Writer = io.Discard
		closeFn func() error
	)
	if reportPath != "" {
		f, err := os.Create(reportPath)
		if err != nil {
			return nil, nil, err
		}
		w, closeFn = f, f.Close
	}
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	in := make(chan Msg)
	out := make(chan Stats, 1)

	go func() {
		defer close(out)
		if closeFn != nil {
			defer closeFn()
		}

		var stats Stats
		pending := make(map[int]Report)
		next := 0
		emit := func(r Report) {
			_ = enc.Encode(r)
			stats.Runs++
			if r.Passed {
				stats.Passed++
			} else {
				stats.Failed++
			}
			stats.Occurrences += r.Placed
			stats.Mismatches += len(r.Mismatches)
			stats.Accidental += r.Accidental
		}

		for msg := range in {
			if _, dup := pending[msg.Idx]; dup || msg.Idx < next {
				// late or repeated index: nothing to wait for
				emit(msg.Report)
				continue
			}
			pending[msg.Idx] = msg.Report
			for {
				r, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				emit(r)
				next++
			}
		}
		// gaps in Idx: flush the rest in order anyway
		rest := make([]int, 0, len(pending))
		for idx := range pending {
			rest = append(rest, idx)
		}
		sort.Ints(rest)
		for _, idx := range rest {
			emit(pending[idx])
		}
		_ = bw.Flush()
		out <- stats
	}()

	return in, out, nil
}
