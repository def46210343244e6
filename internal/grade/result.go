package grade

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bulatmain/desrete-analysis-labs/internal/lines"
)

// ParseResultFile reads a matcher output file.
func ParseResultFile(path string) ([]lines.Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseResult(f)
}

// ParseResult reads "line, word" pairs, one per line, and returns them
// sorted. Blank lines are skipped.
func ParseResult(r io.Reader) ([]lines.Location, error) {
	var out []lines.Location
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		lineStr, wordStr, ok := strings.Cut(s, ",")
		if !ok {
			return nil, fmt.Errorf("result line %d: want \"line, word\", got %q", n, s)
		}
		line, err := strconv.Atoi(strings.TrimSpace(lineStr))
		if err != nil {
			return nil, fmt.Errorf("result line %d: %w", n, err)
		}
		word, err := strconv.Atoi(strings.TrimSpace(wordStr))
		if err != nil {
			return nil, fmt.Errorf("result line %d: %w", n, err)
		}
		out = append(out, lines.Location{Line: line, Word: word})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out, nil
}
