// Package testfile reads and writes the matcher input format: the pattern
// on the first line, then the text split over the following lines, words
// separated by single spaces.
package testfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/bulatmain/desrete-analysis-labs/internal/lines"
)

// WriteFile writes one test to `path`, creating or truncating it. Paths
// ending in .gz are gzip compressed.
func WriteFile[S any](path string, pattern, text []S, linePositions []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if !strings.HasSuffix(path, ".gz") {
		if err := Write(f, pattern, text, linePositions); err != nil {
			return err
		}
		return f.Close()
	}

	zw := gzip.NewWriter(f)
	if err := Write(zw, pattern, text, linePositions); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}

// Write streams the pattern line followed by one line per text segment
// starting at each of linePositions.
func Write[S any](w io.Writer, pattern, text []S, linePositions []int) error {
	bw := bufio.NewWriter(w)
	if err := writeLine(bw, pattern); err != nil {
		return err
	}
	for _, seg := range lines.Segments(text, linePositions) {
		if err := writeLine(bw, seg); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeLine[S any](bw *bufio.Writer, words []S) error {
	var buf []byte
	for i, s := range words {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendWord(buf, s)
	}
	buf = append(buf, '\n')
	_, err := bw.Write(buf)
	return err
}

func appendWord[S any](buf []byte, s S) []byte {
	switch v := any(s).(type) {
	case uint32:
		return strconv.AppendUint(buf, uint64(v), 10)
	case uint8:
		return strconv.AppendUint(buf, uint64(v), 10)
	case uint64:
		return strconv.AppendUint(buf, v, 10)
	case int:
		return strconv.AppendInt(buf, int64(v), 10)
	case string:
		return append(buf, v...)
	default:
		return fmt.Append(buf, v)
	}
}
