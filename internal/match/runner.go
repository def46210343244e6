package match

import (
	"bufio"
	"context"
	"io"

	"github.com/bulatmain/desrete-analysis-labs/internal/lines"
	"github.com/bulatmain/desrete-analysis-labs/internal/testfile"
)

// Runner reads a test from stdin and prints "line, word" for every
// occurrence. It needs no external binary, so the pipeline can be checked
// on its own.
type Runner struct{}

func (Runner) String() string { return "builtin" }

func (Runner) Run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	f, err := testfile.Read(stdin)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	found := FindAll(f.Pattern, f.Text())
	bw := bufio.NewWriter(stdout)
	for _, loc := range lines.Remap(f.LinePositions(), found) {
		if _, err := bw.WriteString(loc.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
