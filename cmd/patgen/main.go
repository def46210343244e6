package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin"

	"github.com/bulatmain/desrete-analysis-labs/internal/alphabet"
	"github.com/bulatmain/desrete-analysis-labs/internal/config"
	"github.com/bulatmain/desrete-analysis-labs/internal/harness"
	"github.com/bulatmain/desrete-analysis-labs/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

// flags remembers which options were given on the command line, so that
// only those override the config file.
type flags struct {
	app *kingpin.Application
	set map[string]bool
}

func (f *flags) flag(name, help string) *kingpin.FlagClause {
	return f.app.Flag(name, help).Action(func(*kingpin.ParseContext) error {
		f.set[name] = true
		return nil
	})
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	f := &flags{
		app: kingpin.New("patgen", "Generate pattern matching tests with known occurrences and grade a matcher on them."),
		set: make(map[string]bool),
	}
	app := f.app
	app.Version(fmt.Sprintf("patgen %s (commit %s, %s)", version, commit, date))
	app.HelpFlag.Short('h')

	configPath := app.Flag("config", "YAML config file; flags override its values").ExistingFile()
	logLevel := app.Flag("log-level", "debug, info, warn or error (overrides LOG_LEVEL)").String()

	patternSize := f.flag("pattern-size", "pattern length in letters").Int()
	count := f.flag("count", "occurrences to place").Int()
	rate := f.flag("rate", "share of the text covered by occurrences, in [0,1]").Float64()
	lineCount := f.flag("lines", "line breaks to put into the text").Int()
	alpha := f.flag("alphabet", "letter source: uint or dna").Enum(config.AlphabetUint, config.AlphabetDNA)
	maxLetter := f.flag("max-letter", "largest letter of the uint alphabet").Uint32()
	gc := f.flag("gc", "GC share of the dna alphabet").Float64()
	execPath := f.flag("exec", `matcher executable, or "builtin" for the reference matcher`).String()
	execArgs := f.flag("arg", "argument passed to the matcher (repeatable)").Strings()
	timeout := f.flag("timeout", "per run matcher time limit, 0 for none").Duration()
	testFile := f.flag("test-file", "where to write the test (.gz compresses)").String()
	resultFile := f.flag("result-file", "where to keep the matcher output").String()
	report := f.flag("report", "write one JSON line per run here").String()
	seed := f.flag("seed", "base random seed, 0 picks one from the clock").Int64()
	runs := f.flag("runs", "number of tests").Int()
	threads := f.flag("threads", "tests run in parallel").Int()

	runCmd := app.Command("run", "generate tests, run the matcher and grade it").Default()
	genCmd := app.Command("generate", "only write tests and print the expected locations")

	cmd, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "patgen: %v\n", err)
		return exitUsage
	}
	if *logLevel != "" {
		logger.SetLevel(*logLevel)
	}

	c := config.Default()
	if *configPath != "" {
		if c, err = config.Load(*configPath); err != nil {
			logger.Errorf("config: %v", err)
			return exitUsage
		}
	}
	apply := func(name string, fn func()) {
		if f.set[name] {
			fn()
		}
	}
	apply("pattern-size", func() { c.PatternSize = *patternSize })
	apply("count", func() { c.OccurrenceCount = *count })
	apply("rate", func() { c.OccurrenceRate = *rate })
	apply("lines", func() { c.Lines = *lineCount })
	apply("alphabet", func() { c.Alphabet = *alpha })
	apply("max-letter", func() { c.MaxLetter = *maxLetter })
	apply("gc", func() { c.GC = *gc })
	apply("exec", func() { c.Exec = *execPath })
	apply("arg", func() { c.ExecArgs = *execArgs })
	apply("timeout", func() { c.Timeout = config.Duration(*timeout) })
	apply("test-file", func() { c.TestFile = *testFile })
	apply("result-file", func() { c.ResultFile = *resultFile })
	apply("report", func() { c.Report = *report })
	apply("seed", func() { c.Seed = *seed })
	apply("runs", func() { c.Runs = *runs })
	apply("threads", func() { c.Threads = *threads })

	if err := c.Validate(); err != nil {
		logger.Errorf("invalid configuration: %v", err)
		return exitUsage
	}

	switch cmd {
	case genCmd.FullCommand():
		return generate(c, stdout)
	case runCmd.FullCommand():
		return grade(ctx, c)
	}
	return exitUsage
}

func grade(ctx context.Context, c config.Config) int {
	start := time.Now()
	stats, err := harness.RunAll(ctx, c, harness.NewRunner(c))

	logger.Infof("runs: %d, passed: %d, failed: %d, occurrences: %d, mismatches: %d, accidental: %d (%s)",
		stats.Runs, stats.Passed, stats.Failed, stats.Occurrences, stats.Mismatches, stats.Accidental,
		time.Since(start).Round(time.Millisecond))
	if err != nil {
		logger.Errorf("%v", err)
		return exitFailed
	}
	if stats.Failed > 0 {
		return exitFailed
	}
	return exitOK
}

func generate(c config.Config, stdout io.Writer) int {
	base := harness.BaseSeed(c)
	for run := 0; run < c.Runs; run++ {
		p, err := harness.Prepare(c, run, alphabet.DeriveSeed(base, uint64(run)))
		if err != nil {
			logger.Errorf("%v", err)
			return exitFailed
		}
		logger.Infof("run %d: wrote %s, text size %d, placed %d, seed %d",
			run, p.Path, p.TextSize, len(p.Placed), p.Seed)
		if c.Runs > 1 {
			fmt.Fprintf(stdout, "# %s\n", p.Path)
		}
		for _, loc := range p.Want {
			fmt.Fprintln(stdout, loc)
		}
	}
	return exitOK
}
