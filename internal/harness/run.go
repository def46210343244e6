package harness

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/bulatmain/desrete-analysis-labs/internal/alphabet"
	"github.com/bulatmain/desrete-analysis-labs/internal/collector"
	"github.com/bulatmain/desrete-analysis-labs/internal/config"
	"github.com/bulatmain/desrete-analysis-labs/internal/grade"
	"github.com/bulatmain/desrete-analysis-labs/internal/lines"
	"github.com/bulatmain/desrete-analysis-labs/internal/logger"
	"github.com/bulatmain/desrete-analysis-labs/internal/match"
	"github.com/bulatmain/desrete-analysis-labs/internal/testfile"
)

// NewRunner picks the matcher named by c.Exec.
func NewRunner(c config.Config) grade.Runner {
	if c.Exec == config.ExecBuiltin {
		return match.Runner{}
	}
	return &grade.Exec{Path: c.Exec, Args: c.ExecArgs, Timeout: time.Duration(c.Timeout)}
}

// Grade feeds the prepared test to runner, keeps its output in
// c.ResultPath and compares it with the expected locations. Mismatches are
// part of the report; only failures to run or parse are errors.
func Grade(ctx context.Context, c config.Config, p *Prepared, runner grade.Runner) (collector.Report, error) {
	rep := collector.Report{
		Run:        p.Run,
		Seed:       p.Seed,
		Config:     p.Config,
		TextSize:   p.TextSize,
		Placed:     len(p.Placed),
		Accidental: len(p.Accidental),
	}

	got, err := execute(ctx, c.ResultPath(p.Run), p.Path, runner)
	if err != nil {
		err = fmt.Errorf("run %d: %w", p.Run, err)
		rep.Err = err.Error()
		return rep, err
	}

	cmp := grade.Compare(got, p.Want)
	rep.Reported = cmp.Got
	rep.Mismatches = cmp.Mismatches
	rep.Passed = cmp.Passed()

	for _, m := range cmp.Mismatches {
		logger.Warnf("run %d: WA: %s", p.Run, m)
	}
	if cmp.Got != cmp.Want {
		logger.Warnf("run %d: matcher reported %d occurrences, wanted %d", p.Run, cmp.Got, cmp.Want)
	}
	if !rep.Passed && len(p.Accidental) > 0 {
		logger.Warnf("run %d: filler produced %d extra occurrences at %v, the expected list does not include them",
			p.Run, len(p.Accidental), lines.Remap(p.LinePositions, p.Accidental))
	}
	if rep.Passed {
		logger.Infof("run %d: test passed", p.Run)
	}
	return rep, nil
}

func execute(ctx context.Context, resultPath, testPath string, runner grade.Runner) ([]lines.Location, error) {
	in, err := testfile.Open(testPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	out, err := os.Create(resultPath)
	if err != nil {
		return nil, err
	}
	if err := runner.Run(ctx, in, out); err != nil {
		out.Close()
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, err
	}
	return grade.ParseResultFile(resultPath)
}

// RunOne prepares and grades a single test.
func RunOne(ctx context.Context, c config.Config, run int, seed int64, runner grade.Runner) (collector.Report, error) {
	p, err := Prepare(c, run, seed)
	if err != nil {
		return collector.Report{Run: run, Seed: seed, Config: c.Gen(), Err: err.Error()}, err
	}
	logPrepared(p)
	return Grade(ctx, c, p, runner)
}

func logPrepared(p *Prepared) {
	logger.Infof("run %d: %s, seed %d", p.Run, p.Config, p.Seed)
	logger.Infof("run %d: pattern %s", p.Run, p.Pattern)
	logger.Infof("run %d: placed %d of %d at %v", p.Run, len(p.Placed), p.Config.OccurrenceCount, p.Placed)
	logger.Debugf("run %d: positions by lines %v", p.Run, p.Want)
}

// BaseSeed is c.Seed, or a time-based seed when it is zero.
func BaseSeed(c config.Config) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// RunAll runs c.Runs tests over c.Threads workers. Reports reach the
// collector (and c.Report) in run order whatever order workers finish in.
func RunAll(ctx context.Context, c config.Config, runner grade.Runner) (collector.Stats, error) {
	base := BaseSeed(c)
	logger.Infof("running %d tests against %v with base seed %d", c.Runs, runner, base)

	cIn, done, err := collector.New(c.Report)
	if err != nil {
		return collector.Stats{}, fmt.Errorf("collector: %w", err)
	}

	threads := min(c.Threads, c.Runs)
	jobs := make(chan int, threads)
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for run := range jobs {
				rep, err := RunOne(ctx, c, run, alphabet.DeriveSeed(base, uint64(run)), runner)
				if err != nil {
					logger.Errorf("%v", err)
					mu.Lock()
					errs = multierr.Append(errs, err)
					mu.Unlock()
				}
				// send even on error to advance deterministic ordering
				cIn <- collector.Msg{Idx: run, Report: rep}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for run := 0; run < c.Runs; run++ {
			select {
			case jobs <- run:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(cIn)
	stats := <-done

	if err := ctx.Err(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return stats, errs
}
