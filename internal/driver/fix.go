package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bankiru/PHP-CS-Fixer/internal/cache"
	"github.com/bankiru/PHP-CS-Fixer/internal/observ"
	"github.com/bankiru/PHP-CS-Fixer/internal/runner"
	"github.com/bankiru/PHP-CS-Fixer/internal/trace"
)

// ErrNoRunner is returned when Options.Runner is nil.
var ErrNoRunner = errors.New("driver: runner is not configured")

// Options configures a batch run.
type Options struct {
	Runner *runner.Runner
	// Cache holds clean verdicts; nil disables caching.
	Cache cache.Store
	// Ruleset is the resolved rule set fingerprint, Version the tool version.
	// Both go into every cache key.
	Ruleset string
	Version string

	DryRun     bool
	Jobs       int // 0: GOMAXPROCS
	Extensions []string
	Progress   ProgressSink
	Tracer     trace.Tracer  // nil: taken from the context
	Timer      *observ.Timer // optional phase timings
}

// FixPaths collects PHP files under paths and fixes them.
func FixPaths(ctx context.Context, paths []string, opts Options) (*Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	collected := opts.Timer.Track("collect")
	files, err := collectSourceFiles(ctx, paths, opts.Extensions)
	collected(strconv.Itoa(len(files)) + " files")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}
	return FixFiles(ctx, files, opts)
}

// FixFiles fixes files in parallel. Per-file failures land in the batch; the
// returned error is reserved for a missing runner or a cancelled context, in
// which case unprocessed files carry the context error.
func FixFiles(ctx context.Context, files []string, opts Options) (*Batch, error) {
	if opts.Runner == nil {
		return nil, ErrNoRunner
	}
	if opts.Cache == nil {
		opts.Cache = cache.NopStore{}
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.FromContext(ctx)
	}
	ctx = trace.WithTracer(ctx, tracer)

	started := time.Now()
	fixed := opts.Timer.Track("fix")
	span := trace.Begin(tracer, trace.ScopeDriver, "fix_files", trace.ParentID(ctx))
	ctx = trace.WithSpan(ctx, span)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusQueued})
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]runner.Result, len(files))
	done := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = fixOne(gctx, path, opts)
			done[i] = true
			return nil
		})
	}
	waitErr := g.Wait()

	for i, path := range files {
		if !done[i] {
			results[i] = runner.Result{Name: path, Status: runner.StatusError, Err: fmt.Errorf("driver: %s: %w", path, ctx.Err())}
		}
	}
	batch := newBatch(results, time.Since(started))
	span.WithAttr("files", strconv.Itoa(len(files))).
		WithAttr("changed", strconv.Itoa(len(batch.Changed()))).
		End(strconv.Itoa(len(batch.Failed())) + " failed")
	fixed(strconv.Itoa(len(files)) + " files")

	if waitErr != nil {
		return batch, waitErr
	}
	return batch, nil
}

func fixOne(ctx context.Context, path string, opts Options) runner.Result {
	start := time.Now()
	emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	content, err := os.ReadFile(path)
	if err != nil {
		res := runner.Result{Name: path, Status: runner.StatusError, Err: fmt.Errorf("driver: %w", err)}
		emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusError, Err: res.Err, Elapsed: time.Since(start)})
		return res
	}

	key := cache.Fingerprint(opts.Ruleset, opts.Version, content)
	if clean, ok := opts.Cache.Get(key); ok && clean {
		res := runner.Result{Name: path, Original: content, Fixed: content, Status: runner.StatusClean, Cached: true, Duration: time.Since(start)}
		emit(opts.Progress, Event{File: path, Stage: StageFix, Status: StatusDone, Cached: true, Elapsed: res.Duration})
		return res
	}

	emit(opts.Progress, Event{File: path, Stage: StageFix, Status: StatusWorking})
	res := opts.Runner.Fix(ctx, path, content)
	if res.Err != nil {
		// кэш не трогаем: ошибка может быть временной
		emit(opts.Progress, Event{File: path, Stage: StageFix, Status: StatusError, Err: res.Err, Elapsed: time.Since(start)})
		return res
	}

	if res.Status == runner.StatusFixed && !opts.DryRun {
		emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
		if err := writeBack(path, res.Fixed); err != nil {
			res.Status = runner.StatusError
			res.Err = fmt.Errorf("driver: %w", err)
			emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusError, Err: res.Err, Elapsed: time.Since(start)})
			return res
		}
	}

	// без фиксированной точки файл не считается чистым
	opts.Cache.Set(key, res.Status == runner.StatusClean && res.Warning == nil)
	if res.Status == runner.StatusFixed && !opts.DryRun && res.Warning == nil {
		opts.Cache.Set(cache.Fingerprint(opts.Ruleset, opts.Version, res.Fixed), true)
	}
	emit(opts.Progress, Event{File: path, Stage: StageFix, Status: StatusDone, Changed: res.Changed(), Elapsed: time.Since(start)})
	return res
}

// writeBack replaces path keeping its permission bits.
func writeBack(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, data, mode.Perm())
}
