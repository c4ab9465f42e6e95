package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bankiru/PHP-CS-Fixer/internal/cache"
	"github.com/bankiru/PHP-CS-Fixer/internal/config"
	"github.com/bankiru/PHP-CS-Fixer/internal/driver"
	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/fixers"
	"github.com/bankiru/PHP-CS-Fixer/internal/observ"
	"github.com/bankiru/PHP-CS-Fixer/internal/report"
	"github.com/bankiru/PHP-CS-Fixer/internal/runner"
	"github.com/bankiru/PHP-CS-Fixer/internal/source"
	"github.com/bankiru/PHP-CS-Fixer/internal/trace"
	"github.com/bankiru/PHP-CS-Fixer/internal/version"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] [path...]",
	Short: "Fix files or directories",
	Long: `Fix rewrites PHP files in place according to the configured rules.

Rules come from --rules, or from the nearest .php-cs-fixer.toml / .php-cs-fixer.yaml,
or default to @PSR2. With --dry-run nothing is written and the exit code is 8
when some file would change.`,
	RunE: runFix,
}

func init() {
	fixCmd.Flags().String("rules", "", `rules to apply: "a,-b,@PSR2" or a JSON object`)
	fixCmd.Flags().Bool("allow-risky", false, "allow risky fixers")
	fixCmd.Flags().Bool("dry-run", false, "only report files that would change")
	fixCmd.Flags().Bool("diff", false, "include a unified diff for every changed file")
	fixCmd.Flags().String("format", "", "report format (txt|json|xml)")
	fixCmd.Flags().String("using-cache", "", "use the cache (yes|no)")
	fixCmd.Flags().String("cache-file", "", "cache file path")
	fixCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	fixCmd.Flags().Int("max-passes", 0, "fixed-point pass cap per file (0=default)")
	fixCmd.Flags().String("config", "", "configuration file (default: discovered from the working directory)")
	fixCmd.Flags().String("ui", "off", "progress UI (auto|on|off)")
	fixCmd.Flags().Bool("show-progress", false, "print one status character per file")
	fixCmd.Flags().BoolP("verbose", "v", false, "list applied fixers per file")
}

// fixSettings is the merged result of config file and flags.
type fixSettings struct {
	rules      fixer.RuleSet
	paths      []string
	dryRun     bool
	diff       bool
	format     string
	usingCache bool
	cacheFile  string
	jobs       int
	maxPasses  int
	ui         uiMode
	progress   bool
	verbose    bool
}

func runFix(cmd *cobra.Command, args []string) error {
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	tracer := trace.FromContext(ctx)
	timer := observ.NewTimer()

	setupDone := timer.Track("setup")
	settings, err := loadFixSettings(cmd, args)
	if err != nil {
		return err
	}
	registry, err := fixers.NewRegistry()
	if err != nil {
		return err
	}
	resolved, err := registry.Resolve(settings.rules)
	if err != nil {
		return err
	}
	factory := report.NewFactory()
	if err := factory.RegisterBuiltins(); err != nil {
		return err
	}
	reporter, err := factory.ByFormat(settings.format)
	if err != nil {
		return err
	}
	store, err := openCache(settings, tracer)
	if err != nil {
		return err
	}
	setupDone(strings.Join(resolved.Names(), ","))

	opts := driver.Options{
		Runner: runner.New(resolved.Fixers, runner.Options{
			MaxPasses: settings.maxPasses,
			Diff:      settings.diff,
			Tracer:    tracer,
		}),
		Cache:   store,
		Ruleset: resolved.Fingerprint,
		Version: version.Plain(),
		DryRun:  settings.dryRun,
		Jobs:    settings.jobs,
		Tracer:  tracer,
		Timer:   timer,
	}

	batch, err := fixBatch(ctx, cmd, settings, opts)
	if err != nil {
		return err
	}

	cacheDone := timer.Track("cache")
	if err := store.Flush(); err != nil {
		trace.Error(tracer, trace.ScopeDriver, "cache_write_error", err.Error(), nil)
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
	}
	cacheDone("")

	reportDone := timer.Track("report")
	err = writeReport(cmd, reporter, settings, batch)
	reportDone(reporter.Format())
	if err != nil {
		return err
	}

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		printTimings(cmd.ErrOrStderr(), timer)
	}
	return exitFor(settings, batch)
}

func loadFixSettings(cmd *cobra.Command, args []string) (fixSettings, error) {
	flags := cmd.Flags()
	var cfg *config.Config
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fixSettings{}, err
		}
		cfg = loaded
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return fixSettings{}, err
		}
		loaded, _, err := config.LoadNearest(wd)
		if err != nil {
			return fixSettings{}, err
		}
		cfg = loaded
	}

	s := fixSettings{rules: cfg.RuleSet(), format: "txt", usingCache: true}
	if cfg != nil {
		if cfg.Format != "" {
			s.format = cfg.Format
		}
		if cfg.UsingCache != nil {
			s.usingCache = *cfg.UsingCache
		}
		s.cacheFile = cfg.CacheFile
		s.jobs = cfg.Jobs
		s.maxPasses = cfg.MaxPasses
		s.paths = cfg.Paths
	}

	if text, _ := flags.GetString("rules"); text != "" {
		rules, err := fixer.ParseRules(text)
		if err != nil {
			return fixSettings{}, err
		}
		s.rules.Rules = rules
	}
	if flags.Changed("allow-risky") {
		s.rules.AllowRisky, _ = flags.GetBool("allow-risky")
	}
	if v, _ := flags.GetString("format"); v != "" {
		s.format = v
	}
	if v, _ := flags.GetString("using-cache"); v != "" {
		switch strings.ToLower(v) {
		case "yes", "true", "on":
			s.usingCache = true
		case "no", "false", "off":
			s.usingCache = false
		default:
			return fixSettings{}, fmt.Errorf("invalid --using-cache value %q (expected yes|no)", v)
		}
	}
	if v, _ := flags.GetString("cache-file"); v != "" {
		s.cacheFile = v
	}
	if flags.Changed("jobs") {
		s.jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("max-passes") {
		s.maxPasses, _ = flags.GetInt("max-passes")
	}
	if s.jobs < 0 || s.maxPasses < 0 {
		return fixSettings{}, fmt.Errorf("--jobs and --max-passes must not be negative")
	}
	s.dryRun, _ = flags.GetBool("dry-run")
	s.diff, _ = flags.GetBool("diff")
	s.progress, _ = flags.GetBool("show-progress")
	s.verbose, _ = flags.GetBool("verbose")
	uiValue, _ := flags.GetString("ui")
	mode, err := readUIMode(uiValue)
	if err != nil {
		return fixSettings{}, err
	}
	s.ui = mode

	if len(args) > 0 {
		s.paths = args
	}
	if len(s.paths) == 0 {
		s.paths = []string{"."}
	}
	return s, nil
}

func openCache(s fixSettings, tracer trace.Tracer) (cache.Store, error) {
	if !s.usingCache {
		return cache.NopStore{}, nil
	}
	path := s.cacheFile
	if path == "" {
		p, err := cache.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return cache.OpenFile(path, tracer), nil
}

func fixBatch(ctx context.Context, cmd *cobra.Command, s fixSettings, opts driver.Options) (*driver.Batch, error) {
	if !quiet(cmd) && shouldUseTUI(s.ui) {
		files, err := driver.Collect(ctx, s.paths, nil)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, driver.ErrNoSourceFiles
		}
		return runFixWithUI(ctx, "php-cs-fixer", files, opts)
	}
	if s.progress && !quiet(cmd) {
		opts.Progress = progressPrinter(cmd.ErrOrStderr())
		defer fmt.Fprintln(cmd.ErrOrStderr())
	}
	return driver.FixPaths(ctx, s.paths, opts)
}

// progressPrinter prints "." for clean, "F" for fixed and "E" for failed files.
func progressPrinter(out io.Writer) driver.ProgressSink {
	var mu sync.Mutex
	fixed := color.New(color.FgYellow)
	failed := color.New(color.FgRed)
	return driver.SinkFunc(func(ev driver.Event) {
		var mark string
		switch {
		case ev.Status == driver.StatusError:
			mark = failed.Sprint("E")
		case ev.Status != driver.StatusDone:
			return
		case ev.Changed:
			mark = fixed.Sprint("F")
		default:
			mark = "."
		}
		mu.Lock()
		fmt.Fprint(out, mark)
		mu.Unlock()
	})
}

func writeReport(cmd *cobra.Command, reporter report.Reporter, s fixSettings, batch *driver.Batch) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	summary := report.Summary{
		Changed:           relativeNames(batch.Changed()),
		Errors:            relativeNames(batch.Failed()),
		Cached:            relativeNames(batch.Cached()),
		DryRun:            s.dryRun,
		Decorated:         !color.NoColor,
		ShowAppliedFixers: s.verbose,
		ShowDiff:          s.diff,
		Duration:          batch.Duration,
		MemoryMB:          float64(mem.Sys) / 1024 / 1024,
	}
	for _, res := range relativeNames(batch.Warnings()) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %v\n", res.Name, res.Warning)
	}

	text, err := reporter.Generate(summary)
	if err != nil {
		return err
	}
	if quiet(cmd) && reporter.Format() == "txt" {
		return nil
	}
	out := cmd.OutOrStdout()
	if _, err := io.WriteString(out, text); err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		_, err = io.WriteString(out, "\n")
	}
	return err
}

func relativeNames(results []runner.Result) []runner.Result {
	wd, err := os.Getwd()
	if err != nil {
		return results
	}
	for i := range results {
		results[i].Name = source.DisplayPath(results[i].Name, wd)
	}
	return results
}

func exitFor(s fixSettings, batch *driver.Batch) error {
	code := exitOK
	if len(batch.Failed()) > 0 {
		code |= exitFailure
	}
	if s.dryRun && len(batch.Changed()) > 0 {
		code |= exitHasDiffs
	}
	if code == exitOK {
		return nil
	}
	return &exitError{code: code}
}
