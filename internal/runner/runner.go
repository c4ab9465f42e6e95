// Package runner drives the active fixers over one file until no fixer
// changes it anymore or the pass cap is reached.
package runner

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/lexer"
	"github.com/bankiru/PHP-CS-Fixer/internal/source"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
	"github.com/bankiru/PHP-CS-Fixer/internal/trace"
	"github.com/bankiru/PHP-CS-Fixer/internal/transform"
)

// DefaultMaxPasses is the pass cap used when Options.MaxPasses is zero.
const DefaultMaxPasses = 10

// Options configures a Runner.
type Options struct {
	MaxPasses    int
	Diff         bool
	Transformers transform.Pipeline // nil: transform.Builtin()
	Tracer       trace.Tracer       // nil: taken from the context
}

// Runner applies a resolved, read-only fixer list. It is safe for concurrent
// use: every Fix call owns its stream.
type Runner struct {
	fixers []fixer.Fixer
	opts   Options
}

// New creates a runner over fixers in the given order.
func New(fixers []fixer.Fixer, opts Options) *Runner {
	if opts.MaxPasses <= 0 {
		opts.MaxPasses = DefaultMaxPasses
	}
	if opts.Transformers == nil {
		opts.Transformers = transform.Builtin()
	}
	return &Runner{fixers: fixers, opts: opts}
}

// Fixers returns the active fixer list.
func (r *Runner) Fixers() []fixer.Fixer { return r.fixers }

// MaxPasses returns the effective pass cap.
func (r *Runner) MaxPasses() int { return r.opts.MaxPasses }

// Fix runs the fixed-point loop over content. Failures are reported in the
// result; they never abort anything beyond this file.
func (r *Runner) Fix(ctx context.Context, name string, content []byte) Result {
	started := time.Now()
	tracer := r.opts.Tracer
	if tracer == nil {
		tracer = trace.FromContext(ctx)
	}
	span := trace.BeginFile(tracer, name, trace.ParentID(ctx))

	res := r.fix(ctx, span, name, content)
	res.Duration = time.Since(started)
	span.WithAttr("passes", strconv.Itoa(res.Passes))
	if res.Err != nil {
		span.Fail(res.Err)
	} else {
		span.End(res.Status.String())
	}
	return res
}

func (r *Runner) fix(ctx context.Context, span *trace.Span, name string, content []byte) Result {
	res := Result{Name: name, Original: content, Fixed: content, Status: StatusClean}
	fail := func(err error) Result {
		res.Status, res.Err, res.Fixed, res.Applied = StatusError, err, content, nil
		return res
	}

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))
	stream, err := tokens.FromFile(file, lexer.Options{})
	if err != nil {
		return fail(fmt.Errorf("runner: %s: %w", name, err))
	}
	r.opts.Transformers.Run(stream)

	seen := make(map[string]bool, len(r.fixers))
	var lastChanged []string
	converged := false
	for pass := 1; pass <= r.opts.MaxPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return fail(fmt.Errorf("runner: %s: %w", name, err))
		}
		res.Passes = pass
		passSpan := span.Child(trace.ScopePass, "pass:"+strconv.Itoa(pass))
		lastChanged = lastChanged[:0]
		for _, f := range r.fixers {
			if !f.Candidate(stream) {
				continue
			}
			fixerSpan := passSpan.Child(trace.ScopeFixer, f.Name)
			before := stream.Signature()
			if err := apply(f, stream); err != nil {
				fixerSpan.Fail(err)
				passSpan.End("error")
				return fail(err)
			}
			stream.ClearEmptyTokens()
			if stream.Signature() == before {
				fixerSpan.End("")
				continue
			}
			fixerSpan.End("changed")
			lastChanged = append(lastChanged, f.Name)
			if !seen[f.Name] {
				seen[f.Name] = true
				res.Applied = append(res.Applied, f.Name)
			}
		}
		passSpan.End(strconv.Itoa(len(lastChanged)) + " changed")
		if len(lastChanged) == 0 {
			converged = true
			break
		}
	}
	if !converged {
		warn := &ConvergenceWarning{Passes: res.Passes, Fixers: append([]string(nil), lastChanged...)}
		res.Warning = warn
		span.ErrorPoint("convergence_warning", warn.Error(), nil)
	}

	fixed := stream.Code()
	if fixed == string(content) {
		// правки могли взаимно погаситься
		res.Applied = nil
		return res
	}
	res.Fixed = []byte(fixed)
	res.Status = StatusFixed
	if r.opts.Diff {
		res.Diff = Diff(string(content), fixed)
	}
	return res
}

// apply runs one fixer and turns panics into a FixerError.
func apply(f fixer.Fixer, s *tokens.Stream) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			cause, ok := rec.(error)
			if !ok {
				cause = fmt.Errorf("panic: %v", rec)
			}
			err = &FixerError{Fixer: f.Name, Err: cause}
		}
	}()
	if err := f.Apply(s); err != nil {
		return &FixerError{Fixer: f.Name, Err: err}
	}
	return nil
}

// Diff renders a unified diff between two texts.
func Diff(original, fixed string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(fixed),
		FromFile: "Original",
		ToFile:   "New",
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return diff
}
