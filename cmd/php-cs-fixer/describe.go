package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/fixers"
	"github.com/bankiru/PHP-CS-Fixer/internal/runner"
)

var describeCmd = &cobra.Command{
	Use:   "describe <rule>",
	Short: "Describe a fixer or a group",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	registry, err := fixers.NewRegistry()
	if err != nil {
		return err
	}
	name := args[0]
	out := cmd.OutOrStdout()

	if strings.HasPrefix(name, "@") {
		members, ok := registry.Groups()[name]
		if !ok {
			// Find даёт подсказки и для групп
			_, err := registry.Find(name)
			return err
		}
		sorted := append([]string(nil), members...)
		sort.Strings(sorted)
		fmt.Fprintf(out, "Description of %s group.\n\n", name)
		for _, m := range sorted {
			fmt.Fprintf(out, " * %s\n", m)
		}
		return nil
	}

	f, err := registry.Find(name)
	if err != nil {
		return err
	}
	return describeFixer(cmd.Context(), out, f)
}

func describeFixer(ctx context.Context, out io.Writer, f fixer.Fixer) error {
	warn := color.New(color.FgRed, color.Bold)
	heading := color.New(color.Bold)

	fmt.Fprintf(out, "Description of %s rule.\n", heading.Sprint(f.Name))
	fmt.Fprintln(out, f.Description)
	if f.Risky {
		fmt.Fprintln(out, warn.Sprint("Fixer applying this rule is risky."))
	}
	if len(f.Groups) > 0 {
		fmt.Fprintf(out, "Groups: %s\n", strings.Join(f.Groups, ", "))
	}
	fmt.Fprintf(out, "Priority: %d\n", f.Priority)

	if len(f.OptionSpecs) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, heading.Sprint("Options:"))
		for _, spec := range f.OptionSpecs {
			line := fmt.Sprintf(" - %s: %s", spec.Name, spec.Description)
			if len(spec.Allowed) > 0 {
				line += fmt.Sprintf("; allowed: %s", strings.Join(spec.Allowed, ", "))
			}
			if spec.Default != nil {
				line += fmt.Sprintf("; defaults to %v", spec.Default)
			}
			fmt.Fprintln(out, line)
		}
	}

	for i, sample := range f.Samples {
		configured := f
		if len(sample.Options) > 0 && f.Configure != nil {
			c, err := f.Configure(sample.Options)
			if err != nil {
				return fmt.Errorf("sample %d: %w", i+1, err)
			}
			configured = c
		}
		res := runner.New([]fixer.Fixer{configured}, runner.Options{Diff: true}).Fix(ctx, "sample.php", []byte(sample.Before))
		if res.Err != nil {
			return fmt.Errorf("sample %d: %w", i+1, res.Err)
		}
		fmt.Fprintln(out)
		title := fmt.Sprintf("Example #%d", i+1)
		if len(sample.Options) > 0 {
			title += fmt.Sprintf(" with configuration %v", sample.Options)
		}
		fmt.Fprintln(out, heading.Sprint(title+":"))
		if res.Diff == "" {
			fmt.Fprintln(out, "   (no changes)")
			continue
		}
		for _, line := range strings.Split(strings.TrimRight(res.Diff, "\n"), "\n") {
			fmt.Fprintln(out, "   "+line)
		}
	}
	return nil
}
