package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Text is the human-readable reporter.
type Text struct{}

func (Text) Format() string { return "txt" }

func (Text) Generate(s Summary) (string, error) {
	comment := color.New(color.FgYellow)
	failed := color.New(color.FgRed)
	if s.Decorated {
		comment.EnableColor()
		failed.EnableColor()
	} else {
		comment.DisableColor()
		failed.DisableColor()
	}

	var b strings.Builder
	for i, res := range s.Changed {
		fmt.Fprintf(&b, "%4d) %s", i+1, res.Name)
		if s.ShowAppliedFixers {
			applied := strings.Join(res.Applied, ", ")
			if s.Decorated {
				b.WriteString(" (" + comment.Sprint(applied) + ")")
			} else {
				b.WriteString(" " + applied)
			}
		}
		if s.ShowDiff {
			b.WriteString("\n")
			b.WriteString(comment.Sprint("      ---------- begin diff ----------") + "\n")
			b.WriteString(res.Diff + "\n")
			b.WriteString(comment.Sprint("      ---------- end diff ----------") + "\n")
		}
		b.WriteString("\n")
	}

	if len(s.Errors) > 0 {
		b.WriteString("\n" + failed.Sprint("Files that were not fixed due to errors:") + "\n")
		width := 0
		for _, res := range s.Errors {
			width = max(width, runewidth.StringWidth(res.Name))
		}
		for i, res := range s.Errors {
			fmt.Fprintf(&b, "%4d) %s  %v\n", i+1, runewidth.FillRight(res.Name, width), res.Err)
		}
		b.WriteString("\n")
	}

	if len(s.Cached) > 0 {
		fmt.Fprintf(&b, "Skipped %d unchanged %s via cache\n", len(s.Cached), plural(len(s.Cached), "file", "files"))
		if s.ShowAppliedFixers {
			for i, res := range s.Cached {
				fmt.Fprintf(&b, "%4d) %s\n", i+1, res.Name)
			}
		}
		b.WriteString("\n")
	}

	verb := "Fixed"
	if s.DryRun {
		verb = "Checked"
	}
	fmt.Fprintf(&b, "%s all files in %.3f seconds, %.3f MB memory used\n", verb, s.Duration.Seconds(), s.MemoryMB)
	return b.String(), nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
