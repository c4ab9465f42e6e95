package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/fixers"
)

var listFixersCmd = &cobra.Command{
	Use:   "list-fixers",
	Short: "List available fixers and groups",
	Args:  cobra.NoArgs,
	RunE:  runListFixers,
}

func init() {
	listFixersCmd.Flags().String("format", "txt", "output format (txt|json)")
}

type fixerPayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Risky       bool     `json:"risky"`
	Priority    int      `json:"priority"`
	Groups      []string `json:"groups,omitempty"`
}

type listPayload struct {
	Fixers []fixerPayload      `json:"fixers"`
	Groups map[string][]string `json:"groups"`
}

func runListFixers(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	registry, err := fixers.NewRegistry()
	if err != nil {
		return err
	}
	all := registry.All()
	sort.SliceStable(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	switch strings.ToLower(format) {
	case "json":
		payload := listPayload{Groups: registry.Groups()}
		for _, f := range all {
			payload.Fixers = append(payload.Fixers, fixerPayload{
				Name:        f.Name,
				Description: f.Description,
				Risky:       f.Risky,
				Priority:    f.Priority,
				Groups:      f.Groups,
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "txt":
		renderFixerList(cmd.OutOrStdout(), all, registry)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be txt or json)", format)
	}
}

func renderFixerList(out io.Writer, all []fixer.Fixer, registry *fixer.Registry) {
	risky := color.New(color.FgRed)
	name := color.New(color.Bold)

	width := 0
	for _, f := range all {
		width = max(width, runewidth.StringWidth(f.Name))
	}
	for _, f := range all {
		line := name.Sprint(runewidth.FillRight(f.Name, width)) + "  " + f.Description
		if f.Risky {
			line += " " + risky.Sprint("[risky]")
		}
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out)
	groups := registry.Groups()
	for _, g := range registry.GroupNames() {
		fmt.Fprintf(out, "%s: %s\n", name.Sprint(g), strings.Join(groups[g], ", "))
	}
}
