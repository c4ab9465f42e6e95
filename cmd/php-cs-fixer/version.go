package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixers"
	"github.com/bankiru/PHP-CS-Fixer/internal/version"
)

// versionPayload is the --format=json shape; empty optional fields are omitted.
type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Grammar   string `json:"grammar"`
	CacheKey  string `json:"cache_key"`
	Fixers    int    `json:"fixers"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show php-cs-fixer build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
	versionCmd.Flags().Bool("full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	format, _ := flags.GetString("format")
	full, _ := flags.GetBool("full")
	showHash, _ := flags.GetBool("hash")
	showDate, _ := flags.GetBool("date")
	showHash = showHash || full
	showDate = showDate || full

	p := versionPayload{
		Tool:     "php-cs-fixer",
		Version:  orDefault(version.Version, "dev"),
		Grammar:  version.GrammarVersion,
		CacheKey: version.Plain(),
		Fixers:   len(fixers.Builtin()),
	}
	if showHash {
		p.GitCommit = orDefault(version.GitCommit, "unknown")
	}
	if showDate {
		p.BuildDate = orDefault(version.BuildDate, "unknown")
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case "pretty":
		fmt.Fprintf(out, "php-cs-fixer %s (grammar %s, %d fixers)\n", version.Colored(), p.Grammar, p.Fixers)
		if full {
			fmt.Fprintf(out, "cache:  %s\n", p.CacheKey)
		}
		if showHash {
			fmt.Fprintf(out, "commit: %s\n", p.GitCommit)
		}
		if showDate {
			fmt.Fprintf(out, "built:  %s\n", p.BuildDate)
		}
		return nil
	}
	return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}
