package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the php-cs-fixer CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// GrammarVersion changes whenever the lexer or the transformers produce a
// different token stream for the same input. It invalidates cached verdicts.
const GrammarVersion = "1"

// Plain is the uncolored version string that goes into cache keys.
func Plain() string {
	return strings.TrimSpace(Version) + "+grammar." + GrammarVersion
}

// Colored renders Version with colored major/minor/patch parts. Versions
// that are not x.y.z[-suffix] are returned as is.
func Colored() string {
	core, suffix, hasSuffix := strings.Cut(strings.TrimSpace(Version), "-")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." + versionMinorColor.Sprint(parts[1]) + "." + versionPatchColor.Sprint(parts[2])
	if hasSuffix {
		out += "-" + suffix
	}
	return out
}
