// Package fixers holds the built-in fixer catalog.
package fixers

import (
	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
)

const (
	GroupPSR2         = "@PSR2"
	GroupSymfony      = "@Symfony"
	GroupSymfonyRisky = "@Symfony:risky"
)

var (
	psr2    = []string{GroupPSR2, GroupSymfony}
	symfony = []string{GroupSymfony}
)

// Builtin returns the built-in fixers in registration order.
func Builtin() []fixer.Fixer {
	return []fixer.Fixer{
		ArraySyntax(),
		FunctionDeclaration(),
		ShortScalarCast(),
		LowercaseCast(),
		NormalizeIndexBrace(),
		LowercaseKeywords(),
		NoTrailingWhitespace(),
		SingleBlankLineAtEOF(),
		NoAliasFunctions(),
	}
}

// NewRegistry returns a registry preloaded with Builtin().
func NewRegistry() (*fixer.Registry, error) {
	r := fixer.NewRegistry()
	if err := r.Register(Builtin()...); err != nil {
		return nil, err
	}
	return r, nil
}
