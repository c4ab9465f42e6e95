// Package token defines lexical token kinds for PHP sources.
// Invariants:
//   - Token.Text is the exact source text; concatenating all texts reproduces the input.
//   - Primitive kinds are assigned by the lexer only.
//   - Composite kinds (IsComposite) are assigned only by transformers; they never
//     change Text, they only disambiguate what a primitive token means in context.
//   - Blank is a placeholder left behind by a cleared slot; it always has empty Text.
//   - true, false, null, self and parent are String tokens (plain identifiers),
//     exactly as the PHP lexer produces them.
package token
