// Package tokens implements the mutable token stream every transformer and
// fixer works on.
//
// Indices are contiguous and zero-based. Insert and ClearEmptyTokens renumber
// the slots that follow; Clear turns a slot into a Blank placeholder without
// renumbering. Any index captured before a structural mutation is stale
// afterwards and must be queried again.
package tokens
