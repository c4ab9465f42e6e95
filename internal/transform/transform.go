// Package transform promotes context-ambiguous primitive tokens to composite
// kinds. Transformers only call SetKind: token texts and count never change.
package transform

import (
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

// Transformer performs one forward scan over a stream. Running it twice
// must leave the stream as the first run did.
type Transformer struct {
	Name    string
	Process func(s *tokens.Stream)
}

// Pipeline is an ordered list of transformers.
type Pipeline []Transformer

// Builtin returns the transformers in the order they must run.
func Builtin() Pipeline {
	return Pipeline{
		{Name: "attribute", Process: attribute},
		{Name: "array_index_curly_brace", Process: arrayIndexCurlyBrace},
		{Name: "square_brace", Process: squareBrace},
		{Name: "class_constant", Process: classConstant},
		{Name: "use", Process: useKeyword},
		{Name: "array_typehint", Process: arrayTypehint},
		{Name: "nullable_type", Process: nullableType},
	}
}

// Run runs every transformer once, in order.
func (p Pipeline) Run(s *tokens.Stream) {
	for _, t := range p {
		t.Process(s)
	}
}

// Names lists transformer names in run order.
func (p Pipeline) Names() []string {
	names := make([]string, len(p))
	for i, t := range p {
		names[i] = t.Name
	}
	return names
}
