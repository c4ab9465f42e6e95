package transform

import (
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

func prevKind(s *tokens.Stream, i int) token.Kind {
	if j, ok := s.PrevMeaningful(i); ok {
		return s.At(j).Kind
	}
	return token.Invalid
}

func nextKind(s *tokens.Stream, i int) token.Kind {
	if j, ok := s.NextMeaningful(i); ok {
		return s.At(j).Kind
	}
	return token.Invalid
}

// #[ ... ] : закрывающая скобка атрибута на нулевой глубине
func attribute(s *tokens.Stream) {
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Kind != token.Attribute {
			continue
		}
		depth := 0
	scan:
		for j := i + 1; j < s.Len(); j++ {
			switch s.At(j).Kind {
			case token.LBracket:
				depth++
			case token.RBracket:
				if depth == 0 {
					_ = s.SetKind(j, token.AttributeClose)
					break scan
				}
				depth--
			case token.AttributeClose:
				if depth == 0 {
					break scan
				}
			}
		}
	}
}

// $a{0}, $a[0]{1}, $a{0}{1}, $o->p{0}
func arrayIndexCurlyBrace(s *tokens.Stream) {
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Kind != token.LBrace {
			continue
		}
		p, ok := s.PrevMeaningful(i)
		if !ok {
			continue
		}
		switch s.At(p).Kind {
		case token.Variable, token.RBracket, token.ArrayIndexCurlyClose:
		case token.String:
			if prevKind(s, p) != token.ObjectOperator && prevKind(s, p) != token.NullsafeObjectOperator {
				continue
			}
		default:
			continue
		}
		end, err := s.FindBlockEnd(tokens.BlockCurly, i)
		if err != nil {
			continue
		}
		_ = s.SetKind(i, token.ArrayIndexCurlyOpen)
		_ = s.SetKind(end, token.ArrayIndexCurlyClose)
	}
}

// indexable lists kinds after which [ opens an offset access.
var indexable = token.NewKindSet(
	token.Variable, token.String, token.ConstantString, token.RBracket, token.RParen,
	token.ArraySquareClose, token.ArrayIndexCurlyClose, token.ClassConstant,
)

var dynamicAccess = token.NewKindSet(
	token.Dollar, token.ObjectOperator, token.NullsafeObjectOperator, token.DoubleColon,
)

// isIndexAccess reports whether the [ at i follows an expression it indexes.
// A } only counts when it closes ${...} or ->{...}.
func isIndexAccess(s *tokens.Stream, i int) bool {
	p, ok := s.PrevMeaningful(i)
	if !ok {
		return false
	}
	kind := s.At(p).Kind
	if kind != token.RBrace {
		return indexable.Has(kind)
	}
	open, err := s.FindBlockStart(tokens.BlockCurly, p)
	if err != nil {
		return false
	}
	return dynamicAccess.Has(prevKind(s, open))
}

// statementStart lists kinds after which [ may open a destructuring assignment.
var statementStart = token.NewKindSet(
	token.Invalid, token.OpenTag, token.Semicolon, token.LBrace, token.RBrace, token.CloseTag, token.KwAs,
)

func squareBrace(s *tokens.Stream) {
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Kind != token.LBracket {
			continue
		}
		if isIndexAccess(s, i) {
			continue
		}
		prev := prevKind(s, i)
		end, err := s.FindBlockEnd(tokens.BlockIndexSquare, i)
		if err != nil {
			continue
		}
		if statementStart.Has(prev) && destructuringFollows(s, end, prev) {
			markDestructuring(s, i, end)
			continue
		}
		_ = s.SetKind(i, token.ArraySquareOpen)
		_ = s.SetKind(end, token.ArraySquareClose)
	}
}

// [$a, $b] = ...; и foreach ($x as [$a, $b])
func destructuringFollows(s *tokens.Stream, end int, prev token.Kind) bool {
	next := nextKind(s, end)
	if prev == token.KwAs {
		return next == token.RParen
	}
	return next == token.Equals
}

// markDestructuring marks the outer pair and every nested short-array pair.
func markDestructuring(s *tokens.Stream, open, end int) {
	_ = s.SetKind(open, token.DestructuringSquareOpen)
	_ = s.SetKind(end, token.DestructuringSquareClose)
	for j := open + 1; j < end; j++ {
		if s.At(j).Kind != token.LBracket || isIndexAccess(s, j) {
			continue
		}
		inner, err := s.FindBlockEnd(tokens.BlockIndexSquare, j)
		if err != nil || inner > end {
			continue
		}
		markDestructuring(s, j, inner)
	}
}

func classConstant(s *tokens.Stream) {
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Kind == token.KwClass && prevKind(s, i) == token.DoubleColon {
			_ = s.SetKind(i, token.ClassConstant)
		}
	}
}

var classLike = token.NewKindSet(token.KwClass, token.KwTrait, token.KwInterface)

func useKeyword(s *tokens.Stream) {
	// тела классов: пары индексов { }
	type span struct{ open, end int }
	var bodies []span
	for i := 0; i < s.Len(); i++ {
		if !classLike.Has(s.At(i).Kind) {
			continue
		}
		open, ok := s.NextOfKind(i, token.NewKindSet(token.LBrace))
		if !ok {
			continue
		}
		end, err := s.FindBlockEnd(tokens.BlockCurly, open)
		if err != nil {
			continue
		}
		bodies = append(bodies, span{open, end})
	}
	inBody := func(i int) bool {
		for _, b := range bodies {
			if i > b.open && i < b.end {
				return true
			}
		}
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Kind != token.KwUse {
			continue
		}
		switch {
		case prevKind(s, i) == token.RParen:
			_ = s.SetKind(i, token.UseLambda)
		case inBody(i):
			_ = s.SetKind(i, token.UseTrait)
		}
	}
}

func arrayTypehint(s *tokens.Stream) {
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Kind == token.KwArray && nextKind(s, i) != token.LParen {
			_ = s.SetKind(i, token.ArrayTypehint)
		}
	}
}

var (
	nullableAfter = token.NewKindSet(
		token.LParen, token.Comma, token.Colon, token.KwPublic, token.KwProtected, token.KwPrivate,
		token.KwStatic, token.KwVar, token.KwReadonly, token.Attribute, token.AttributeClose,
	)
	typeStart = token.NewKindSet(
		token.String, token.NsSeparator, token.KwArray, token.ArrayTypehint, token.KwCallable, token.KwStatic,
	)
)

// ?Foo в параметрах, типах свойств и возвращаемых типах
func nullableType(s *tokens.Stream) {
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Kind != token.Question {
			continue
		}
		if nullableAfter.Has(prevKind(s, i)) && typeStart.Has(nextKind(s, i)) {
			_ = s.SetKind(i, token.NullableType)
		}
	}
}
