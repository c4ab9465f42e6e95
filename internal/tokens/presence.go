package tokens

import "github.com/bankiru/PHP-CS-Fixer/internal/token"

// индекс присутствия перестраивается лениво, при первом запросе после мутации
func (s *Stream) index() token.KindSet {
	if s.presenceOK && s.presenceGen == s.gen {
		return s.presence
	}
	var set token.KindSet
	for _, tok := range s.toks {
		set = set.With(tok.Kind)
	}
	s.presence, s.presenceGen, s.presenceOK = set, s.gen, true
	return set
}

// IsKindFound reports whether any slot has kind k.
func (s *Stream) IsKindFound(k token.Kind) bool { return s.index().Has(k) }

// IsAnyKindFound reports whether any kind of set occurs.
func (s *Stream) IsAnyKindFound(set token.KindSet) bool { return s.index().Intersects(set) }

// IsAllKindsFound reports whether every kind of set occurs.
func (s *Stream) IsAllKindsFound(set token.KindSet) bool { return s.index().Contains(set) }
