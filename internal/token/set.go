package token

const kindWords = (int(kindCount) + 63) / 64

// KindSet is a fixed-size bitset over token kinds.
type KindSet [kindWords]uint64

// NewKindSet builds a set with the given kinds.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// With returns a copy of the set with k added.
func (s KindSet) With(k Kind) KindSet {
	if k < kindCount {
		s[k/64] |= 1 << (k % 64)
	}
	return s
}

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	if k >= kindCount {
		return false
	}
	return s[k/64]&(1<<(k%64)) != 0
}

// Union returns the union of both sets.
func (s KindSet) Union(other KindSet) KindSet {
	for i := range s {
		s[i] |= other[i]
	}
	return s
}

// Empty reports whether the set has no kinds.
func (s KindSet) Empty() bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}
	return true
}

// Kinds lists the members in ascending order.
func (s KindSet) Kinds() []Kind {
	out := make([]Kind, 0)
	for k := Kind(0); k < kindCount; k++ {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// Intersects reports whether both sets share at least one kind.
func (s KindSet) Intersects(other KindSet) bool {
	for i := range s {
		if s[i]&other[i] != 0 {
			return true
		}
	}
	return false
}

// Contains reports whether every member of other is in s.
func (s KindSet) Contains(other KindSet) bool {
	for i := range s {
		if s[i]&other[i] != other[i] {
			return false
		}
	}
	return true
}
