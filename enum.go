package sbewire

import "slices"

// NullName is the rendered name of every enum's null variant.
const NullName = "NullVal"

// EnumVariant pairs a named enum value with its schema name.
type EnumVariant[E ~uint8] struct {
	Value E
	Name  string
}

// EnumSpec holds the lookup tables of one single-byte enum. Every
// operation is total: unknown raw values and unknown names both map to
// the null variant.
type EnumSpec[E ~uint8] struct {
	null     E
	known    [256]bool
	names    [256]string
	variants []E
}

// NewEnumSpec builds the tables for an enum whose null variant encodes as
// null. Variants keep their declaration order.
func NewEnumSpec[E ~uint8](null E, variants ...EnumVariant[E]) *EnumSpec[E] {
	s := &EnumSpec[E]{null: null, variants: make([]E, 0, len(variants))}
	for _, v := range variants {
		s.known[uint8(v.Value)] = true
		s.names[uint8(v.Value)] = v.Name
		s.variants = append(s.variants, v.Value)
	}
	return s
}

// FromRaw maps a wire byte to its variant.
func (s *EnumSpec[E]) FromRaw(raw uint8) E {
	if s.known[raw] {
		return E(raw)
	}
	return s.null
}

// Raw returns the wire byte of e. Values outside the table encode as null.
func (s *EnumSpec[E]) Raw(e E) uint8 {
	return uint8(s.FromRaw(uint8(e)))
}

// Parse maps a schema name to its variant.
func (s *EnumSpec[E]) Parse(name string) E {
	for _, v := range s.variants {
		if s.names[uint8(v)] == name {
			return v
		}
	}
	return s.null
}

// Name returns the schema name of e, NullName for the null variant.
func (s *EnumSpec[E]) Name(e E) string {
	if s.known[uint8(e)] {
		return s.names[uint8(e)]
	}
	return NullName
}

func (s *EnumSpec[E]) Null() E { return s.null }

func (s *EnumSpec[E]) IsNull(e E) bool { return !s.known[uint8(e)] }

// Variants lists the non-null variants in declaration order.
func (s *EnumSpec[E]) Variants() []E { return slices.Clone(s.variants) }
