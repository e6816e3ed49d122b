package enum

import (
	"strings"

	"github.com/mb0/xelf/bfr"
	"github.com/mb0/xelf/cor"
)

// Const is one legal value of a set. Name is the declared form, the lowercase key is the
// canonical identifier stored for an attribute and Val is the ordinal starting at 1.
type Const struct {
	Name string `json:"name"`
	Val  int64  `json:"val"`
}

// Key returns the canonical lowercase identifier of the constant.
func (c Const) Key() string { return strings.ToLower(c.Name) }

// Cased returns the exported go name of the constant.
func (c Const) Cased() string { return cor.Cased(c.Name) }

// Set is an immutable named group of constants representing the legal values of an attribute.
type Set struct {
	name   string
	key    string
	consts []Const
}

// New returns a new set with constants for keys, with ordinals in declaration order.
func New(name string, keys ...string) *Set {
	s := &Set{name: name, key: strings.ToLower(name)}
	s.consts = make([]Const, 0, len(keys))
	for i, k := range keys {
		s.consts = append(s.consts, Const{Name: k, Val: int64(i) + 1})
	}
	return s
}

func (s *Set) Name() string { return s.name }
func (s *Set) Key() string  { return s.key }

// Consts returns the set's constants in ordinal order.
func (s *Set) Consts() []Const { return s.consts }

// Len returns the number of constants in the set.
func (s *Set) Len() int { return len(s.consts) }

// Const returns the constant for key or false if the key is not part of the set.
func (s *Set) Const(key string) (Const, bool) {
	key = cor.Keyed(key)
	for _, c := range s.consts {
		if c.Key() == key {
			return c, true
		}
	}
	return Const{}, false
}

// Contains reports whether raw is the canonical key of one of the set's constants.
// The empty string is never contained.
func (s *Set) Contains(raw string) bool {
	if raw == "" {
		return false
	}
	_, ok := s.Const(raw)
	return ok
}

// Keys returns the canonical keys of all constants in ordinal order.
func (s *Set) Keys() []string {
	res := make([]string, 0, len(s.consts))
	for _, c := range s.consts {
		res = append(res, c.Key())
	}
	return res
}

// Opt is one choice for select inputs, pairing the stored key with a display label.
type Opt struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Options returns select input choices for all constants in ordinal order.
func (s *Set) Options() []Opt {
	res := make([]Opt, 0, len(s.consts))
	for _, c := range s.consts {
		res = append(res, Opt{Key: c.Key(), Label: c.Cased()})
	}
	return res
}

func (s *Set) String() string { return bfr.String(s) }
func (s *Set) WriteBfr(b *bfr.Ctx) error {
	b.WriteString("{name:")
	b.Quote(s.name)
	b.WriteString(" consts:[")
	for i, c := range s.consts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("{name:")
		b.Quote(c.Name)
		b.Fmt(" val:%d}", c.Val)
	}
	b.WriteByte(']')
	return b.WriteByte('}')
}
