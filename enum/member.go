package enum

import (
	"fmt"
	"strconv"

	"github.com/mb0/xelf/bfr"
	"github.com/mb0/xelf/cor"
)

// Ctx holds the build context for members. Owner is the instance the member was read from, if
// any. JSON selects the object form for marshalled members instead of the plain key. AllowEmpty
// marks members built from an absent or blank raw value as deliberate.
type Ctx struct {
	Owner      interface{}
	JSON       bool
	AllowEmpty bool
}

// Member is the value object built from a raw attribute value. A member is valid if the raw
// value is contained in its set, zero if it was built from an absent or blank raw value and
// invalid otherwise. Invalid members keep the offending raw value for inspection and error
// reporting; they are never written back by the member itself.
type Member struct {
	set *Set
	c   *Const
	raw string
	ctx Ctx
}

// Build returns a member for the raw value. Building never fails, an unknown raw value results
// in an invalid member. Validation of the underlying attribute is a separate step.
func (s *Set) Build(raw string, ctx Ctx) Member {
	m := Member{set: s, raw: raw, ctx: ctx}
	if raw == "" {
		return m
	}
	key := cor.Keyed(raw)
	for i, c := range s.consts {
		if c.Key() == key {
			m.c = &s.consts[i]
			break
		}
	}
	return m
}

// MustBuild returns a valid member for key or panics.
func (s *Set) MustBuild(key string) Member {
	m := s.Build(key, Ctx{})
	if !m.Valid() {
		panic(cor.Errorf("no constant %q in set %s", key, s.name))
	}
	return m
}

// Set returns the set the member belongs to.
func (m Member) Set() *Set { return m.set }

// Owner returns the instance the member was built for or nil.
func (m Member) Owner() interface{} { return m.ctx.Owner }

// Valid reports whether the member represents one of its set's constants.
func (m Member) Valid() bool { return m.c != nil }

// Zero reports whether the member was built from an absent or blank raw value.
func (m Member) Zero() bool { return m.raw == "" }

// Key returns the canonical identifier for valid members and the raw value otherwise.
func (m Member) Key() string {
	if m.c != nil {
		return m.c.Key()
	}
	return m.raw
}

// Name returns the declared constant name or the empty string for invalid members.
func (m Member) Name() string {
	if m.c != nil {
		return m.c.Name
	}
	return ""
}

// Val returns the constant ordinal or 0 for invalid members.
func (m Member) Val() int64 {
	if m.c != nil {
		return m.c.Val
	}
	return 0
}

// Is reports whether the member is the set constant with the given key.
func (m Member) Is(key string) bool { return m.c != nil && m.c.Key() == cor.Keyed(key) }

// Cmp compares member ordinals and returns -1, 0 or 1. Invalid members order before all valid
// members of the same set.
func (m Member) Cmp(o Member) int {
	a, b := m.Val(), o.Val()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (m Member) String() string { return m.Key() }

func (m Member) WriteBfr(b *bfr.Ctx) error {
	if m.raw == "" {
		_, err := b.WriteString("null")
		return err
	}
	return b.Quote(m.Key())
}

// MarshalJSON writes the plain key, or the object form with name and ordinal when the member
// was built with the JSON context flag. Zero members marshal as null.
func (m Member) MarshalJSON() ([]byte, error) {
	if m.raw == "" {
		return []byte("null"), nil
	}
	if m.ctx.JSON && m.c != nil {
		return []byte(fmt.Sprintf(`{"name":%q,"val":%d}`, m.c.Key(), m.c.Val)), nil
	}
	return []byte(strconv.Quote(m.Key())), nil
}
