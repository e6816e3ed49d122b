package att

import (
	"strings"

	"github.com/mb0/xelf/cor"

	"github.com/martijnschouwe/classy-enum/enum"
)

// Raw is the nullable scalar stored for a bound attribute. Null marks an absent value and is
// distinct from the blank string.
type Raw struct {
	Str  string
	Null bool
}

// Null is the absent raw value.
var Null = Raw{Null: true}

// Str returns a present raw value for s.
func Str(s string) Raw { return Raw{Str: s} }

// Blank reports whether the raw value is present but empty or all whitespace.
func (r Raw) Blank() bool { return !r.Null && strings.TrimSpace(r.Str) == "" }

// Zero reports whether the raw value is either absent or blank.
func (r Raw) Zero() bool { return r.Null || r.Blank() }

// Store is raw attribute access on one model instance.
type Store interface {
	ReadRaw(attr string) Raw
	WriteRaw(attr string, raw Raw)
}

// Class is the declaration surface of a model class. AddRule registers a validation rule run
// at save time, OnInit registers a hook run once per newly constructed instance.
type Class interface {
	AddRule(r Rule)
	OnInit(fn func(Store))
}

// Rule is the inclusion constraint installed for a bound attribute.
type Rule struct {
	Attr       string
	Set        *enum.Set
	AllowBlank bool
	AllowNil   bool
}

// Check returns nil if raw satisfies the rule: absent and allowed, blank and allowed, or
// contained in the set.
func (r Rule) Check(raw Raw) error {
	if raw.Null {
		if r.AllowNil {
			return nil
		}
	} else if raw.Blank() {
		if r.AllowBlank {
			return nil
		}
	} else if r.Set.Contains(raw.Str) {
		return nil
	}
	return cor.Errorf("%s %q is not included in set %s", r.Attr, raw.Str, r.Set.Key())
}
