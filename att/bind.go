package att

import (
	"fmt"

	"github.com/mb0/xelf/cor"

	"github.com/martijnschouwe/classy-enum/enum"
	"github.com/martijnschouwe/classy-enum/log"
)

// ErrDefault indicates a bind default that is not part of the resolved set.
var ErrDefault = cor.Error("default not included in set")

// Log is the package logger for bind diagnostics.
var Log = log.Root

// Opts configures a binding. All fields are optional.
type Opts struct {
	// Enum names the set to bind when it does not follow the attribute name convention.
	Enum string
	// Set binds an explicit set and skips registry resolution.
	Set *enum.Set
	// Reg is the registry used for resolution, enum.Std if nil.
	Reg *enum.Registry
	// AllowBlank lets blank stored values pass validation.
	AllowBlank bool
	// AllowNil lets absent stored values pass validation.
	AllowNil bool
	// JSON selects the object form when members are marshalled.
	JSON bool
	// Default is seeded into new instances, it accepts the same shapes as the setter.
	// A default that normalizes to nil or blank counts as no default.
	Default interface{}
}

// Binding wraps one scalar attribute of a model class with an enum set. Bindings are
// immutable, created once per attribute by Bind.
type Binding struct {
	attr       string
	set        *enum.Set
	allowBlank bool
	allowNil   bool
	json       bool
	def        Raw
	seed       bool
}

// Bind installs an enum binding for attr on class c and returns the binding descriptor.
// It registers the inclusion rule, resolves the set from o or by attribute name convention
// and, when a usable default is configured, an init hook that seeds it. Bind fails if attr
// is not a valid key, the set does not resolve or the default fails the inclusion rule.
func Bind(c Class, attr string, o Opts) (*Binding, error) {
	if attr == "" || !cor.IsKey(attr) {
		return nil, cor.Errorf("bind: invalid attribute name %q", attr)
	}
	s, err := resolveSet(attr, o)
	if err != nil {
		return nil, err
	}
	b := &Binding{
		attr: attr, set: s,
		allowBlank: o.AllowBlank, allowNil: o.AllowNil, json: o.JSON,
		def: Null,
	}
	if o.Default != nil {
		def := normalize(o.Default, Null, b.allowNil || b.allowBlank)
		if !def.Zero() {
			if err := (Rule{attr, s, o.AllowBlank, o.AllowNil}).Check(def); err != nil {
				return nil, cor.Errorf("bind %s default %q: %w", attr, def.Str, ErrDefault)
			}
			b.def = def
			b.seed = true
		}
	}
	c.AddRule(Rule{Attr: attr, Set: s, AllowBlank: o.AllowBlank, AllowNil: o.AllowNil})
	if b.seed {
		c.OnInit(b.seedDefault)
	}
	Log.Debug("bound attribute", "attr", attr, "set", s.Key())
	return b, nil
}

// MustBind installs a binding or panics, for package level binding declarations.
func MustBind(c Class, attr string, o Opts) *Binding {
	b, err := Bind(c, attr, o)
	if err != nil {
		panic(err)
	}
	return b
}

func resolveSet(attr string, o Opts) (*enum.Set, error) {
	if o.Set != nil {
		return o.Set, nil
	}
	reg := o.Reg
	if reg == nil {
		reg = enum.Std
	}
	if o.Enum != "" {
		return reg.Lookup(o.Enum)
	}
	return reg.Resolve(attr)
}

// Attr returns the bound attribute name.
func (b *Binding) Attr() string { return b.attr }

// Set returns the bound enum set.
func (b *Binding) Set() *enum.Set { return b.set }

// Default returns the normalized default raw value, Null when no default is configured.
func (b *Binding) Default() Raw { return b.def }

// Rule returns the inclusion rule the binding installs.
func (b *Binding) Rule() Rule {
	return Rule{Attr: b.attr, Set: b.set, AllowBlank: b.allowBlank, AllowNil: b.allowNil}
}

// Get materializes the stored raw value of s into a member. Every call rebuilds the member
// from the current raw value, nothing is cached on the instance.
func (b *Binding) Get(s Store) enum.Member {
	raw := s.ReadRaw(b.attr)
	return b.set.Build(raw.Str, enum.Ctx{
		Owner:      s,
		JSON:       b.json,
		AllowEmpty: b.allowBlank || b.allowNil,
	})
}

// Put normalizes v to its raw key and writes it to s. It accepts a plain key string, a member,
// a set constant or any of those by pointer. Unknown keys are written as given, the inclusion
// rule reports them at validation time.
func (b *Binding) Put(s Store, v interface{}) {
	s.WriteRaw(b.attr, normalize(v, b.def, b.allowNil || b.allowBlank))
}

func (b *Binding) seedDefault(s Store) {
	raw := s.ReadRaw(b.attr)
	if raw.Null && !b.allowNil || raw.Blank() && !b.allowBlank {
		b.Put(s, b.def.Str)
	}
}

// normalize turns a setter input into the raw scalar to store. Nil handling, identifier
// extraction and scalar coercion are separate steps so each can be reasoned about alone.
func normalize(v interface{}, def Raw, nilOK bool) Raw {
	if v = deref(v); v == nil {
		if nilOK {
			return Null
		}
		return def
	}
	if key, ok := ident(v); ok {
		return Str(key)
	}
	return coerce(v)
}

// deref maps nil member and constant pointers to plain nil so they take the nil path.
func deref(v interface{}) interface{} {
	switch m := v.(type) {
	case *enum.Member:
		if m == nil {
			return nil
		}
	case *enum.Const:
		if m == nil {
			return nil
		}
	}
	return v
}

// ident extracts the canonical identifier from member shaped inputs.
func ident(v interface{}) (string, bool) {
	switch m := v.(type) {
	case enum.Member:
		return m.Key(), true
	case *enum.Member:
		return m.Key(), true
	case enum.Const:
		return m.Key(), true
	case *enum.Const:
		return m.Key(), true
	}
	return "", false
}

// coerce passes scalars through unchanged, legality is decided by the inclusion rule.
func coerce(v interface{}) Raw {
	switch s := v.(type) {
	case string:
		return Str(s)
	case Raw:
		return s
	case fmt.Stringer:
		return Str(s.String())
	}
	return Str(fmt.Sprint(v))
}
