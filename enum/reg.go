package enum

import (
	"strings"

	"github.com/mb0/xelf/cor"
)

// ErrResolve indicates that a set name or attribute did not resolve to a registered set.
var ErrResolve = cor.Error("enum set not found")

// Registry maps set keys to sets. The zero registry is usable.
type Registry struct {
	sets map[string]*Set
}

// NewRegistry returns a registry holding the given sets.
func NewRegistry(sets ...*Set) *Registry {
	r := &Registry{sets: make(map[string]*Set, len(sets))}
	for _, s := range sets {
		r.sets[s.Key()] = s
	}
	return r
}

// Register adds s to the registry or returns an error if the key is already taken by
// another set. Registering the same set twice is a no-op.
func (r *Registry) Register(s *Set) error {
	if r.sets == nil {
		r.sets = make(map[string]*Set)
	}
	if o, ok := r.sets[s.Key()]; ok && o != s {
		return cor.Errorf("set %s already registered", s.Key())
	}
	r.sets[s.Key()] = s
	return nil
}

// Set returns the set registered for key or nil.
func (r *Registry) Set(key string) *Set {
	if r == nil || r.sets == nil {
		return nil
	}
	return r.sets[cor.Keyed(key)]
}

// Lookup returns the set registered for name or an error wrapping ErrResolve.
func (r *Registry) Lookup(name string) (*Set, error) {
	if s := r.Set(name); s != nil {
		return s, nil
	}
	return nil, cor.Errorf("lookup %q: %w", name, ErrResolve)
}

// Resolve returns the set for an attribute name by convention. The attribute key is tried as
// is and then in singular form, so both status and priorities find their sets without an
// explicit name.
func (r *Registry) Resolve(attr string) (*Set, error) {
	key := cor.Keyed(attr)
	if s := r.Set(key); s != nil {
		return s, nil
	}
	if sing := singular(key); sing != key {
		if s := r.Set(sing); s != nil {
			return s, nil
		}
	}
	return nil, cor.Errorf("resolve attribute %q: %w", attr, ErrResolve)
}

// Std is the package registry used when no explicit registry is configured.
var Std = &Registry{}

// Register adds s to the package registry and returns s, it panics on key conflicts so set
// declarations can be assigned to package variables.
func Register(s *Set) *Set {
	err := Std.Register(s)
	if err != nil {
		panic(err)
	}
	return s
}

func singular(key string) string {
	switch {
	case strings.HasSuffix(key, "ies"):
		return key[:len(key)-3] + "y"
	case strings.HasSuffix(key, "ses"):
		return key[:len(key)-2]
	case strings.HasSuffix(key, "s"):
		return key[:len(key)-1]
	}
	return key
}
