package enum

import (
	"io"
	"io/ioutil"
	"strings"

	"github.com/mb0/xelf/cor"
	"github.com/mb0/xelf/lit"
)

// ParseSets parses set declarations from a dict literal mapping set names to lists of constant
// names, for example {Priority:['low' 'medium' 'high']}.
func ParseSets(str string) ([]*Set, error) {
	l, err := lit.Read(strings.NewReader(str))
	if err != nil {
		return nil, cor.Errorf("parse sets: %w", err)
	}
	d, ok := l.(*lit.Dict)
	if !ok {
		return nil, cor.Errorf("want dict of set declarations got %T", l)
	}
	res := make([]*Set, 0, len(d.List))
	for _, kl := range d.List {
		idx, ok := kl.Lit.(lit.Indexer)
		if !ok {
			return nil, cor.Errorf("set %s: want list of constant names got %T", kl.Key, kl.Lit)
		}
		keys := make([]string, 0, idx.Len())
		err = idx.IterIdx(func(i int, el lit.Lit) error {
			ch, ok := el.(lit.Character)
			if !ok {
				return cor.Errorf("set %s: want constant name got %T", kl.Key, el)
			}
			keys = append(keys, ch.Char())
			return nil
		})
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			return nil, cor.Errorf("set %s: empty constant list", kl.Key)
		}
		res = append(res, New(kl.Key, keys...))
	}
	return res, nil
}

// ReadSets parses set declarations from reader r.
func ReadSets(r io.Reader) ([]*Set, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseSets(string(b))
}
