// Package genpg generates postgres declarations for enum sets.
package genpg

import (
	"strings"

	"github.com/mb0/xelf/bfr"

	"github.com/martijnschouwe/classy-enum/enum"
	"github.com/martijnschouwe/classy-enum/gen"
)

// NewCtx returns a generation context writing sql to b.
func NewCtx(b bfr.B) *gen.Ctx {
	return &gen.Ctx{
		Ctx:    bfr.Ctx{B: b, Tab: "\t"},
		Header: "-- generated code\n\n",
	}
}

// WriteFile writes a transaction declaring an enum type per set to c.
func WriteFile(c *gen.Ctx, sets ...*enum.Set) error {
	c.WriteString(c.Header)
	c.WriteString("BEGIN;\n\n")
	for _, s := range sets {
		err := WriteEnum(c, s)
		if err != nil {
			return err
		}
		c.WriteString(";\n\n")
	}
	_, err := c.WriteString("COMMIT;\n")
	return err
}

// WriteEnum writes a create type statement for s.
func WriteEnum(b *gen.Ctx, s *enum.Set) error {
	b.WriteString("CREATE TYPE ")
	b.WriteString(s.Key())
	b.WriteString(" AS ENUM (")
	for i, c := range s.Consts() {
		if i > 0 {
			b.WriteString(", ")
		}
		writeQuote(b, c.Key())
	}
	return b.WriteByte(')')
}

// writeQuote writes an escaped single quoted sql string.
func writeQuote(b *gen.Ctx, s string) {
	b.WriteByte('\'')
	b.WriteString(strings.Replace(s, "'", "''", -1))
	b.WriteByte('\'')
}
