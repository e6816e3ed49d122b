// Package gengo generates go declarations for enum sets.
package gengo

import (
	"go/format"
	"io/ioutil"
	"strings"

	"github.com/mb0/xelf/bfr"
	"github.com/mb0/xelf/cor"
	"github.com/pkg/errors"

	"github.com/martijnschouwe/classy-enum/enum"
	"github.com/martijnschouwe/classy-enum/gen"
)

func DefaultPkgs() map[string]string {
	return map[string]string{
		"enum": "github.com/martijnschouwe/classy-enum/enum",
	}
}

// NewCtx returns a generation context writing a go package with the given import path.
func NewCtx(pkg string) *gen.Ctx {
	return &gen.Ctx{
		Pkg:    pkg,
		Pkgs:   DefaultPkgs(),
		Header: "// generated code\n\n",
	}
}

// Import takes a qualified name of the form 'pkg.Decl', looks up a path from the context
// packages map if available, otherwise the name is used as path. If the package path equals
// the context package it returns the 'Decl' part, otherwise it adds the path to the import
// list and returns the name unchanged.
func Import(c *gen.Ctx, name string) string {
	idx := strings.LastIndexByte(name, '.')
	var ns string
	if idx > -1 {
		ns = name[:idx]
	}
	if ns != "" {
		if path, ok := c.Pkgs[ns]; ok {
			ns = path
		}
		if ns != c.Pkg {
			c.Imports.Add(ns)
		} else {
			name = name[idx+1:]
		}
	}
	return name
}

// WriteFile renders go declarations for the sets to fname.
func WriteFile(c *gen.Ctx, fname string, sets ...*enum.Set) error {
	b := bfr.Get()
	defer bfr.Put(b)
	c.Ctx = bfr.Ctx{B: b, Tab: "\t"}
	err := RenderFile(c, sets...)
	if err != nil {
		return cor.Errorf("render file %s error: %v", fname, err)
	}
	err = ioutil.WriteFile(fname, b.Bytes(), 0644)
	if err != nil {
		return cor.Errorf("write file %s error: %v", fname, err)
	}
	return nil
}

// RenderFile writes the set declarations to a go file with package and import declarations.
func RenderFile(c *gen.Ctx, sets ...*enum.Set) error {
	b := bfr.Get()
	defer bfr.Put(b)
	// swap new buffer with context buffer
	f := c.B
	c.B = b
	for _, s := range sets {
		c.WriteString("\n")
		err := DeclareSet(c, s)
		if err != nil {
			return err
		}
	}
	// swap back
	c.B = f
	f.WriteString(c.Header)
	f.WriteString("package ")
	f.WriteString(pkgName(c.Pkg))
	f.WriteString("\n")
	if len(c.Imports.List) > 0 {
		f.WriteString("\nimport (\n")
		for _, im := range c.Imports.List {
			f.WriteString("\t\"")
			f.WriteString(im)
			f.WriteString("\"\n")
		}
		f.WriteString(")\n")
	}
	res, err := format.Source(b.Bytes())
	if err != nil {
		return cor.Errorf("format %s: %w", b.Bytes(), err)
	}
	for len(res) > 0 {
		n, err := f.Write(res)
		if err != nil {
			return err
		}
		res = res[n:]
	}
	return nil
}

// DeclareSet writes a string type, the constant declarations and a registered set variable
// for s.
func DeclareSet(c *gen.Ctx, s *enum.Set) error {
	ref := refName(s)
	if ref == "" {
		return errors.Errorf("set %q has no declarable name", s.Name())
	}
	c.WriteString("type ")
	c.WriteString(ref)
	c.WriteString(" string\n\n")
	c.WriteString("const (")
	for _, cst := range s.Consts() {
		c.WriteString("\n\t")
		c.WriteString(ref)
		c.WriteString(cst.Cased())
		c.WriteByte(' ')
		c.WriteString(ref)
		c.WriteString(" = \"")
		c.WriteString(cst.Key())
		c.WriteByte('"')
	}
	c.WriteString("\n)\n\n")
	c.WriteString("var ")
	c.WriteString(ref)
	c.WriteString("Set = ")
	c.WriteString(Import(c, "enum.Register"))
	c.WriteByte('(')
	c.WriteString(Import(c, "enum.New"))
	c.WriteString("(\"")
	c.WriteString(ref)
	c.WriteByte('"')
	for _, cst := range s.Consts() {
		c.WriteString(", \"")
		c.WriteString(cst.Key())
		c.WriteByte('"')
	}
	c.WriteString("))\n")
	return nil
}

func pkgName(pkg string) string {
	if idx := strings.LastIndexByte(pkg, '/'); idx != -1 {
		pkg = pkg[idx+1:]
	}
	if idx := strings.IndexByte(pkg, '.'); idx != -1 {
		pkg = pkg[:idx]
	}
	return pkg
}

func refName(s *enum.Set) string {
	n := s.Name()
	if n == "" {
		return ""
	}
	if c := n[0]; c < 'A' || c > 'Z' {
		n = strings.ToUpper(n[:1]) + n[1:]
	}
	return n
}
