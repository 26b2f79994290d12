// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdef

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-air/gplan"
	"github.com/go-air/gplan/op"
	"github.com/go-air/gplan/term"
)

// ErrDuplicate is returned for objects or placeholders declared twice
// with different types.
var ErrDuplicate = errors.New("duplicate name")

// File is the document form of a problem.
type File struct {
	Name    string   `yaml:"name"`
	Objects []Object `yaml:"objects"`
	Ops     []Op     `yaml:"ops"`
	Init    []string `yaml:"init"`
	Goal    []string `yaml:"goal"`
}

// Object is an object declaration: either a name and type or an int.
type Object struct {
	Name string `yaml:"name,omitempty"`
	Type string `yaml:"type,omitempty"`
	Int  *int   `yaml:"int,omitempty"`
}

// Op is an operator declaration.
type Op struct {
	Name string            `yaml:"name"`
	Vars map[string]string `yaml:"vars,omitempty"`
	Pre  []string          `yaml:"pre,omitempty"`
	Add  []string          `yaml:"add,omitempty"`
	Del  []string          `yaml:"del,omitempty"`
}

// Read reads a problem document from r.
func Read(r io.Reader, opts ...gplan.Option) (*gplan.Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	f := &File{}
	if e := dec.Decode(f); e != nil {
		return nil, fmt.Errorf("pdef: %w", e)
	}
	return f.Problem(opts...)
}

// ReadFile reads a problem document from path, decompressing files
// ending in .gz or .bz2.
func ReadFile(path string, opts ...gplan.Option) (*gplan.Problem, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch filepath.Ext(path) {
	case ".gz":
		gz, e := gzip.NewReader(r)
		if e != nil {
			return nil, fmt.Errorf("%s: %w", path, e)
		}
		defer gz.Close()
		r = gz
	case ".bz2":
		r = bzip2.NewReader(r)
	}
	p, e := Read(r, opts...)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", path, e)
	}
	return p, nil
}

// Problem creates the problem described by f.
func (f *File) Problem(opts ...gplan.Option) (*gplan.Problem, error) {
	s := &scope{objs: make(map[string]term.Object, len(f.Objects))}
	objs := make([]term.Object, 0, len(f.Objects))
	for i, d := range f.Objects {
		var o term.Object
		switch {
		case d.Int != nil:
			if d.Name != "" || d.Type != "" {
				return nil, fmt.Errorf("pdef: objects[%d]: int with name or type", i)
			}
			o = term.Int(*d.Int)
		case d.Name == "" || d.Type == "":
			return nil, fmt.Errorf("pdef: objects[%d]: %w", i, term.ErrArg)
		default:
			o = term.Obj(d.Name, d.Type)
		}
		if prev, ok := s.objs[o.Name()]; ok && prev != o {
			return nil, fmt.Errorf("pdef: objects[%d]: %w: %s", i, ErrDuplicate, o.Name())
		}
		s.objs[o.Name()] = o
		objs = append(objs, o)
	}

	ops := make([]*op.Op, 0, len(f.Ops))
	for _, d := range f.Ops {
		o, e := d.op(s)
		if e != nil {
			return nil, fmt.Errorf("pdef: op %q: %w", d.Name, e)
		}
		ops = append(ops, o)
	}

	s.vars = nil
	init, e := s.parseAll("init", f.Init)
	if e != nil {
		return nil, fmt.Errorf("pdef: %w", e)
	}
	goals, e := s.parseAll("goal", f.Goal)
	if e != nil {
		return nil, fmt.Errorf("pdef: %w", e)
	}
	return gplan.New(f.Name, objs, ops, init, goals, opts...)
}

func (d *Op) op(s *scope) (*op.Op, error) {
	s.vars = make(map[string]term.Placeholder, len(d.Vars))
	for name, typ := range d.Vars {
		s.vars[name] = term.Var(name, typ)
	}
	pre, e := s.parseAll("pre", d.Pre)
	if e != nil {
		return nil, e
	}
	add, e := s.parseAll("add", d.Add)
	if e != nil {
		return nil, e
	}
	del, e := s.parseAll("del", d.Del)
	if e != nil {
		return nil, e
	}
	return op.New(d.Name, pre, add, del)
}

func (s *scope) parseAll(what string, srcs []string) ([]term.Literal, error) {
	res := make([]term.Literal, 0, len(srcs))
	for i, src := range srcs {
		l, e := s.parse(src)
		if e != nil {
			return nil, fmt.Errorf("%s[%d]: %w", what, i, e)
		}
		res = append(res, l)
	}
	return res, nil
}

// Encode returns the document form of p.
func Encode(p *gplan.Problem) (*File, error) {
	f := &File{Name: p.Name}
	for _, o := range p.Objects {
		if n, ok := o.Num(); ok && o.Type() == term.IntType {
			f.Objects = append(f.Objects, Object{Int: &n})
			continue
		}
		f.Objects = append(f.Objects, Object{Name: o.Name(), Type: o.Type()})
	}
	for _, o := range p.Ops {
		d := Op{Name: o.Name, Vars: make(map[string]string, len(o.Params))}
		for _, v := range o.Params {
			if t, ok := d.Vars[v.Name()]; ok && t != v.Type() {
				return nil, fmt.Errorf("pdef: op %q: %w: ?%s", o.Name, ErrDuplicate, v.Name())
			}
			d.Vars[v.Name()] = v.Type()
		}
		d.Pre = formatAll(o.Pre)
		d.Add = formatAll(o.Add)
		d.Del = formatAll(o.Del)
		f.Ops = append(f.Ops, d)
	}
	f.Init = formatAll(p.Init)
	f.Goal = formatAll(p.Goals)
	return f, nil
}

func formatAll(ls []term.Literal) []string {
	if len(ls) == 0 {
		return nil
	}
	res := make([]string, len(ls))
	for i, l := range ls {
		res[i] = format(l)
	}
	return res
}

// Write writes p to w in the form read by Read.
func Write(w io.Writer, p *gplan.Problem) error {
	f, e := Encode(p)
	if e != nil {
		return e
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if e := enc.Encode(f); e != nil {
		return fmt.Errorf("pdef: %w", e)
	}
	return enc.Close()
}

// WriteFile writes p to path, compressing if path ends in .gz.
func WriteFile(path string, p *gplan.Problem) (err error) {
	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	var w io.Writer = f
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)
		defer func() {
			if e := gz.Close(); err == nil {
				err = e
			}
		}()
		w = gz
	}
	return Write(w, p)
}
