// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-air/gplan"
	"github.com/go-air/gplan/gen"
	"github.com/go-air/gplan/pdef"
)

func (a *app) genCmd() *cobra.Command {
	var (
		dir    string
		gz     bool
		all    bool
		blocks int
		count  int
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "gen [name ...]",
		Short: "write generated problems as problem files, or list the generators",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			names := args
			if all {
				names = gen.Names()
			}
			if len(names) == 0 && blocks == 0 {
				for _, n := range gen.Names() {
					fmt.Fprintln(out, n)
				}
				return nil
			}
			if e := os.MkdirAll(dir, 0o755); e != nil {
				return e
			}
			ext := ".yaml"
			if gz {
				ext += ".gz"
			}
			write := func(name string, p *gplan.Problem) error {
				path := filepath.Join(dir, name+ext)
				if e := pdef.WriteFile(path, p); e != nil {
					return e
				}
				fmt.Fprintln(out, path)
				return nil
			}
			for _, n := range names {
				g, ok := gen.Lookup(n)
				if !ok {
					return fmt.Errorf("unknown generator %q, have %v", n, gen.Names())
				}
				if e := write(n, g()); e != nil {
					return e
				}
			}
			if blocks > 0 {
				gen.Seed(seed)
				for i := 0; i < count; i++ {
					if e := write(fmt.Sprintf("rblocks%d-%d", blocks, i), gen.RandBlocks(blocks)); e != nil {
						return e
					}
				}
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&dir, "out", "o", ".", "write files to this directory")
	fs.BoolVar(&gz, "gz", false, "gzip the files")
	fs.BoolVar(&all, "all", false, "write every registered problem")
	fs.IntVar(&blocks, "blocks", 0, "also write random blocks world problems with this many blocks")
	fs.IntVarP(&count, "count", "n", 1, "number of random problems")
	fs.Int64Var(&seed, "seed", 33, "random seed")
	return cmd
}
