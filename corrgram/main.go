// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command corrgram draws a correlogram: a heatmap of the pairwise
// Pearson correlations of a dataset's numeric variables.
//
// corrgram reads a CSV dataset with a header row, computes the
// correlation coefficient and two-tailed p-value for every requested
// pair of variables, and renders a color-coded grid with the p-values
// overlaid and a gradient legend for correlation strength. The -vars
// and -withvars flags pick the x- and y-axis variables; both default
// to all numeric columns. Variables that do not name a numeric column
// are reported and leave their cells empty rather than failing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"unicode"

	"github.com/aclements/corrgram/colorscale"
	"github.com/aclements/corrgram/corr"
	"github.com/aclements/corrgram/dataset"
	"github.com/aclements/corrgram/heatmap"
	"github.com/aclements/go-gg/table"
)

func main() {
	log.SetPrefix("corrgram: ")
	log.SetFlags(0)

	var (
		flagVars       = flag.String("vars", "", "x-axis `variables`, comma or space separated (default: all numeric columns)")
		flagWithVars   = flag.String("withvars", "", "y-axis `variables`, comma or space separated (default: all numeric columns)")
		flagOut        = flag.String("o", "", "write output to `file`; the extension selects svg, png, or pdf (default: stdout, svg)")
		flagTable      = flag.Bool("table", false, "output the correlation table instead of a plot")
		flagTitle      = flag.String("title", "", "chart `title`")
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// Read the dataset.
	path := "-"
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}
	in := os.Stdin
	if path != "-" {
		var err error
		in, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
	}
	tab, err := dataset.Read(in)
	if err != nil {
		log.Fatal(err)
	}

	// Resolve the variable lists.
	numeric := corr.NumericColumns(tab)
	vars := parseList(*flagVars)
	if len(vars) == 0 {
		vars = numeric
	}
	withVars := parseList(*flagWithVars)
	if len(withVars) == 0 {
		withVars = numeric
	}
	warnUnknown(numeric, vars, withVars)

	// Correlate, mirror, and filter.
	recs := corr.Filter(corr.Symmetrize(corr.Matrix(tab)), vars, withVars)

	// Prepare for output.
	out := os.Stdout
	if *flagOut != "" {
		var err error
		out, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
	}

	// Output table.
	if *flagTable {
		table.Fprint(out, corr.Table(recs))
		return
	}

	// Render plot.
	format := strings.TrimPrefix(filepath.Ext(*flagOut), ".")
	if err := heatmap.Render(out, format, recs, colorscale.New(), *flagTitle); err != nil {
		log.Fatal(err)
	}
}

// parseList splits a comma- or space-delimited variable list.
func parseList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// warnUnknown reports requested variables that are not numeric
// columns of the dataset. They produce empty chart cells, which is
// easy to misread as a zero-correlation bug.
func warnUnknown(numeric []string, lists ...[]string) {
	known := make(map[string]bool, len(numeric))
	for _, n := range numeric {
		known[n] = true
	}
	warned := make(map[string]bool)
	for _, l := range lists {
		for _, v := range l {
			if !known[v] && !warned[v] {
				warned[v] = true
				log.Printf("warning: no numeric variable %q in dataset", v)
			}
		}
	}
}
