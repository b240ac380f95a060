// Copyright 2026 The tabtour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tabtour runs a guided tour of tabular data manipulation: each
// lesson loads a small built-in dataset, applies a chain of
// declarative transformations or a plot specification, and shows the
// result as a printed table or a rendered SVG.
//
// Usage:
//
//	tabtour [flags] [lesson...]
//
// With no lesson arguments, tabtour runs every lesson in tour order.
// Tables go to standard output and plots are written as SVG files to
// the plot directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/hashicorp/go-multierror"
	shellquote "github.com/kballard/go-shellquote"

	"github.com/dgenchev/tabtour/internal/lessons"
)

func main() {
	log.SetPrefix("tabtour: ")
	log.SetFlags(0)

	var (
		flagList   = flag.Bool("l", false, "list lessons and exit")
		flagOut    = flag.String("o", "plots", "write rendered plots to `dir`")
		flagTable  = flag.Bool("table", true, "print tables to stdout")
		flagView   = flag.String("view", "", "run `command` on each rendered plot")
		flagConfig = flag.String("config", "", "read settings from TOML `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [lesson...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagList {
		for _, l := range lessons.All {
			fmt.Printf("%-14s %s\n", l.Name, l.Title)
		}
		return
	}

	cfg := defaultConfig()
	if *flagConfig != "" {
		var err error
		cfg, err = loadConfig(*flagConfig)
		if err != nil {
			log.Fatal(err)
		}
	}
	// Flags given explicitly override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Out = *flagOut
		case "view":
			cfg.View = *flagView
		}
	})

	names := flag.Args()
	if len(names) == 0 {
		names = cfg.Lessons
	}
	run := lessons.All
	if len(names) > 0 {
		run = nil
		for _, name := range names {
			l, ok := lessons.Find(name)
			if !ok {
				log.Fatalf("unknown lesson %q; run with -l to list lessons", name)
			}
			run = append(run, l)
		}
	}

	if err := os.MkdirAll(cfg.Out, 0777); err != nil {
		log.Fatal(err)
	}

	tables := io.Writer(os.Stdout)
	if !*flagTable {
		tables = io.Discard
	}
	ctx := &lessons.Context{
		Tables:     tables,
		PlotDir:    cfg.Out,
		PlotWidth:  cfg.Width,
		PlotHeight: cfg.Height,
	}

	var errs *multierror.Error
	for _, l := range run {
		fmt.Fprintf(tables, "== %s: %s\n\n", l.Name, l.Title)
		if err := l.Run(ctx); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("lesson %s: %w", l.Name, err))
		}
	}

	if cfg.View != "" {
		if err := viewPlots(cfg.View, ctx.Plots); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		log.Fatal(err)
	}
}

// viewPlots runs command once per rendered plot, with the plot path
// appended to the command's arguments.
func viewPlots(command string, plots []string) error {
	args, err := shellquote.Split(command)
	if err != nil {
		return fmt.Errorf("parsing -view command: %w", err)
	}
	if len(args) == 0 {
		return fmt.Errorf("empty -view command")
	}
	for _, path := range plots {
		cmd := exec.Command(args[0], append(args[1:], path)...)
		cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s %s: %w", args[0], path, err)
		}
	}
	return nil
}
