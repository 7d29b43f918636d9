// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/hstackui/hstack/layout"
	"github.com/hstackui/hstack/layoutfile"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "hstack: %v\n", err)
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hstack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, mainUsage)
	}
	verbose := fs.Bool("v", false, "log measure passes to standard error")
	width := fs.String("width", "", "override the scene width constraint")
	height := fs.String("height", "", "override the scene height constraint")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path := fs.Arg(0)
	if path == "" {
		return errors.New("specify a scene file")
	}

	log := zap.NewNop()
	if *verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		l, err := cfg.Build()
		if err != nil {
			return err
		}
		log = l
	}
	defer log.Sync()

	sc, err := layoutfile.Load(path)
	if err != nil {
		return err
	}
	if *width != "" {
		if sc.Width, err = layout.ParseConstraint(*width); err != nil {
			return fmt.Errorf("-width: %w", err)
		}
	}
	if *height != "" {
		if sc.Height, err = layout.ParseConstraint(*height); err != nil {
			return fmt.Errorf("-height: %w", err)
		}
	}
	sc.SetLogger(log)
	log.Debug("loaded scene",
		zap.String("path", path),
		zap.Stringer("width", sc.Width),
		zap.Stringer("height", sc.Height),
	)

	dims, err := sc.Run()
	if err != nil {
		return err
	}
	return report(stdout, sc, dims)
}
