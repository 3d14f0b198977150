/*
Command cglabs runs the computer-graphics labs headless. Input events are
given as arguments and replayed in order; the final frame is written as a
PNG image.

	cglabs coaster 570,30 300,300 30,570 space t=1.5 --out coaster.png
	cglabs mercator 150,200 450,320 n n n --out route.png
	cglabs points p 150,150 450,450 150,450 450,150 l 150,150 450,450 --out lines.png

An event is either a pixel position "x,y" (a left click), "t=seconds" (let
time pass), "space", or a single character (a key press).

Parameters are read from a NestedText file given with --config; trace
levels are set with keys below "tracelevel", e.g. "tracelevel.cglabs.rider".

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/cglabs/config"
	"github.com/npillmayer/cglabs/labs"
	"github.com/npillmayer/cglabs/labs/coaster"
	"github.com/npillmayer/cglabs/labs/mercator"
	"github.com/npillmayer/cglabs/labs/points"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// tracer writes to trace with key 'cglabs.cmd'
func tracer() tracing.Trace {
	return tracing.Select("cglabs.cmd")
}

type options struct {
	configPath string
	outPath    string
	conf       config.Config
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "cglabs",
		Short:        "Run a computer-graphics lab on scripted input and render the result",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "NestedText configuration file")
	root.PersistentFlags().StringVarP(&opts.outPath, "out", "o", "frame.png", "PNG file to write the final frame to")
	root.AddCommand(
		labCommand(opts, "points", "Place points, draw lines and intersect them",
			func(c config.Config) labs.App { return points.New(c) }),
		labCommand(opts, "coaster", "Build a roller-coaster track and let a wheel roll",
			func(c config.Config) labs.App { return coaster.New(c) }),
		labCommand(opts, "mercator", "Connect stations on a world map by great circles",
			func(c config.Config) labs.App { return mercator.New(c) }),
	)
	return root
}

func labCommand(opts *options, name, short string, create func(config.Config) labs.App) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [events...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := parseEvents(args)
			if err != nil {
				return err
			}
			app := create(opts.conf)
			replay(app, events)
			f, err := os.Create(opts.outPath)
			if err != nil {
				return err
			}
			if err := render(app, opts.conf, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			tracer().Infof("%s: %d events, frame written to %s", name, len(events), opts.outPath)
			return nil
		},
	}
}

// setup loads the configuration and installs tracing.
func (opts *options) setup() error {
	conf, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	opts.conf, err = config.FromConfiguration(conf)
	return err
}
