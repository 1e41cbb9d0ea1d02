// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"runtime"
	"unicode"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"

	"github.com/probeum/go-tsnative/lang/parser"
)

var (
	dumpConfigCommand = cli.Command{
		Action:    dumpConfig,
		Name:      "dumpconfig",
		Usage:     "Show configuration values",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			maxDepthFlag,
			formatFlag,
			outFlag,
			workersFlag,
			cacheSizeFlag,
		},
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The dumpconfig command writes the effective configuration as TOML, to FILE or stdout.`,
	}

	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	maxDepthFlag = cli.IntFlag{
		Name:  "maxdepth",
		Usage: "Maximum nesting of blocks and call arguments",
	}
	formatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "Tree output format (json, spew, text)",
	}
	outFlag = cli.StringFlag{
		Name:  "out",
		Usage: "Write output to this file instead of stdout",
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "Number of files parsed concurrently",
	}
	cacheSizeFlag = cli.IntFlag{
		Name:  "cachesize",
		Usage: "Number of file digests remembered by watch",
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

const (
	formatJSON = "json"
	formatSpew = "spew"
	formatText = "text"
)

type outputConfig struct {
	Format string
	Out    string `toml:",omitempty"`
}

type checkConfig struct {
	Workers int
}

type watchConfig struct {
	CacheSize int
}

type tsncConfig struct {
	Parser parser.Config
	Output outputConfig
	Check  checkConfig
	Watch  watchConfig
}

func defaultConfig() tsncConfig {
	return tsncConfig{
		Parser: parser.DefaultConfig,
		Output: outputConfig{Format: formatJSON},
		Check:  checkConfig{Workers: runtime.NumCPU()},
		Watch:  watchConfig{CacheSize: 1024},
	}
}

func loadConfig(file string, cfg *tsncConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads defaults, then the config file, then command flags.
func makeConfig(ctx *cli.Context) (tsncConfig, error) {
	cfg := defaultConfig()
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	applyFlags(ctx, &cfg)
	return cfg, cfg.validate()
}

func applyFlags(ctx *cli.Context, cfg *tsncConfig) {
	if ctx.IsSet(maxDepthFlag.Name) {
		cfg.Parser.MaxDepth = ctx.Int(maxDepthFlag.Name)
	}
	if ctx.IsSet(formatFlag.Name) {
		cfg.Output.Format = ctx.String(formatFlag.Name)
	}
	if ctx.IsSet(outFlag.Name) {
		cfg.Output.Out = ctx.String(outFlag.Name)
	}
	if ctx.IsSet(workersFlag.Name) {
		cfg.Check.Workers = ctx.Int(workersFlag.Name)
	}
	if ctx.IsSet(cacheSizeFlag.Name) {
		cfg.Watch.CacheSize = ctx.Int(cacheSizeFlag.Name)
	}
}

func (cfg *tsncConfig) validate() error {
	switch cfg.Output.Format {
	case formatJSON, formatSpew, formatText:
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", cfg.Output.Format, formatJSON, formatSpew, formatText)
	}
	if cfg.Parser.MaxDepth < 0 {
		return fmt.Errorf("invalid MaxDepth %d", cfg.Parser.MaxDepth)
	}
	if cfg.Check.Workers < 1 {
		return fmt.Errorf("invalid Workers %d, need at least 1", cfg.Check.Workers)
	}
	if cfg.Watch.CacheSize < 1 {
		return fmt.Errorf("invalid CacheSize %d, need at least 1", cfg.Watch.CacheSize)
	}
	return nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	dump := os.Stdout
	if ctx.NArg() > 0 {
		dump, err = os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer dump.Close()
	}
	_, err = dump.Write(out)
	return err
}
