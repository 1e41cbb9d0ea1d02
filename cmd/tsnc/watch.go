// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/cespare/xxhash/v2"
	"github.com/ethereum/go-ethereum/log"
	lru "github.com/hashicorp/golang-lru"
	"github.com/rjeczalik/notify"
	"gopkg.in/urfave/cli.v1"

	"github.com/probeum/go-tsnative/lang/parser"
)

var watchCommand = cli.Command{
	Action:    watch,
	Name:      "watch",
	Usage:     "Re-check source files whenever they are written",
	ArgsUsage: "FILE|DIR",
	Flags: []cli.Flag{
		maxDepthFlag,
		cacheSizeFlag,
	},
	Category: "PARSER COMMANDS",
	Description: `
The watch command checks FILE, or every .ts and .tsn file under DIR, and then
checks each file again whenever it is written. Rewrites that leave the
content unchanged are skipped.`,
}

// sourceExts are the file extensions picked up when watching a directory.
var sourceExts = map[string]bool{
	".ts":  true,
	".tsn": true,
}

// watcher re-checks files and remembers the digest of the content it last
// checked for each path.
type watcher struct {
	cfg    parser.Config
	out    io.Writer
	hashes *lru.ARCCache // path -> xxhash of last checked content
}

func newWatcher(cfg parser.Config, cacheSize int, out io.Writer) (*watcher, error) {
	hashes, err := lru.NewARC(cacheSize)
	if err != nil {
		return nil, err
	}
	return &watcher{cfg: cfg, out: out, hashes: hashes}, nil
}

// check parses path unless its content is unchanged since the last check.
// It reports whether the file was parsed and the parse error, if any.
func (w *watcher) check(path string) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	digest := xxhash.Sum64(src)
	if prev, ok := w.hashes.Get(path); ok && prev.(uint64) == digest {
		log.Trace("Skipping unchanged file", "file", path)
		return false, nil
	}
	w.hashes.Add(path, digest)

	prog, err := parser.ParseFile(path, string(src), w.cfg)
	if err != nil {
		writeDiagnostic(w.out, err)
		return true, err
	}
	log.Info("File ok", "file", path, "statements", len(prog.Body))
	return true, nil
}

// sourceFiles lists the files a watch on root covers.
func sourceFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && sourceExts[filepath.Ext(path)] {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// watchTarget returns the notify path for root and the filter applied to event
// paths. A single file is watched through its directory, so that saves which
// replace the file by renaming keep being seen.
func watchTarget(root string, isDir bool) (string, func(string) bool) {
	if isDir {
		return filepath.Join(root, "..."), func(path string) bool {
			return sourceExts[filepath.Ext(path)]
		}
	}
	return filepath.Dir(root), func(path string) bool {
		return path == root
	}
}

func watch(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("watch needs exactly one FILE or DIR argument", 2)
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	root, err := filepath.Abs(ctx.Args().First())
	if err != nil {
		return err
	}
	files, err := sourceFiles(root)
	if err != nil {
		return err
	}
	w, err := newWatcher(cfg.Parser, cfg.Watch.CacheSize, os.Stderr)
	if err != nil {
		return err
	}
	for _, path := range files {
		if _, err := w.check(path); err != nil && !isSyntaxError(err) {
			log.Warn("Failed to check file", "file", path, "err", err)
		}
	}

	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	target, match := watchTarget(root, info.IsDir())
	events := make(chan notify.EventInfo, 16)
	if err := notify.Watch(target, events, notify.Write, notify.Create, notify.Rename); err != nil {
		return err
	}
	defer notify.Stop(events)
	log.Info("Watching for changes", "path", root, "files", len(files))

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)

	for {
		select {
		case ev := <-events:
			path := ev.Path()
			if !match(path) {
				continue
			}
			log.Debug("File changed", "file", path, "event", ev.Event())
			if _, err := w.check(path); err != nil && !isSyntaxError(err) {
				log.Warn("Failed to check file", "file", path, "err", err)
			}
		case <-sigc:
			log.Info("Stopped watching", "path", root)
			return nil
		}
	}
}
