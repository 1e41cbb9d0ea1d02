// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package source maps byte offsets in a TSN source text to line/column
// positions and renders lines of source context for diagnostics.
package source

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Position is a resolved source location.
type Position struct {
	File   string
	Line   int // 1-based
	Column int // 1-based, counted in runes
	Offset int // byte offset
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// File is an immutable source text together with its line index.
type File struct {
	name  string
	text  string
	lines []int // byte offset of the first byte of each line
}

// NewFile indexes text. The name is only used when rendering positions.
func NewFile(name, text string) *File {
	lines := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &File{name: name, text: text, lines: lines}
}

// Name returns the file name given to NewFile.
func (f *File) Name() string { return f.name }

// Text returns the full source text.
func (f *File) Text() string { return f.text }

// Size returns the length of the source in bytes.
func (f *File) Size() int { return len(f.text) }

// LineCount returns the number of lines in the file. An empty file has one.
func (f *File) LineCount() int { return len(f.lines) }

// Position resolves a byte offset. Offsets outside the text are clamped.
func (f *File) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.text) {
		offset = len(f.text)
	}
	// Index of the last line starting at or before offset.
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset }) - 1
	start := f.lines[i]
	return Position{
		File:   f.name,
		Line:   i + 1,
		Column: utf8.RuneCountInString(f.text[start:offset]) + 1,
		Offset: offset,
	}
}

// Line returns the text of the 1-based line n without its terminator.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		return ""
	}
	start := f.lines[n-1]
	end := len(f.text)
	if n < len(f.lines) {
		end = f.lines[n] - 1
	}
	return strings.TrimSuffix(f.text[start:end], "\r")
}

// Context renders the line holding offset followed by a caret line pointing
// at the offset's column. Tabs in the line are kept in the caret prefix so the
// caret stays aligned.
func (f *File) Context(offset int) string {
	pos := f.Position(offset)
	line := f.Line(pos.Line)

	var caret strings.Builder
	col := 1
	for _, r := range line {
		if col >= pos.Column {
			break
		}
		if r == '\t' {
			caret.WriteByte('\t')
		} else {
			caret.WriteByte(' ')
		}
		col++
	}
	caret.WriteByte('^')
	return line + "\n" + caret.String()
}
