// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package guard adds #ifndef/#define/#endif include guards to C and C++
// headers that use #pragma once.
//
// Given a header
//
//	#pragma once
//	int x;
//
// and the guard name FOO_H_, [AddIncludeGuard] rewrites it to
//
//	#ifndef FOO_H_
//	#define FOO_H_
//	#pragma once
//	int x;
//	#endif // FOO_H_
//
// Only the first line starting with #pragma once is considered. Existing
// guards are not detected, so running twice nests a second guard block.
// Files without a pragma line are rewritten with unchanged content.
package guard

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"go.astrophena.name/includeguard/logger"
)

const (
	// Pragma is the prefix of the line that guards are anchored to.
	Pragma = "#pragma once"
	// MaxNameLen is the maximum length of a guard name, in bytes.
	MaxNameLen = 120
)

// Block is the set of guard lines derived from a guard name.
type Block struct {
	Name   string
	Ifndef string // #ifndef NAME
	Define string // #define NAME
	Endif  string // #endif // NAME
}

// NewBlock builds the guard lines for name.
//
// It fails with [ErrNameTooLong] if name is longer than [MaxNameLen] and with
// [ErrFormat] if name contains a line break, since the result would not be a
// single line. The name is not otherwise checked to be a valid identifier.
func NewBlock(name string) (Block, error) {
	if len(name) > MaxNameLen {
		return Block{}, ErrNameTooLong
	}
	if strings.ContainsAny(name, "\r\n") {
		return Block{}, ErrFormat
	}
	return Block{
		Name:   name,
		Ifndef: "#ifndef " + name,
		Define: "#define " + name,
		Endif:  "#endif // " + name,
	}, nil
}

type scanState int

const (
	searching scanState = iota
	inserted
)

// Insert returns lines with b spliced in: Ifndef and Define directly before
// the first line starting with [Pragma], and Endif as the last line.
//
// pragma is the index of the pragma line in lines, or -1 if there is none,
// in which case out has the same contents as lines.
func Insert(lines []string, b Block) (out []string, pragma int) {
	out = make([]string, 0, len(lines)+3)
	pragma = -1
	state := searching
	for i, line := range lines {
		if state == searching && strings.HasPrefix(line, Pragma) {
			out = append(out, b.Ifndef, b.Define)
			pragma = i
			state = inserted
		}
		out = append(out, line)
	}
	if state == inserted {
		out = append(out, b.Endif)
	}
	return out, pragma
}

// Inserter adds include guards to files.
//
// The zero value replaces files atomically. A symlinked file has its target
// replaced and the link is left in place. Hard links to the file stop sharing
// its content; set InPlace to keep them.
type Inserter struct {
	// InPlace makes the Inserter truncate and rewrite the existing file
	// instead of replacing it through a temporary file.
	InPlace bool
	// DryRun, if not nil, receives the rewritten content instead of the file.
	DryRun io.Writer
}

// Result describes a successful call to [Inserter.Add].
type Result struct {
	// Inserted reports whether a pragma line was found and guards were added.
	Inserted bool
	// PragmaLine is the 0-based index of the pragma line in the original
	// file, or -1.
	PragmaLine int
	// Lines is the number of lines written.
	Lines int
}

// AddIncludeGuard adds include guards named name to the file at path using
// the default [Inserter].
func AddIncludeGuard(ctx context.Context, path, name string) error {
	_, err := new(Inserter).Add(ctx, path, name)
	return err
}

// Add rewrites the file at path, adding include guards named name around
// its content.
//
// The file is read completely and closed before it is written. A failure
// before the write leaves the file untouched. The file is rewritten even if
// it has no pragma line.
func (in *Inserter) Add(ctx context.Context, path, name string) (Result, error) {
	lines, b, err := read(path, name)
	if err != nil {
		return Result{}, err
	}
	logger.Debug(ctx, "read file", slog.String("path", path), slog.Int("lines", len(lines)))

	out, pragma := Insert(lines, b)
	if pragma < 0 {
		logger.Info(ctx, "no pragma found in file, not adding include guard", slog.String("path", path))
	} else {
		logger.Debug(ctx, "found pragma", slog.String("path", path), slog.Int("line", pragma+1))
	}

	if err := in.write(path, out); err != nil {
		return Result{}, newError(path, ErrWrite, err)
	}
	return Result{Inserted: pragma >= 0, PragmaLine: pragma, Lines: len(out)}, nil
}

func read(path, name string) (lines []string, b Block, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Block{}, newError(path, ErrNotFound, err)
	}
	closed := false
	defer func() {
		if !closed {
			f.Close()
		}
	}()

	b, err = NewBlock(name)
	if err != nil {
		return nil, Block{}, newError(path, err, nil)
	}

	lines, err = readLines(f)
	if err != nil {
		return nil, Block{}, newError(path, ErrNotFound, err)
	}

	closed = true
	if err := f.Close(); err != nil {
		return nil, Block{}, newError(path, ErrClose, err)
	}
	return lines, b, nil
}

// readLines splits r on '\n'. A trailing '\r' is kept as part of the line.
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (in *Inserter) write(path string, lines []string) error {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	switch {
	case in.DryRun != nil:
		_, err := in.DryRun.Write(buf.Bytes())
		return err
	case in.InPlace:
		return writeInPlace(path, buf.Bytes())
	default:
		target, err := filepath.EvalSymlinks(path)
		if err != nil {
			return err
		}
		return atomic.WriteFile(target, &buf)
	}
}

func writeInPlace(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}
