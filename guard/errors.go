// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package guard

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Kinds of failures reported by [Inserter.Add]. Every error returned by Add
// is an [*Error] wrapping exactly one of them.
var (
	// ErrNotFound means the file does not exist or cannot be read.
	ErrNotFound = errors.New("no such file exists")
	// ErrNameTooLong means the guard name is longer than MaxNameLen bytes.
	ErrNameTooLong = errors.New("guard name exceeds max permissible length")
	// ErrFormat means a guard line could not be synthesized from the name.
	ErrFormat = errors.New("cannot format guard line")
	// ErrClose means the file could not be closed after reading it.
	ErrClose = errors.New("not able to close file")
	// ErrWrite means the rewritten lines could not be persisted.
	ErrWrite = errors.New("cannot write file")
)

// Error describes a failure to add an include guard to a file.
type Error struct {
	// Path is the file being processed.
	Path string
	// Kind is one of the Err* sentinels of this package.
	Kind error
	// Err is the underlying cause, if any.
	Err error
}

func newError(path string, kind, err error) *Error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &Error{Path: path, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ExitCode returns the errno value conventionally used for e's kind as a
// process exit status.
func (e *Error) ExitCode() int {
	var errno syscall.Errno
	switch e.Kind {
	case ErrNotFound:
		errno = syscall.ENOENT
	case ErrNameTooLong:
		errno = syscall.EBADMSG
	case ErrFormat:
		errno = syscall.EINVAL
	case ErrClose:
		errno = syscall.ENOTTY
	default:
		errno = syscall.EIO
	}
	return int(errno)
}
