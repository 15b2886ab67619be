// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Includeguard adds #ifndef/#define/#endif include guards to a C or C++ header
that uses #pragma once.

Usage:

	$ includeguard [flags] <file> <guard-name>

The guard lines are inserted directly before the first line starting with
"#pragma once", and "#endif // <guard-name>" is appended at the end of the
file:

	#ifndef <guard-name>
	#define <guard-name>
	#pragma once
	...
	#endif // <guard-name>

On success, a line naming the command and the file is printed to standard
output. A file without a pragma line is left with its content unchanged: a
note is printed to standard error, nothing is printed to standard output, and
the exit status is 0.

Existing guards are not detected: running includeguard twice on the same file
nests a second guard block. The guard name must be at most 120 bytes long.

The guardname command derives a guard name from a header path.

On failure, includeguard exits with the errno value of the failure: ENOENT
for a missing file, EBADMSG for a name that is too long, EINVAL for a name
that cannot be formatted into a guard line, ENOTTY for a file that could not
be closed and EIO for a failed write. Usage errors exit with status 1.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/includeguard/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
