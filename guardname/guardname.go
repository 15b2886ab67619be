// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package guardname derives include guard names from header paths.
//
// A header at include/net/http/client.hpp in project acme gets the name
// ACME_NET_HTTP_CLIENT_H_.
package guardname

import (
	"path"
	"strings"
)

// DefaultSuffix is the conventional guard suffix.
const DefaultSuffix = "_H_"

// Options configure [Derive].
type Options struct {
	// Project, if not empty, is prepended to the name.
	Project string
	// Suffix is appended to the name as is, usually DefaultSuffix.
	Suffix string
}

// Derive returns the guard name for the header at the slash-separated path p.
//
// Directories named "include", repeated components and the file extension
// are dropped. The walk stops at the first component equal to the
// lower-cased file name, so foo/foo.h becomes FOO_H_. Bytes that cannot
// appear in a macro name are replaced with underscores.
func Derive(p string, opts Options) string {
	base := path.Base(p)
	if ext := path.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}

	parts := strings.Split(path.Clean(p), "/")
	parts[len(parts)-1] = base

	seen := map[string]bool{"include": true, ".": true, "..": true, "": true}
	var words []string
	if opts.Project != "" {
		words = append(words, sanitize(opts.Project))
	}
	for _, part := range parts {
		if seen[part] {
			continue
		}
		seen[part] = true
		words = append(words, sanitize(part))
		if part == strings.ToLower(base) {
			break
		}
	}

	return strings.Join(words, "_") + opts.Suffix
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
