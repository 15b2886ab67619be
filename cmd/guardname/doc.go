// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Guardname prints an include guard name derived from a header path.

Usage:

	$ guardname [-project name] [-suffix _H_] <path>

The name has the form <PROJECT>_<PATH>_<FILENAME><SUFFIX>. Directories named
"include" and repeated path components are skipped, and the file extension is
dropped. The suffix defaults to _H_ and can be empty. For example,

	$ guardname -project acme include/net/http/client.hpp
	ACME_NET_HTTP_CLIENT_H_

The output can be passed to includeguard:

	$ includeguard include/net/http/client.hpp "$(guardname -project acme include/net/http/client.hpp)"
*/
package main

import (
	_ "embed"

	"go.astrophena.name/includeguard/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
