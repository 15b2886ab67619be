// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"strings"
	"testing"

	"go.astrophena.name/includeguard/cli"
	"go.astrophena.name/includeguard/cli/clitest"
	"go.astrophena.name/includeguard/guard"
)

func TestRun(t *testing.T) {
	cases := map[string]clitest.Case[*app]{
		"no arguments": {
			Args:         []string{},
			WantErr:      cli.ErrInvalidArgs,
			WantExitCode: 1,
		},
		"too many arguments": {
			Args:    []string{"a.h", "b.h"},
			WantErr: cli.ErrInvalidArgs,
		},
		"default suffix": {
			Args:         []string{"src/widgets/point.hpp"},
			WantInStdout: "SRC_WIDGETS_POINT_H_\n",
		},
		"project and suffix": {
			Args:         []string{"-project", "acme", "-suffix", "_INCLUDED", "include/net/client.h"},
			WantInStdout: "ACME_NET_CLIENT_INCLUDED\n",
		},
		"empty suffix": {
			Args:         []string{"-suffix", "", "core/types.h"},
			WantInStdout: "CORE_TYPES\n",
		},
		"name too long": {
			Args:    []string{strings.Repeat("a", guard.MaxNameLen) + ".h"},
			WantErr: guard.ErrNameTooLong,
		},
	}

	clitest.Run(t, func(t *testing.T) *app { return new(app) }, cases)
}
