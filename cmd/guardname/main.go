// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"go.astrophena.name/includeguard/cli"
	"go.astrophena.name/includeguard/guard"
	"go.astrophena.name/includeguard/guardname"
)

func main() { cli.Main(new(app)) }

type app struct {
	opts guardname.Options
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.opts.Project, "project", "", "Project `name` to prefix the guard with.")
	fs.StringVar(&a.opts.Suffix, "suffix", guardname.DefaultSuffix, "Guard `suffix`. An empty value means no suffix.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	switch len(env.Args) {
	case 0:
		return fmt.Errorf("%w: needs a header path", cli.ErrInvalidArgs)
	case 1:
	default:
		return fmt.Errorf("%w: needs exactly one header path, got %d", cli.ErrInvalidArgs, len(env.Args))
	}

	name := guardname.Derive(filepath.ToSlash(env.Args[0]), a.opts)
	if _, err := guard.NewBlock(name); err != nil {
		return fmt.Errorf("derived guard name %q: %w", name, err)
	}
	fmt.Fprintln(env.Stdout, name)
	return nil
}
