// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"go.astrophena.name/includeguard/cli"
	"go.astrophena.name/includeguard/guard"
	"go.astrophena.name/includeguard/logger"
	"go.astrophena.name/includeguard/version"
)

func main() { cli.Main(new(app)) }

type app struct {
	dry     bool
	inPlace bool
	verbose bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.dry, "dry", false, "Print the rewritten file to stdout, without making changes.")
	fs.BoolVar(&a.inPlace, "inplace", false, "Truncate and rewrite the file in place instead of replacing it atomically.")
	fs.BoolVar(&a.verbose, "v", false, "Enable verbose logging.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	ctx = logger.Put(ctx, logger.NewTerminal(env.Stderr, level))

	switch len(env.Args) {
	case 0:
		return fmt.Errorf("%w: needs a file name and a guard name (usage: %s <file> <guard-name>)", cli.ErrInvalidArgs, version.CmdName())
	case 1:
		return fmt.Errorf("%w: needs a guard name to add to %s (usage: %s <file> <guard-name>)", cli.ErrInvalidArgs, env.Args[0], version.CmdName())
	case 2:
	default:
		env.Logf("Wrong usage: only needs a single include guard argument, ignoring %q.", env.Args[2:])
	}
	path, name := env.Args[0], env.Args[1]

	in := &guard.Inserter{InPlace: a.inPlace}
	if a.dry {
		in.DryRun = env.Stdout
	}

	res, err := in.Add(ctx, path, name)
	if err != nil {
		return fmt.Errorf("adding include guard failed: %w", err)
	}
	if res.Inserted && !a.dry {
		fmt.Fprintf(env.Stdout, "%s: added include guard %s to %s\n", version.CmdName(), name, path)
	}
	return nil
}
