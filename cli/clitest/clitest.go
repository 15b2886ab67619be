// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides table-driven testing of [cli.App] implementations.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/includeguard/cli"
)

// Case describes a single invocation of an application under test.
type Case[T cli.App] struct {
	// Args are the command-line arguments, without the program name.
	Args []string
	// Stdin is the standard input. Empty if nil.
	Stdin io.Reader
	// Env holds environment variables visible through Env.Getenv.
	Env map[string]string
	// Files are written, relative to a fresh temporary directory, before the
	// app runs. The app runs with that directory as its working directory.
	Files map[string]string

	// WantErr, if set, must match the returned error with errors.Is.
	WantErr error
	// WantErrType, if set, must match the returned error with errors.As.
	WantErrType error
	// WantExitCode, if non-zero, is the expected result of cli.ExitCode.
	WantExitCode int
	// WantInStdout and WantInStderr must be substrings of the respective
	// output streams.
	WantInStdout string
	WantInStderr string
	// WantNothingPrinted requires both output streams to be empty.
	WantNothingPrinted bool
	// WantEmptyStdout requires standard output to be empty.
	WantEmptyStdout bool
	// WantFiles maps paths relative to the temporary directory to their
	// expected contents after the run.
	WantFiles map[string]string
	// CheckFunc, if set, is called with the app after it ran.
	CheckFunc func(*testing.T, T)
}

// Run runs every case in its own subtest. setup is called once per case to
// construct a fresh app.
//
// Cases with Files change the working directory, so Run must not be used
// from parallel tests.
func Run[T cli.App](t *testing.T, setup func(*testing.T) T, cases map[string]Case[T]) {
	t.Helper()

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			var dir string
			if tc.Files != nil || tc.WantFiles != nil {
				dir = t.TempDir()
				for path, content := range tc.Files {
					writeFile(t, filepath.Join(dir, path), content)
				}
				t.Chdir(dir)
			}

			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}
			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   tc.Args,
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
				Getenv: func(key string) string { return tc.Env[key] },
			}

			err := cli.Run(cli.WithEnv(context.Background(), env), app)

			checkErr(t, err, tc.WantErr, tc.WantErrType)
			if tc.WantExitCode != 0 {
				if got := cli.ExitCode(err); got != tc.WantExitCode {
					t.Errorf("cli.ExitCode(%v) = %d, want %d", err, got, tc.WantExitCode)
				}
			}

			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr.String())
			}
			if tc.WantEmptyStdout && stdout.Len() > 0 {
				t.Errorf("stdout must be empty, got: %q", stdout.String())
			}
			if tc.WantNothingPrinted && (stdout.Len() > 0 || stderr.Len() > 0) {
				t.Errorf("want nothing printed, got stdout %q and stderr %q", stdout.String(), stderr.String())
			}

			for path, want := range tc.WantFiles {
				got, err := os.ReadFile(filepath.Join(dir, path))
				if err != nil {
					t.Fatalf("reading %q: %v", path, err)
				}
				if string(got) != want {
					t.Errorf("file %q:\ngot:  %q\nwant: %q", path, got, want)
				}
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}

func checkErr(t *testing.T, err, wantErr, wantErrType error) {
	t.Helper()

	if wantErr == nil && wantErrType == nil {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	if wantErr != nil && !errors.Is(err, wantErr) {
		t.Fatalf("want error %v, got %v", wantErr, err)
	}
	if wantErrType != nil {
		target := reflect.New(reflect.TypeOf(wantErrType))
		if !errors.As(err, target.Interface()) {
			t.Fatalf("want error of type %T, got %v (%T)", wantErrType, err, err)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
