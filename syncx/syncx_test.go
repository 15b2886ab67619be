// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"sync"
	"testing"

	"go.astrophena.name/includeguard/testutil"
)

func TestLazy(t *testing.T) {
	t.Parallel()

	var (
		l     Lazy[string]
		calls int
		wg    sync.WaitGroup
	)
	f := func() string {
		calls++
		return "computed"
	}

	for range 10 {
		wg.Go(func() { l.Get(f) })
	}
	wg.Wait()

	testutil.AssertEqual(t, l.Get(f), "computed")
	testutil.AssertEqual(t, calls, 1)
}
