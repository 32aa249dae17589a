// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progress_test

import (
	"testing"

	"cogentcore.org/rainbow/progress"
	"cogentcore.org/rainbow/progress/storetest"
)

func TestMemStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) progress.Store {
		return progress.NewMemStore()
	})
}
