/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package test

import (
	"testing"
)

// TestRunSuite runs Ember's golden end-to-end test suite. Not a proper unit
// test in the usual sense, but a convenient way to get both the test run and
// its code coverage from `go test`.
func TestRunSuite(t *testing.T) {
	if err := ExecuteSuite("../../testdata/suite"); err != nil {
		t.Fatalf("test suite: %v", err)
	}
}
