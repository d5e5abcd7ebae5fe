/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"github.com/emberlang/ember/pkg/errs"
)

// reportAndExit reports err to the end user and exits with the matching
// status code. It's fine if err is nil: this just means we had a successful
// execution and therefore we'll exit successfully.
func reportAndExit(err errs.Error) {
	errs.ReportAndExit(err)
}
