/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package test runs Ember's end-to-end golden test suite: one TOML file per
// case under testdata/suite/, each describing a source snippet and the
// stdout/stderr/exit code it should produce.
package test
