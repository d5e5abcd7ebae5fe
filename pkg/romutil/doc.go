/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package romutil contains assorted utilities shared by other Ember
// packages: today, just the Mouth/Ear output/input abstractions used by the
// VM and the REPL.
package romutil
