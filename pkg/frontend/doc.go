/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

// Package frontend turns Ember source code into a Token stream. There is no
// AST: the compiler package consumes these tokens directly, one at a time, in
// its single pass over the source.
package frontend
