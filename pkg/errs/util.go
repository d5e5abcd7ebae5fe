/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

import (
	"errors"
	"fmt"
	"os"
)

// ReportAndExit reports err to stderr and exits with its matching status
// code. Fine to call with a nil err, which exits 0.
func ReportAndExit(err error) {
	var badUsage *BadUsage
	var fileIO *FileIO
	var compTime *CompileTime
	var compTimeColl *CompileTimeCollection
	var runtime *Runtime
	var ice *ICE
	var testSuite *TestSuite

	switch {
	case err == nil:
		os.Exit(StatusCodeSuccess)

	case errors.As(err, &badUsage):
		fmt.Fprintf(os.Stderr, "%v\n", badUsage)
		os.Exit(badUsage.ExitCode())

	case errors.As(err, &fileIO):
		fmt.Fprintf(os.Stderr, "%v\n", fileIO)
		os.Exit(fileIO.ExitCode())

	case errors.As(err, &compTimeColl):
		fmt.Fprintf(os.Stderr, "%v\n", compTimeColl)
		os.Exit(compTimeColl.ExitCode())

	case errors.As(err, &compTime):
		fmt.Fprintf(os.Stderr, "%v\n", compTime)
		os.Exit(compTime.ExitCode())

	case errors.As(err, &runtime):
		fmt.Fprintf(os.Stderr, "%v\n", runtime)
		os.Exit(runtime.ExitCode())

	case errors.As(err, &ice):
		fmt.Fprintf(os.Stderr, "%v\n", ice)
		os.Exit(ice.ExitCode())

	case errors.As(err, &testSuite):
		fmt.Fprintf(os.Stderr, "%v\n", testSuite)
		os.Exit(testSuite.ExitCode())

	default:
		fmt.Fprintf(os.Stderr, "Internal error: unexpected error of type %T: %v\n", err, err)
		os.Exit(StatusCodeICE)
	}
}
