/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package test

import (
	"os"
	"path"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/emberlang/ember/pkg/errs"
	"github.com/emberlang/ember/pkg/interp"
	"github.com/emberlang/ember/pkg/romutil"
)

// config mirrors a single case.toml file.
type config struct {
	// Source is the inline program text to run. Mutually exclusive with
	// SourceFile.
	Source string

	// SourceFile, if set, names a file (relative to the case's own
	// directory) holding the program text instead of Source.
	SourceFile string

	// Stdout lists the exact chunks the Mouth must receive, in order, one
	// per Flush. The VM flushes once at the end of a run (and before a
	// runtime error), so all of a case's printed lines form one string.
	Stdout []string

	// StderrPattern, if non-empty, is a regexp the reported error's message
	// must match. Leave empty for cases that expect no error.
	StderrPattern string

	// ExitCode is the status ReportAndExit would choose for this case's
	// outcome. 0 means success.
	ExitCode int
}

// ExecuteSuite runs the case.toml files found under suitePath in walk order.
// It stops running cases at the first one that fails and returns that error.
func ExecuteSuite(suitePath string) errs.Error {
	var caseErr errs.Error

	walkErr := filepath.WalkDir(suitePath, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != "case.toml" {
			return nil
		}
		if caseErr != nil {
			return nil
		}
		caseErr = runCase(p)
		return nil
	})
	if walkErr != nil {
		return errs.NewFileIO("walking test suite at %v: %v", suitePath, walkErr)
	}
	return caseErr
}

// runCase runs the single case described by the TOML file at configPath.
func runCase(configPath string) errs.Error {
	caseDir := path.Dir(configPath)

	cfg, err := readConfig(configPath)
	if err != nil {
		return err
	}

	source := cfg.Source
	if cfg.SourceFile != "" {
		raw, ioErr := os.ReadFile(path.Join(caseDir, cfg.SourceFile))
		if ioErr != nil {
			return errs.NewFileIO("case %v: reading source file: %v", caseDir, ioErr)
		}
		source = string(raw)
	}

	mouth := &romutil.MemoryMouth{}
	it := interp.New(mouth)
	runErr := it.Run(source)
	mouth.Flush()

	gotExit := 0
	if runErr != nil {
		gotExit = runErr.ExitCode()
	}
	if gotExit != cfg.ExitCode {
		return errs.NewTestSuite(caseDir, "expected exit code %v, got %v", cfg.ExitCode, gotExit)
	}

	if cfg.StderrPattern != "" {
		if runErr == nil {
			return errs.NewTestSuite(caseDir, "expected an error matching %q, got none", cfg.StderrPattern)
		}
		re, reErr := regexp.Compile(cfg.StderrPattern)
		if reErr != nil {
			return errs.NewTestSuite(caseDir, "bad stderr pattern %q: %v", cfg.StderrPattern, reErr)
		}
		if !re.MatchString(runErr.Error()) {
			return errs.NewTestSuite(caseDir, "error %q does not match pattern %q", runErr.Error(), cfg.StderrPattern)
		}
	} else if runErr != nil {
		return errs.NewTestSuite(caseDir, "unexpected error: %v", runErr)
	}

	if len(cfg.Stdout) != len(mouth.Outputs) {
		return errs.NewTestSuite(caseDir, "got %v stdout chunks, expected %v", len(mouth.Outputs), len(cfg.Stdout))
	}
	for i, got := range mouth.Outputs {
		if got != cfg.Stdout[i] {
			return errs.NewTestSuite(caseDir, "stdout[%v] = %q, expected %q", i, got, cfg.Stdout[i])
		}
	}

	return nil
}

// readConfig reads and parses a case.toml file.
func readConfig(configPath string) (*config, errs.Error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errs.NewFileIO("reading %v: %v", configPath, err)
	}
	cfg := &config{}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, errs.NewFileIO("parsing %v: %v", configPath, err)
	}
	return cfg, nil
}
