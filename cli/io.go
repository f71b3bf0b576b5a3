// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/quoteforest/base/fsx"
	"cogentcore.org/quoteforest/base/iox/tomlx"
	"github.com/mitchellh/go-homedir"
)

// Options are the options for opening config files.
type Options struct {

	// IncludePaths is the list of directories searched for config
	// files and their includes. The current directory is used if empty.
	// A leading ~ is expanded to the home directory.
	IncludePaths []string

	// KeepValues reads files on top of the current values of the
	// config object instead of its defaults.
	KeepValues bool
}

// includer is implemented by config objects that can include
// other config files.
type includer interface {
	// IncludesPtr returns a pointer to the list of files
	// included by this config.
	IncludesPtr() *[]string
}

// Open sets the config object from its `default:` tags, unless
// [Options.KeepValues] is set, and then reads the given config file
// on top of them, processing any includes.
// A leading ~ in file is expanded to the home directory.
func Open(opts *Options, cfg any, file string) error {
	if !opts.KeepValues {
		if err := SetFromDefaults(cfg); err != nil {
			return err
		}
	}
	if file == "" {
		return nil
	}
	file, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	return openWithIncludes(opts, cfg, file)
}

// openWithIncludes reads the config struct from the given config file
// using the given options, looking on [Options.IncludePaths] for the file.
// It opens any Includes specified in the given config file in the natural
// include order so that includers overwrite included settings.
// Is equivalent to Open if there are no Includes. It returns an error if
// any of the include files cannot be found on [Options.IncludePaths].
func openWithIncludes(opts *Options, cfg any, file string) error {
	paths := make([]string, 0, len(opts.IncludePaths))
	for _, p := range opts.IncludePaths {
		if ep, err := homedir.Expand(p); err == nil {
			p = ep
		}
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files := fsx.FindFilesOnPaths(paths, file)
	if len(files) == 0 {
		return fmt.Errorf("cli.Open: no files found for %q", file)
	}
	err := tomlx.OpenFiles(cfg, files...)
	if err != nil {
		return err
	}
	incfg, ok := cfg.(includer)
	if !ok {
		return nil
	}
	incs, err := includeStack(paths, incfg)
	ni := len(incs)
	if ni == 0 {
		return err
	}
	for i := ni - 1; i >= 0; i-- {
		inc := incs[i]
		ierr := tomlx.OpenFiles(cfg, fsx.FindFilesOnPaths(paths, inc)...)
		if ierr != nil {
			slog.Error("cli.Open: opening include", "file", inc, "err", ierr)
		}
	}
	// reopen original
	if err := tomlx.OpenFiles(cfg, files...); err != nil {
		return err
	}
	*incfg.IncludesPtr() = incs
	return err
}

// includeStack returns the stack of include files in the natural
// order in which they are encountered (nil if none).
// Files should then be read in reverse order of the slice.
// Returns an error if any of the include files cannot be found.
func includeStack(paths []string, cfg includer) ([]string, error) {
	clone := slices.Clone(*cfg.IncludesPtr())
	*cfg.IncludesPtr() = nil
	var stack []string
	for len(clone) > 0 {
		inc := clone[0]
		clone = clone[1:]
		if slices.Contains(stack, inc) {
			continue
		}
		files := fsx.FindFilesOnPaths(paths, inc)
		if len(files) == 0 {
			return stack, fmt.Errorf("cli.Open: include file %q not found", inc)
		}
		stack = append(stack, inc)
		if err := tomlx.OpenFiles(cfg, files...); err != nil {
			return stack, err
		}
		clone = append(clone, *cfg.IncludesPtr()...)
		*cfg.IncludesPtr() = nil
	}
	return stack, nil
}
