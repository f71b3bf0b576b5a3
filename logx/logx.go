// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog setup: a user log level
// chosen by build tag and a terminal handler that colors levels.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically be
// set through the -v and -q command line flags. It defaults to
// [slog.LevelInfo], or Debug / Warn under the debug / release tags.
var UserLevel = defaultUserLevel

var levelVar = func() *slog.LevelVar {
	lv := &slog.LevelVar{}
	lv.Set(defaultUserLevel)
	return lv
}()

// SetLevel sets [UserLevel] and the level of any handler made by [Init].
func SetLevel(level slog.Level) {
	UserLevel = level
	levelVar.Set(level)
}

// Init installs a [Handler] writing to w (os.Stderr if nil)
// as the [slog] default.
func Init(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lg := slog.New(NewHandler(w, levelVar))
	slog.SetDefault(lg)
	return lg
}
