// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text3d

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"cogentcore.org/quoteforest/assets"
	"github.com/h2non/filetype"
)

// BuiltinPrefix marks a font path naming a font compiled into the binary,
// as in "builtin:lmsans10".
const BuiltinPrefix = "builtin:"

// Loader loads fonts by path.
type Loader interface {
	Load(ctx context.Context, path string) (Font, error)
}

// FileLoader loads fonts from a file system, choosing the format from
// the file extension: typeface JSON for .json, OpenType for .ttf
// and .otf. Files with other extensions are recognized as OpenType
// by their content. Files may be zstd or gzip compressed (.zst, .gz).
type FileLoader struct {

	// FS is the file system to read from; if nil, paths name
	// files on the OS file system.
	FS fs.FS
}

func (fl *FileLoader) Load(ctx context.Context, path string) (Font, error) {
	if name, ok := strings.CutPrefix(path, BuiltinPrefix); ok {
		return Builtin(name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	var err error
	if fl.FS == nil {
		data, err = assets.ReadOSFile(path)
	} else {
		data, err = assets.ReadFile(fl.FS, path)
	}
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ext := strings.ToLower(assets.Ext(path))
	switch ext {
	case ".json":
		return ParseTypeface(data)
	case ".ttf", ".otf":
		return ParseOpenType(data)
	}
	// otherwise go by content
	kind, _ := filetype.Match(data)
	switch kind.Extension {
	case "ttf", "otf":
		return ParseOpenType(data)
	}
	return nil, fmt.Errorf("text3d: unsupported font format %q for %q", ext, path)
}

// LoadAsync loads the font at path on a new goroutine and calls done
// with the result on that goroutine. Callers that need the result on
// another thread must hand it over themselves.
func LoadAsync(ctx context.Context, ld Loader, path string, done func(Font, error)) {
	go func() {
		st := time.Now()
		f, err := ld.Load(ctx, path)
		if err != nil {
			slog.Debug("font load failed", "path", path, "err", err)
		} else {
			slog.Debug("font loaded", "path", path, "took", time.Since(st))
		}
		done(f, err)
	}()
}
