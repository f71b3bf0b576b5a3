// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forest

import (
	"fmt"
	"log/slog"

	"cogentcore.org/quoteforest/base/errors"
	"cogentcore.org/quoteforest/logx"
)

var (
	// ErrEnvironmentUnavailable is returned by [New] without a container.
	ErrEnvironmentUnavailable = errors.New("forest: environment unavailable")

	// ErrAssetLoad matches every [AssetLoadError].
	ErrAssetLoad = errors.New("forest: asset load failed")

	// ErrInvariant marks a broken internal invariant, such as a text
	// entity without geometry.
	ErrInvariant = errors.New("forest: invariant violation")
)

// AssetLoadError reports an asset that could not be loaded.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("forest: loading %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

func (e *AssetLoadError) Is(target error) bool {
	return target == ErrAssetLoad
}

// violated reports a broken invariant: it panics in debug builds and
// logs otherwise.
func violated(format string, args ...any) error {
	err := fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...)
	if logx.Debug {
		panic(err)
	}
	slog.Error(err.Error())
	return err
}
