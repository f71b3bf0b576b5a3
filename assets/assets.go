// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets opens data files (fonts, quote corpora) from a
// filesystem, transparently decompressing zstd (.zst) and gzip (.gz)
// encoded files.
package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"cogentcore.org/quoteforest/base/fsx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression is the compression encoding of an asset file.
type Compression int32

const (
	// Uncompressed files are read as is.
	Uncompressed Compression = iota

	// Zstd files have a .zst suffix.
	Zstd

	// Gzip files have a .gz suffix.
	Gzip
)

func (c Compression) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case Gzip:
		return "gzip"
	}
	return "none"
}

// CompressionOf returns the compression encoding of the given file name
// and the name with the compression suffix removed.
func CompressionOf(name string) (Compression, string) {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		return Zstd, strings.TrimSuffix(name, path.Ext(name))
	case ".gz":
		return Gzip, strings.TrimSuffix(name, path.Ext(name))
	}
	return Uncompressed, name
}

// Ext returns the lowercase extension of the given name after any
// compression suffix is removed, so that "quotes.yaml.zst" is ".yaml".
func Ext(name string) string {
	_, base := CompressionOf(name)
	return strings.ToLower(path.Ext(base))
}

// Open opens the named file in fsys, returning a reader of its
// decompressed contents.
func Open(fsys fs.FS, name string) (io.ReadCloser, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	rc, err := NewReader(f, name)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("assets.Open %s: %w", name, err)
	}
	return &fileReader{ReadCloser: rc, file: f}, nil
}

// OpenFile opens the named file on the OS filesystem, returning a
// reader of its decompressed contents.
func OpenFile(filename string) (io.ReadCloser, error) {
	fsys, name, err := fsx.DirFS(filename)
	if err != nil {
		return nil, err
	}
	return Open(fsys, name)
}

// NewReader wraps r in a decompressor selected by the suffix of name.
func NewReader(r io.Reader, name string) (io.ReadCloser, error) {
	comp, _ := CompressionOf(name)
	switch comp {
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case Gzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return gr, nil
	}
	return io.NopCloser(r), nil
}

// ReadFile reads the named file in fsys and returns its decompressed contents.
func ReadFile(fsys fs.FS, name string) ([]byte, error) {
	rc, err := Open(fsys, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// ReadOSFile reads the named file on the OS filesystem and returns
// its decompressed contents.
func ReadOSFile(filename string) ([]byte, error) {
	rc, err := OpenFile(filepath.Clean(filename))
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Compress returns data encoded with the given compression.
func Compress(data []byte, comp Compression) ([]byte, error) {
	var b bytes.Buffer
	var w io.WriteCloser
	switch comp {
	case Zstd:
		zw, err := zstd.NewWriter(&b)
		if err != nil {
			return nil, err
		}
		w = zw
	case Gzip:
		w = gzip.NewWriter(&b)
	default:
		return data, nil
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// fileReader closes both the decompressor and the underlying file.
type fileReader struct {
	io.ReadCloser
	file fs.File
}

func (r *fileReader) Close() error {
	err := r.ReadCloser.Close()
	if ferr := r.file.Close(); err == nil {
		err = ferr
	}
	return err
}
