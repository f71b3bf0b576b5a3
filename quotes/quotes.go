// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quotes provides the quote corpus that the forest draws its
// text from, together with the vertical layout applied to each quote
// before it is extruded.
package quotes

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/quoteforest/assets"
	"cogentcore.org/quoteforest/base/errors"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Quote is one record of the corpus.
type Quote struct {

	// Author is the attribution of the quote.
	Author string `yaml:"author" json:"author"`

	// Text is the quotation itself.
	Text string `yaml:"quote" json:"quote"`
}

// Corpus is an ordered list of quotes.
type Corpus []Quote

//go:embed corpus.yaml
var defaultCorpus []byte

// ErrEmptyQuote is returned by [Corpus.Validate] for records without text.
var ErrEmptyQuote = errors.New("quotes: quote has empty text")

// Default returns the embedded default corpus.
func Default() Corpus {
	return errors.Must1(Parse(defaultCorpus))
}

// Parse decodes a corpus from YAML or JSON data, which is a list of
// records with author and quote keys.
func Parse(data []byte) (Corpus, error) {
	var c Corpus
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("quotes.Parse: %w", err)
	}
	c.normalize()
	return c, c.Validate()
}

// normalize puts all text in Unicode normal form C, so that accented
// letters map to single glyphs.
func (c Corpus) normalize() {
	for i := range c {
		c[i].Author = norm.NFC.String(c[i].Author)
		c[i].Text = norm.NFC.String(c[i].Text)
	}
}

// LoadFile reads a corpus from a .yaml, .yml or .json file, which
// may additionally be zstd (.zst) or gzip (.gz) compressed.
func LoadFile(path string) (Corpus, error) {
	switch ext := assets.Ext(path); ext {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("quotes.LoadFile %s: unsupported extension %q", path, ext)
	}
	b, err := assets.ReadOSFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load returns the corpus at the given path: the embedded default if
// path is empty, a SQLite database for .db, .sqlite and .sqlite3 files,
// and [LoadFile] otherwise.
func Load(ctx context.Context, path string) (Corpus, error) {
	if path == "" {
		return Default(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path)
	}
	return LoadFile(path)
}

// Validate returns an error for the first quote with empty text.
func (c Corpus) Validate() error {
	for i, q := range c {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("quote %d by %q: %w", i, q.Author, ErrEmptyQuote)
		}
	}
	return nil
}
