// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// coloring the level using the terminal color profile of its output.
type Handler struct {
	mu      *sync.Mutex
	w       io.Writer
	level   slog.Leveler
	profile termenv.Profile
	attrs   []slog.Attr
	group   string
}

// NewHandler returns a new [Handler] writing to w at the given level.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	out := termenv.NewOutput(w)
	return &Handler{mu: &sync.Mutex{}, w: w, level: level, profile: out.EnvColorProfile()}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// levelColor returns the ANSI color code for the given level.
func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "1" // red
	case l >= slog.LevelWarn:
		return "3" // yellow
	case l >= slog.LevelInfo:
		return "6" // cyan
	default:
		return "8" // bright black
	}
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	lvl := h.profile.String(r.Level.String()).Foreground(h.profile.Color(levelColor(r.Level)))
	sb.WriteString(lvl.String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	write := func(a slog.Attr) {
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		fmt.Fprintf(&sb, " %s=%v", h.profile.String(key).Faint(), a.Value.Any())
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		write(a)
		return true
	})
	sb.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group != "" {
		name = nh.group + "." + name
	}
	nh.group = name
	return &nh
}
