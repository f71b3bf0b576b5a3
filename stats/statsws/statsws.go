// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package statsws serves frame statistics to websocket clients.
package statsws

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/quoteforest/stats"
	"github.com/gorilla/websocket"
)

// Source provides the statistics to broadcast.
type Source interface {
	Snapshot() stats.Snapshot
}

// writeWait is the time allowed to write a message to a client.
const writeWait = 2 * time.Second

// Server is an [http.Handler] that upgrades requests to websockets
// and, while [Server.Run] is running, sends every client a JSON
// [stats.Snapshot] once per Interval.
type Server struct {
	Source Source

	// Interval between broadcasts; one second by default.
	Interval time.Duration

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

// client serializes writes to one connection.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

// New returns a new server for the given source.
func New(src Source) *Server {
	return &Server{
		Source:   src,
		Interval: time.Second,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: map[*client]struct{}{},
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Debug("statsws: upgrade failed", "err", err)
		return
	}
	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	slog.Debug("statsws: client connected", "remote", r.RemoteAddr)

	// the first snapshot goes out right away
	if err := c.writeJSON(s.Source.Snapshot()); err != nil {
		s.drop(c)
		return
	}
	// reads only detect the client going away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.drop(c)
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
	c.conn.Close()
}

// NumClients returns the number of connected clients.
func (s *Server) NumClients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Broadcast sends the snapshot to every client, dropping
// those that fail.
func (s *Server) Broadcast(snap stats.Snapshot) {
	s.mu.Lock()
	cs := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		cs = append(cs, c)
	}
	s.mu.Unlock()
	for _, c := range cs {
		if err := c.writeJSON(snap); err != nil {
			slog.Debug("statsws: dropping client", "err", err)
			s.drop(c)
		}
	}
}

// Run broadcasts snapshots until the context is done,
// then disconnects every client.
func (s *Server) Run(ctx context.Context) {
	iv := s.Interval
	if iv <= 0 {
		iv = time.Second
	}
	tick := time.NewTicker(iv)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			for c := range s.clients {
				c.conn.Close()
				delete(s.clients, c)
			}
			s.mu.Unlock()
			return
		case <-tick.C:
			s.Broadcast(s.Source.Snapshot())
		}
	}
}

// ListenAndServe serves the statistics of src at /stats on addr
// until the context is done.
func ListenAndServe(ctx context.Context, addr string, src Source) error {
	s := New(src)
	mux := http.NewServeMux()
	mux.Handle("/stats", s)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go s.Run(ctx)
	go func() {
		<-ctx.Done()
		shut, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		srv.Shutdown(shut)
	}()
	slog.Info("serving stats", "addr", "ws://"+addr+"/stats")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
