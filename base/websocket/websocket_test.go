// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echo returns a server that sends every message back.
func echo(t *testing.T) string {
	upgrader := websocket.Upgrader{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			typ, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(typ, msg); err != nil {
				return
			}
		}
	}))
	t.Cleanup(ts.Close)
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func TestEcho(t *testing.T) {
	c, err := Connect(context.Background(), echo(t))
	require.NoError(t, err)

	got := make(chan string, 2)
	c.OnMessage(func(typ MessageTypes, msg []byte) {
		got <- string(msg)
	})
	closed := make(chan struct{})
	c.OnClose(func() { close(closed) })

	require.NoError(t, c.Send(TextMessage, []byte("hello")))
	select {
	case msg := <-got:
		assert.Equal(t, "hello", msg)
	case <-time.After(5 * time.Second):
		t.Fatal("no echo")
	}

	require.NoError(t, c.Close())
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("not closed")
	}
}

func TestOnJSON(t *testing.T) {
	c, err := Connect(context.Background(), echo(t))
	require.NoError(t, err)
	type point struct{ X, Y int }
	got := make(chan point, 1)
	OnJSON(c, func(p point) { got <- p })

	require.NoError(t, c.Send(TextMessage, []byte("not json")))
	require.NoError(t, c.Send(BinaryMessage, []byte(`{"X":9}`)))
	require.NoError(t, c.Send(TextMessage, []byte(`{"X":1,"Y":2}`)))
	select {
	case p := <-got:
		assert.Equal(t, point{1, 2}, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no message")
	}
	c.Close()
}

func TestConnectCanceled(t *testing.T) {
	url := echo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Connect(ctx, url)
	assert.Error(t, err)
}
