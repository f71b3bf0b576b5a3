// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package websocket is a minimal callback-based WebSocket client.
package websocket

import (
	"context"
	"encoding/json"

	"cogentcore.org/quoteforest/base/errors"
	"github.com/gorilla/websocket"
)

// MessageTypes are the types of WebSocket messages.
type MessageTypes int

const (
	// TextMessage is a UTF-8 encoded text message, such as JSON.
	TextMessage MessageTypes = websocket.TextMessage

	// BinaryMessage is a binary data message.
	BinaryMessage MessageTypes = websocket.BinaryMessage
)

// Client represents a WebSocket client connection.
// You can use [Connect] to create a new Client.
type Client struct {

	// conn is the underlying WebSocket connection.
	conn *websocket.Conn

	// done is a channel that is closed when the connection is closed.
	done chan struct{}
}

// Connect connects to a WebSocket server at the given ws:// or wss://
// url and returns a [Client].
func Connect(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, done: make(chan struct{})}, nil
}

// OnMessage sets a callback function to be called when a message is received.
// This function can only be called once.
func (c *Client) OnMessage(f func(typ MessageTypes, msg []byte)) {
	go func() {
		defer close(c.done)
		for {
			typ, msg, err := c.conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					errors.Log(err)
				}
				c.conn.Close()
				return
			}
			f(MessageTypes(typ), msg)
		}
	}()
}

// OnJSON calls f with every text message decoded into a new value of
// type T. Messages that do not decode are logged and skipped.
func OnJSON[T any](c *Client, f func(v T)) {
	c.OnMessage(func(typ MessageTypes, msg []byte) {
		if typ != TextMessage {
			return
		}
		var v T
		if errors.Log(json.Unmarshal(msg, &v)) != nil {
			return
		}
		f(v)
	})
}

// Send sends a message to the WebSocket server with the given type and message.
func (c *Client) Send(typ MessageTypes, msg []byte) error {
	return c.conn.WriteMessage(int(typ), msg)
}

// Close cleanly closes the WebSocket connection.
// It does not directly trigger [Client.OnClose], but once the connection
// is closed, [Client.OnMessage] will trigger it.
func (c *Client) Close() error {
	return c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Done is closed once the connection is closed, after [Client.OnMessage]
// has been set.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// OnClose sets a callback function to be called when the connection is closed.
// This function can only be called once.
func (c *Client) OnClose(f func()) {
	go func() {
		<-c.done
		f()
	}()
}
