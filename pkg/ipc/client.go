// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ipc

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Client sends commands to a running daemon.
type Client struct {
	port int
}

// NewClient creates a client for the given daemon port.
func NewClient(port int) *Client {
	return &Client{port: port}
}

func (c *Client) dial() (net.Conn, error) {
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(c.port))
	conn, err := net.DialTimeout("tcp", addr, ioTimeout)
	if err != nil {
		return nil, errors.Errorf("connecting to daemon at %s: %w", addr, err)
	}
	_ = conn.SetDeadline(time.Now().Add(ioTimeout))
	return conn, nil
}

// Send delivers one command. A connection failure usually just means no
// daemon is running.
func (c *Client) Send(ctx context.Context, command Command) error {
	conn, err := c.dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(command)); err != nil {
		return errors.Errorf("sending %s: %w", command, err)
	}

	zerolog.Ctx(ctx).Debug().Str("command", string(command)).Msg("ipc command sent")
	return nil
}

// IsServiceRunning probes the daemon with a PING and reports whether a
// PONG came back.
func (c *Client) IsServiceRunning(ctx context.Context) bool {
	conn, err := c.dial()
	if err != nil {
		return false
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(CommandPing)); err != nil {
		return false
	}

	buf := make([]byte, 4)
	n, err := conn.Read(buf)
	if err != nil {
		return false
	}
	return string(buf[:n]) == "PONG"
}
