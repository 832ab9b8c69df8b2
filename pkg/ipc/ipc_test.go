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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestServer(t *testing.T) *Server {
	t.Helper()
	server, err := Listen(context.Background(), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.Close() })
	return server
}

func waitForCommand(t *testing.T, server *Server) Command {
	t.Helper()
	select {
	case cmd := <-server.Commands():
		return cmd
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ipc command")
		return ""
	}
}

func TestSendCommands(t *testing.T) {
	tests := []struct {
		name    string
		command Command
	}{
		{name: "reload", command: CommandReload},
		{name: "toggle_transform", command: CommandToggleTransform},
		{name: "ping", command: CommandPing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := startTestServer(t)
			client := NewClient(server.Port())

			require.NoError(t, client.Send(context.Background(), tt.command))
			assert.Equal(t, tt.command, waitForCommand(t, server))
		})
	}
}

func TestIsServiceRunning(t *testing.T) {
	server := startTestServer(t)
	client := NewClient(server.Port())

	assert.True(t, client.IsServiceRunning(context.Background()))

	// The PING used for the probe still lands on the command channel.
	assert.Equal(t, CommandPing, waitForCommand(t, server))
}

func TestIsServiceRunningWithoutServer(t *testing.T) {
	// Bind and immediately release a port so nothing listens on it.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	client := NewClient(port)
	assert.False(t, client.IsServiceRunning(context.Background()))

	err = client.Send(context.Background(), CommandReload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connecting to daemon")
}

func TestUnknownCommandIgnored(t *testing.T) {
	server := startTestServer(t)

	conn, err := net.DialTimeout("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(server.Port())), time.Second)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("SELFDESTRUCT"))
	require.NoError(t, err)

	// A valid command sent afterwards must still arrive first on the
	// channel, proving the garbage was dropped.
	client := NewClient(server.Port())
	require.NoError(t, client.Send(context.Background(), CommandReload))
	assert.Equal(t, CommandReload, waitForCommand(t, server))
}

func TestCloseShutsDownCommandChannel(t *testing.T) {
	server := startTestServer(t)

	require.NoError(t, server.Close())
	require.NoError(t, server.Close(), "Close must be idempotent")

	select {
	case _, open := <-server.Commands():
		assert.False(t, open, "command channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("command channel not closed after server Close")
	}
}
