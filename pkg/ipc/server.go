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

// Package ipc implements the localhost TCP command channel between the
// CLI and the running daemon. The protocol is three plain-text commands;
// only PING gets a reply.
package ipc

import (
	"context"
	"net"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Command is one wire command.
type Command string

const (
	// CommandReload asks the daemon to reload recipes from the store.
	CommandReload Command = "RELOAD"

	// CommandToggleTransform flips the daemon's transform-enabled gate.
	CommandToggleTransform Command = "TRANSFORM"

	// CommandPing probes liveness; the server answers PONG.
	CommandPing Command = "PING"
)

// DefaultPort is where the daemon listens unless configured otherwise.
const DefaultPort = 9549

// ioTimeout bounds every read and write on the channel. Both ends live
// on the same host; anything slower than this is a hung peer.
const ioTimeout = 100 * time.Millisecond

// commandBuffer bounds the server's command queue; commands arriving
// faster than the daemon drains them are dropped.
const commandBuffer = 32

// Server accepts commands on 127.0.0.1:<port> and hands them to the
// daemon over a channel.
type Server struct {
	listener net.Listener
	commands chan Command
	closed   atomic.Bool
}

// Listen binds the server and starts its accept loop. Port 0 picks an
// ephemeral port (tests).
func Listen(ctx context.Context, port int) (*Server, error) {
	listener, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		return nil, errors.Errorf("binding ipc listener on port %d: %w", port, err)
	}

	s := &Server{
		listener: listener,
		commands: make(chan Command, commandBuffer),
	}

	zerolog.Ctx(ctx).Info().Str("addr", listener.Addr().String()).Msg("ipc server listening")
	go s.serve(ctx)

	return s, nil
}

// Commands is the stream of received commands. It is closed when the
// server shuts down.
func (s *Server) Commands() <-chan Command {
	return s.commands
}

// Port returns the bound port, useful after Listen(ctx, 0).
func (s *Server) Port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Close stops the accept loop and closes the command channel. Safe to
// call more than once.
func (s *Server) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.listener.Close()
}

func (s *Server) serve(ctx context.Context) {
	logger := zerolog.Ctx(ctx)
	defer func() {
		close(s.commands)
		logger.Info().Msg("ipc server stopped")
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() {
				return
			}
			logger.Debug().Err(err).Msg("ipc accept failed")
			continue
		}
		s.handle(ctx, conn)
	}
}

// handle processes a single connection carrying a single command.
func (s *Server) handle(ctx context.Context, conn net.Conn) {
	logger := zerolog.Ctx(ctx)
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(ioTimeout))

	buf := make([]byte, 32)
	n, err := conn.Read(buf)
	if err != nil || n == 0 {
		logger.Debug().Err(err).Msg("ipc read failed")
		return
	}

	var command Command
	switch strings.TrimSpace(string(buf[:n])) {
	case string(CommandReload):
		command = CommandReload
	case string(CommandToggleTransform):
		command = CommandToggleTransform
	case string(CommandPing):
		command = CommandPing
		if _, err := conn.Write([]byte("PONG")); err != nil {
			logger.Debug().Err(err).Msg("ipc pong write failed")
		}
	default:
		logger.Debug().Str("raw", strings.TrimSpace(string(buf[:n]))).Msg("unknown ipc command")
		return
	}

	logger.Debug().Str("command", string(command)).Msg("ipc command received")

	select {
	case s.commands <- command:
	default:
		logger.Debug().Str("command", string(command)).Msg("ipc command dropped, queue full")
	}
}
