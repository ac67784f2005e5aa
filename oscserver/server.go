// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package oscserver receives control messages over OSC (Open Sound Control)
// and applies them through a control.Dispatcher.
package oscserver

import (
	"context"
	"net"

	"github.com/danjacques/oscstrip/control"
	"github.com/danjacques/oscstrip/support/logging"
	"github.com/danjacques/oscstrip/support/network"

	"github.com/hypebeast/go-osc/osc"
	"github.com/pkg/errors"
)

// DefaultAddr is the default address that the control server listens on.
const DefaultAddr = "127.0.0.1:6700"

// Server is an OSC UDP server that routes every control address to a
// control.Dispatcher.
//
// Messages are handled concurrently and never block on the render loop.
// Errors applying a message are logged and the message is discarded; they do
// not stop the server.
type Server struct {
	// Dispatcher applies received messages. It must not be nil.
	Dispatcher *control.Dispatcher

	// Logger is the logger instance to use. If nil, no logs will be generated.
	Logger logging.L
}

// ListenAndServe listens on addr and serves until c is cancelled.
func (s *Server) ListenAndServe(c context.Context, addr string) error {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return errors.Wrapf(err, "could not listen on %q", addr)
	}
	return s.Serve(c, conn)
}

// Serve serves OSC messages received on conn until c is cancelled.
//
// Serve takes ownership of conn, and closes it when finished. It returns nil
// if it stopped because c was cancelled.
func (s *Server) Serve(c context.Context, conn net.PacketConn) error {
	d, err := s.oscDispatcher()
	if err != nil {
		_ = conn.Close()
		return err
	}

	stopC := make(chan struct{})
	defer close(stopC)
	go func() {
		select {
		case <-c.Done():
			_ = conn.Close()
		case <-stopC:
		}
	}()

	s.logger().Infof("Listening for control messages on %s.", conn.LocalAddr())
	err = s.serveLoop(conn, d)

	if c.Err() != nil {
		return nil
	}
	_ = conn.Close()
	return errors.Wrap(err, "control server failed")
}

// serveLoop reads and dispatches packets until conn fails.
//
// Packets that do not parse as OSC are logged and dropped. Only connection
// errors end the loop.
func (s *Server) serveLoop(conn net.PacketConn, d osc.Dispatcher) error {
	buf := make([]byte, network.MaxUDPSize)
	for {
		amt, addr, err := conn.ReadFrom(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return err
		}

		pkt, err := osc.ParsePacket(string(buf[:amt]))
		if err != nil {
			oscPackets.WithLabelValues(resultInvalid).Inc()
			s.logger().Warnf("Discarding malformed OSC packet (%d byte(s)) from %s: %s", amt, addr, err)
			continue
		}
		oscPackets.WithLabelValues(resultOK).Inc()

		go d.Dispatch(pkt)
	}
}

func (s *Server) oscDispatcher() (*osc.StandardDispatcher, error) {
	d := osc.NewStandardDispatcher()
	for _, addr := range control.Addresses() {
		if err := d.AddMsgHandler(addr, s.handleMessage); err != nil {
			return nil, errors.Wrapf(err, "could not register handler for %s", addr)
		}
	}
	return d, nil
}

func (s *Server) handleMessage(msg *osc.Message) {
	if err := s.Dispatcher.Dispatch(msg.Address, control.Args(msg.Arguments)); err != nil {
		s.logger().Warnf("Discarding control message %s: %s", msg.Address, err)
	}
}

func (s *Server) logger() logging.L { return logging.Must(s.Logger) }
