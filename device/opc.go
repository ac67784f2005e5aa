// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package device

import (
	"net"
	"time"

	"github.com/danjacques/oscstrip/pixel"
	"github.com/danjacques/oscstrip/support/logging"

	"github.com/kellydunn/go-opc"
	"github.com/pkg/errors"
)

// opcDialTimeout bounds the time spent connecting to an OPC server.
const opcDialTimeout = 5 * time.Second

// OPC is a Strip on an Open Pixel Control server, such as a Fadecandy.
//
// Each Show sends a single "set pixel colors" message for the configured
// channel. The OPC owns its TCP connection; Close releases it.
type OPC struct {
	conn    net.Conn
	channel uint8
	logger  logging.L

	staged []pixel.P
}

var _ Strip = (*OPC)(nil)

// DialOPC connects to the OPC server at addr ("host:port") and returns a
// Strip of count pixels on the given channel.
func DialOPC(addr string, channel uint8, count int, logger logging.L) (*OPC, error) {
	conn, err := net.DialTimeout("tcp", addr, opcDialTimeout)
	if err != nil {
		return nil, errors.Wrapf(err, "could not connect to OPC server %q", addr)
	}

	logger = logging.Must(logger)
	logger.Infof("Connected to OPC server %s (channel %d, %d pixel(s)).", addr, channel, count)
	return &OPC{
		conn:    conn,
		channel: channel,
		logger:  logger,
		staged:  make([]pixel.P, count),
	}, nil
}

// NumPixels implements Strip.
func (s *OPC) NumPixels() int { return len(s.staged) }

// SetPixelColor implements Strip.
func (s *OPC) SetPixelColor(i int, c pixel.RGB) {
	if i < 0 || i >= len(s.staged) {
		return
	}
	s.staged[i] = c.P()
}

// Show implements Strip.
func (s *OPC) Show() error {
	m := opc.NewMessage(s.channel)
	m.SetLength(uint16(len(s.staged) * 3))
	for i, p := range s.staged {
		m.SetPixelColor(i, p.Red, p.Green, p.Blue)
	}

	if _, err := s.conn.Write(m.ByteArray()); err != nil {
		return errors.Wrap(err, "could not send OPC message")
	}
	return nil
}

// Close closes the connection to the OPC server.
func (s *OPC) Close() error {
	s.logger.Debugf("Closing OPC connection to %s.", s.conn.RemoteAddr())
	return s.conn.Close()
}
