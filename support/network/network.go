// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package network contains generic network constants and utilities.
package network

import (
	"net"

	"github.com/pkg/errors"
)

const (
	// MaxUDPSize is the largest UDP package size.
	MaxUDPSize = 65507
)

// DialUDP resolves addr ("host:port") and dials a UDP connection to it.
//
// If bufferSize is >0, it is set as the connection's write buffer size.
//
// If successful, the caller is responsible for closing the connection.
func DialUDP(addr string, bufferSize int) (*net.UDPConn, error) {
	raddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "could not resolve UDP address %q", addr)
	}

	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, errors.Wrapf(err, "could not dial %s", raddr)
	}

	if bufferSize > 0 {
		if err := conn.SetWriteBuffer(bufferSize); err != nil {
			_ = conn.Close()
			return nil, errors.Wrapf(err, "failed to set write buffer size to %d", bufferSize)
		}
	}

	return conn, nil
}

// UDPSenderFactory returns a factory, suitable for ResilientDatagramSender,
// that dials addr.
func UDPSenderFactory(addr string, bufferSize int) func() (DatagramSender, error) {
	return func() (DatagramSender, error) {
		conn, err := DialUDP(addr, bufferSize)
		if err != nil {
			return nil, err
		}
		return UDPDatagramSender(conn), nil
	}
}
