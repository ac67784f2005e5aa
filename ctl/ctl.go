// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package ctl defines the logic for the "stripctl" app.
//
// stripctl sends a single OSC control message to a running oscstrip:
//
//	stripctl --addr 127.0.0.1:6700 /bpm 120
package ctl

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/danjacques/oscstrip/control"
	"github.com/danjacques/oscstrip/oscserver"
	"github.com/danjacques/oscstrip/support/logging"

	"github.com/hypebeast/go-osc/osc"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Main is the main entry point.
func Main() {
	fs := pflag.NewFlagSet("stripctl", pflag.ExitOnError)
	addr := fs.String("addr", oscserver.DefaultAddr, "Address of the oscstrip control server.")
	verbose := fs.BoolP("verbose", "v", false, "Enable debug logging.")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stripctl [flags] ADDRESS [ARG...]\n\nAddresses: %s\n\n",
			strings.Join(control.Addresses(), ", "))
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	logger, flush, err := logging.New(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	defer flush()

	if fs.NArg() == 0 {
		fs.Usage()
		flush()
		os.Exit(2)
	}

	msg := NewMessage(fs.Arg(0), fs.Args()[1:])
	if err := Send(*addr, msg); err != nil {
		logger.Errorf("Could not send %s: %s", msg, err)
		flush()
		os.Exit(1)
	}
	logger.Debugf("Sent %s to %s.", msg, *addr)
}

// NewMessage builds an OSC message for address from command-line arguments.
//
// Each argument is sent as an int32 if it parses as one, as a float32 if it
// parses as a float, and as a string otherwise.
func NewMessage(address string, args []string) *osc.Message {
	msg := osc.NewMessage(address)
	for _, a := range args {
		msg.Append(ParseArg(a))
	}
	return msg
}

// ParseArg converts a single command-line argument into an OSC argument.
func ParseArg(v string) interface{} {
	if i, err := strconv.ParseInt(v, 10, 32); err == nil {
		return int32(i)
	}
	if f, err := strconv.ParseFloat(v, 32); err == nil {
		return float32(f)
	}
	return v
}

// Send sends msg to the OSC server at addr ("host:port").
func Send(addr string, msg *osc.Message) error {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return errors.Wrapf(err, "invalid address %q", addr)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return errors.Wrapf(err, "invalid port in %q", addr)
	}

	if err := osc.NewClient(host, port).Send(msg); err != nil {
		return errors.Wrapf(err, "could not send to %q", addr)
	}
	return nil
}
