// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package control

import (
	"sort"

	"github.com/danjacques/oscstrip/support/logging"

	"github.com/pkg/errors"
)

// Control message addresses.
const (
	AddrColorMode        = "/color_mode"
	AddrRGB              = "/rgb"
	AddrRainbowRollSpeed = "/rainbow_role_speed"
	AddrPattern          = "/pattern"
	AddrBPM              = "/bpm"
	AddrLuminosity       = "/luminosity"
)

// ErrUnknownAddress is a sentinel error returned by Dispatch when no handler
// is registered for the message's address.
var ErrUnknownAddress = errors.New("unknown control address")

// Dispatcher routes control messages, identified by address, to Handlers.
//
// Dispatcher is safe for concurrent use if its Handlers are.
type Dispatcher struct {
	// Handlers receives dispatched messages. It must not be nil.
	Handlers *Handlers

	// Logger is the logger instance to use. If nil, no logs will be generated.
	Logger logging.L
}

type dispatchFunc func(h *Handlers, args Args) error

var dispatchTable = map[string]dispatchFunc{
	AddrColorMode: func(h *Handlers, args Args) error {
		if err := args.expect(1); err != nil {
			return err
		}
		tok, err := args.Token(0)
		if err != nil {
			return err
		}
		h.ColorMode(tok)
		return nil
	},

	AddrRGB: func(h *Handlers, args Args) error {
		if err := args.expect(3); err != nil {
			return err
		}
		var ch [3]float64
		for i := range ch {
			var err error
			if ch[i], err = args.Float(i); err != nil {
				return err
			}
		}
		h.RGB(ch[0], ch[1], ch[2])
		return nil
	},

	AddrRainbowRollSpeed: func(h *Handlers, args Args) error {
		v, err := singleFloat(args)
		if err != nil {
			return err
		}
		h.RainbowRollSpeed(v)
		return nil
	},

	AddrPattern: func(h *Handlers, args Args) error {
		if err := args.expect(1); err != nil {
			return err
		}
		tok, err := args.Token(0)
		if err != nil {
			return err
		}
		h.Pattern(tok)
		return nil
	},

	AddrBPM: func(h *Handlers, args Args) error {
		v, err := singleFloat(args)
		if err != nil {
			return err
		}
		return h.BPM(v)
	},

	AddrLuminosity: func(h *Handlers, args Args) error {
		v, err := singleFloat(args)
		if err != nil {
			return err
		}
		h.Luminosity(v)
		return nil
	},
}

// Addresses returns the sorted list of addresses that Dispatch accepts.
func Addresses() []string {
	addrs := make([]string, 0, len(dispatchTable))
	for addr := range dispatchTable {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	return addrs
}

// Dispatch applies the message at addr with the supplied arguments.
//
// A handler that panics is recovered, and its panic returned as an error.
func (d *Dispatcher) Dispatch(addr string, args Args) (err error) {
	fn, ok := dispatchTable[addr]
	if !ok {
		controlMessages.WithLabelValues("unknown", resultError).Inc()
		return errors.Wrapf(ErrUnknownAddress, "%q", addr)
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic handling %s: %v", addr, r)
		}

		result := resultOK
		if err != nil {
			result = resultError
		}
		controlMessages.WithLabelValues(addr, result).Inc()
	}()

	d.logger().Debugf("Applying %s %v", addr, []interface{}(args))
	if err = fn(d.Handlers, args); err != nil {
		return errors.Wrapf(err, "could not apply %s", addr)
	}
	return nil
}

func (d *Dispatcher) logger() logging.L { return logging.Must(d.Logger) }

func singleFloat(args Args) (float64, error) {
	if err := args.expect(1); err != nil {
		return 0, err
	}
	return args.Float(0)
}
