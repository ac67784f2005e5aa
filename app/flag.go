// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package app

import (
	"strings"

	"github.com/danjacques/oscstrip/pattern"
	"github.com/danjacques/oscstrip/pixel"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Output is the kind of strip that frames are sent to.
type Output string

const (
	// OutputNone renders into memory only.
	OutputNone Output = "none"
	// OutputWS281x drives a strip attached to a Raspberry Pi.
	OutputWS281x Output = "ws281x"
	// OutputOPC sends frames to an Open Pixel Control server.
	OutputOPC Output = "opc"
	// OutputUDP sends raw frames over UDP.
	OutputUDP Output = "udp"
)

var outputs = []Output{OutputNone, OutputWS281x, OutputOPC, OutputUDP}

// OutputFlag is a pflag.Value implementation that stores an Output.
type OutputFlag Output

var _ pflag.Value = (*OutputFlag)(nil)

func (of *OutputFlag) String() string { return string(*of) }

// Set implements pflag.Value.
func (of *OutputFlag) Set(v string) error {
	for _, o := range outputs {
		if string(o) == v {
			*of = OutputFlag(o)
			return nil
		}
	}
	return errors.Errorf("unknown output: %q", v)
}

// Type implements pflag.Value.
func (of *OutputFlag) Type() string { return "app.Output" }

// OutputFlagValues returns the list of possible values for an OutputFlag.
func OutputFlagValues() string {
	opts := make([]string, len(outputs))
	for i, o := range outputs {
		opts[i] = string(o)
	}
	return strings.Join(opts, ", ")
}

// LayoutFlag is a pflag.Value implementation that stores a pixel channel
// order.
type LayoutFlag pixel.BufferLayout

var _ pflag.Value = (*LayoutFlag)(nil)

func (lf *LayoutFlag) String() string { return pixel.BufferLayout(*lf).String() }

// Set implements pflag.Value.
func (lf *LayoutFlag) Set(v string) error {
	l, err := pixel.ParseBufferLayout(v)
	if err != nil {
		return err
	}
	*lf = LayoutFlag(l)
	return nil
}

// Type implements pflag.Value.
func (lf *LayoutFlag) Type() string { return "pixel.BufferLayout" }

// StyleFlag is a pflag.Value implementation that stores an envelope style.
type StyleFlag pattern.Style

var _ pflag.Value = (*StyleFlag)(nil)

func (sf *StyleFlag) String() string { return pattern.Style(*sf).String() }

// Set implements pflag.Value.
func (sf *StyleFlag) Set(v string) error {
	s, err := pattern.ParseStyle(v)
	if err != nil {
		return err
	}
	*sf = StyleFlag(s)
	return nil
}

// Type implements pflag.Value.
func (sf *StyleFlag) Type() string { return "pattern.Style" }

// ColorFlag is a pflag.Value implementation that stores a hex color.
type ColorFlag pixel.RGB

var _ pflag.Value = (*ColorFlag)(nil)

func (cf *ColorFlag) String() string { return pixel.RGB(*cf).Hex() }

// Set implements pflag.Value.
func (cf *ColorFlag) Set(v string) error {
	c, err := pixel.ParseHex(v)
	if err != nil {
		return err
	}
	*cf = ColorFlag(c)
	return nil
}

// Type implements pflag.Value.
func (cf *ColorFlag) Type() string { return "color" }
