// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package app

import (
	"fmt"
	"time"

	"github.com/danjacques/oscstrip/control"
	"github.com/danjacques/oscstrip/device"
	"github.com/danjacques/oscstrip/oscserver"
	"github.com/danjacques/oscstrip/pattern"
	"github.com/danjacques/oscstrip/pixel"
	"github.com/danjacques/oscstrip/render"

	"github.com/spf13/pflag"
)

// Config is the full process configuration.
type Config struct {
	// Listen is the OSC control server's UDP address.
	Listen string

	// Output selects the strip implementation.
	Output OutputFlag
	// LED configures the ws281x strip. Its Count is also the pixel count of
	// the other outputs.
	LED device.WS281xConfig
	// Layout is the channel order used by the ws281x and udp outputs.
	Layout LayoutFlag

	// OPCAddr is the OPC server address, for the opc output.
	OPCAddr string
	// OPCChannel is the OPC channel, for the opc output.
	OPCChannel int

	// UDPAddr is the frame receiver's address, for the udp output.
	UDPAddr string
	// UDPCompress, if true, snappy-compresses frames sent by the udp output.
	UDPCompress bool
	// UDPBufferSize, if >0, is the udp output's socket write buffer size.
	UDPBufferSize int

	// Interval is the time between frames.
	Interval time.Duration
	// RollInterval is the rainbow's spatial spread, in wheel positions per
	// pixel.
	RollInterval float64
	// Envelope selects the shape of the beat and breath patterns.
	Envelope StyleFlag
	// Clamp enables clamping of luminosity and output channels.
	Clamp bool
	// ShowRetries is the number of times a failed frame is retried.
	ShowRetries int

	// PointColor is the initial point color.
	PointColor ColorFlag
	// Luminosity is the initial luminosity.
	Luminosity float64
	// RollSpeedScale multiplies rainbow roll speed messages.
	RollSpeedScale float64

	// MetricsAddr, if not empty, is the HTTP address to serve Prometheus
	// metrics on.
	MetricsAddr string
	// Verbose enables debug logging.
	Verbose bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	params := control.DefaultParams()
	led := device.DefaultWS281xConfig()
	return Config{
		Listen:       oscserver.DefaultAddr,
		Output:       OutputFlag(OutputNone),
		LED:          led,
		Layout:       LayoutFlag(led.Layout),
		OPCAddr:      "127.0.0.1:7890",
		UDPAddr:      "127.0.0.1:6800",
		Interval:     render.DefaultInterval,
		RollInterval: render.DefaultRollInterval,
		Envelope:     StyleFlag(pattern.StyleLegacy),
		ShowRetries:  0,
		PointColor:   ColorFlag(params.PointColor),
		Luminosity:   params.Luminosity,

		RollSpeedScale: control.DefaultRollSpeedScale,
	}
}

// AddFlags binds cfg's fields to flags in fs.
func (cfg *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&cfg.Listen, "listen", cfg.Listen, "UDP address to receive OSC control messages on.")

	fs.Var(&cfg.Output, "output", fmt.Sprintf("Strip output. One of: %s.", OutputFlagValues()))
	fs.IntVar(&cfg.LED.Count, "led-count", cfg.LED.Count, "Number of pixels on the strip.")
	fs.IntVar(&cfg.LED.Pin, "led-pin", cfg.LED.Pin, "GPIO pin connected to the pixels (18 uses PWM, 10 uses SPI).")
	fs.IntVar(&cfg.LED.Frequency, "led-freq", cfg.LED.Frequency, "LED signal frequency, in hertz.")
	fs.IntVar(&cfg.LED.DMA, "led-dma", cfg.LED.DMA, "DMA channel used to generate the signal.")
	fs.IntVar(&cfg.LED.Brightness, "led-brightness", cfg.LED.Brightness, "Driver brightness, 0 (darkest) to 255 (brightest).")
	fs.BoolVar(&cfg.LED.Invert, "led-invert", cfg.LED.Invert, "Invert the signal (when using an NPN transistor level shifter).")
	fs.IntVar(&cfg.LED.Channel, "led-channel", cfg.LED.Channel, "PWM channel; 1 for GPIOs 13, 19, 41, 45 or 53.")
	fs.Var(&cfg.Layout, "layout", "Channel order of the strip (rgb, grb, brg).")

	fs.StringVar(&cfg.OPCAddr, "opc-addr", cfg.OPCAddr, "OPC server address, for the opc output.")
	fs.IntVar(&cfg.OPCChannel, "opc-channel", cfg.OPCChannel, "OPC channel, for the opc output.")

	fs.StringVar(&cfg.UDPAddr, "udp-addr", cfg.UDPAddr, "Frame receiver address, for the udp output.")
	fs.BoolVar(&cfg.UDPCompress, "udp-compress", cfg.UDPCompress, "Snappy-compress udp frames.")
	fs.IntVar(&cfg.UDPBufferSize, "udp-buffer-size", cfg.UDPBufferSize, "If >0, the udp output's write buffer size.")

	fs.DurationVar(&cfg.Interval, "frame-interval", cfg.Interval, "Time between frames.")
	fs.Float64Var(&cfg.RollInterval, "roll-interval", cfg.RollInterval, "Rainbow spread, in wheel positions per pixel.")
	fs.Var(&cfg.Envelope, "envelope", "Beat and breath envelope style (legacy, bounded).")
	fs.BoolVar(&cfg.Clamp, "clamp", cfg.Clamp, "Clamp luminosity to [0, 1] and channels to [0, 255].")
	fs.IntVar(&cfg.ShowRetries, "show-retries", cfg.ShowRetries, "Times a failed frame is retried before giving up.")

	fs.Var(&cfg.PointColor, "point-color", "Initial point color, as #RRGGBB.")
	fs.Float64Var(&cfg.Luminosity, "luminosity", cfg.Luminosity, "Initial luminosity.")
	fs.Float64Var(&cfg.RollSpeedScale, "roll-speed-scale", cfg.RollSpeedScale, "Factor applied to rainbow roll speed messages.")

	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "If set, serve Prometheus metrics on this HTTP address.")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Enable debug logging.")
}

// InitialParams returns the animation parameters to start with.
func (cfg *Config) InitialParams() control.Params {
	p := control.DefaultParams()
	p.PointColor = pixel.RGB(cfg.PointColor)
	p.Luminosity = cfg.Luminosity
	return p
}
