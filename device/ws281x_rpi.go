// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

//go:build ws281x

package device

import (
	"github.com/danjacques/oscstrip/pixel"

	"github.com/pkg/errors"
	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"
)

// WS281x is a Strip attached directly to a Raspberry Pi.
type WS281x struct {
	cfg  WS281xConfig
	dev  *ws2811.WS2811
	leds []uint32
}

var _ Strip = (*WS281x)(nil)

// OpenWS281x initializes the strip described by cfg.
//
// The caller must Close the strip when finished.
func OpenWS281x(cfg WS281xConfig) (*WS281x, error) {
	opt := ws2811.DefaultOptions
	opt.Frequency = cfg.Frequency
	opt.DmaNum = cfg.DMA
	opt.Channels = append([]ws2811.ChannelOption(nil), opt.Channels...)

	// The driver's channel order is fixed by the strip type; we reorder
	// channels ourselves according to cfg.Layout.
	ch := &opt.Channels[0]
	if cfg.Channel == 1 {
		opt.Channels[1] = opt.Channels[0]
		opt.Channels[0] = ws2811.ChannelOption{}
		ch = &opt.Channels[1]
	}
	ch.GpioPin = cfg.Pin
	ch.LedCount = cfg.Count
	ch.Brightness = cfg.Brightness
	ch.Invert = cfg.Invert
	ch.StripeType = ws2811.WS2811StripRGB

	dev, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		return nil, errors.Wrap(err, "could not create ws281x device")
	}
	if err := dev.Init(); err != nil {
		return nil, errors.Wrapf(err, "could not initialize ws281x strip on pin %d", cfg.Pin)
	}

	return &WS281x{
		cfg:  cfg,
		dev:  dev,
		leds: dev.Leds(cfg.Channel),
	}, nil
}

// NumPixels implements Strip.
func (s *WS281x) NumPixels() int { return len(s.leds) }

// SetPixelColor implements Strip.
func (s *WS281x) SetPixelColor(i int, c pixel.RGB) {
	if i < 0 || i >= len(s.leds) {
		return
	}
	s.leds[i] = packWS281x(s.cfg.Layout, c.P())
}

// Show implements Strip.
func (s *WS281x) Show() error {
	if err := s.dev.Render(); err != nil {
		return errors.Wrap(err, "could not render ws281x strip")
	}
	return nil
}

// Close blanks the strip and releases the driver.
func (s *WS281x) Close() error {
	for i := range s.leds {
		s.leds[i] = 0
	}
	err := s.dev.Render()
	s.dev.Fini()
	return err
}
