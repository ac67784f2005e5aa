// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package app defines the logic for the "oscstrip" app.
//
// This app listens for OSC control messages and renders an animation onto an
// LED strip, reflecting the most recently received parameters on every frame.
package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/danjacques/oscstrip/control"
	"github.com/danjacques/oscstrip/device"
	"github.com/danjacques/oscstrip/oscserver"
	"github.com/danjacques/oscstrip/pattern"
	"github.com/danjacques/oscstrip/pixel"
	"github.com/danjacques/oscstrip/render"
	"github.com/danjacques/oscstrip/support/logging"
	"github.com/danjacques/oscstrip/support/network"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
)

// Main is the main entry point.
func Main() {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("oscstrip", pflag.ExitOnError)
	cfg.AddFlags(fs)
	_ = fs.Parse(os.Args[1:])

	logger, flush, err := logging.New(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	c, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = Run(c, &cfg, logger)
	cancel()

	if err != nil {
		logger.Errorf("Exiting with error: %s", err)
		flush()
		os.Exit(1)
	}
	flush()
}

// Run runs the app with cfg until c is cancelled or the render loop fails.
//
// Run returns nil if it stopped because c was cancelled.
func Run(c context.Context, cfg *Config, logger logging.L) error {
	logger = logging.Must(logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	control.RegisterMonitoring(reg)
	render.RegisterMonitoring(reg)
	device.RegisterMonitoring(reg)
	oscserver.RegisterMonitoring(reg)

	strip, closer, err := OpenStrip(cfg, logger)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Warnf("Could not close %s strip: %s", cfg.Output, err)
			}
		}()
	}
	strip = device.Monitor(string(cfg.Output), strip)

	// Bind the control socket before anything starts, so a bad address fails
	// fast.
	conn, err := net.ListenPacket("udp", cfg.Listen)
	if err != nil {
		return errors.Wrapf(err, "could not listen on %q", cfg.Listen)
	}

	state := control.NewState(cfg.InitialParams())
	server := oscserver.Server{
		Dispatcher: &control.Dispatcher{
			Handlers: &control.Handlers{
				State:          state,
				RollSpeedScale: cfg.RollSpeedScale,
				Logger:         logger,
			},
			Logger: logger,
		},
		Logger: logger,
	}

	gen := render.NewGenerator(strip.NumPixels())
	gen.RollInterval = cfg.RollInterval
	gen.Style = pattern.Style(cfg.Envelope)
	gen.Clamp = cfg.Clamp
	gen.Logger = logger
	loop := render.Loop{
		Strip:       strip,
		State:       state,
		Generator:   gen,
		Interval:    cfg.Interval,
		ShowRetries: cfg.ShowRetries,
		Logger:      logger,
	}

	c, cancelFunc := context.WithCancel(c)
	defer cancelFunc()

	if cfg.MetricsAddr != "" {
		if err := serveMetrics(c, cfg.MetricsAddr, reg, logger); err != nil {
			_ = conn.Close()
			return err
		}
	}

	serverErrC := make(chan error, 1)
	go func() {
		err := server.Serve(c, conn)
		if err != nil {
			cancelFunc()
		}
		serverErrC <- err
	}()

	logger.Infof("Listening for OSC messages on %s; rendering %d pixel(s) to %q.",
		conn.LocalAddr(), strip.NumPixels(), cfg.Output)
	logger.Infof("Press Ctrl-C to quit.")

	loopErr := loop.Run(c)
	cancelFunc()
	serverErr := <-serverErrC

	logger.Infof("Rendered %d frame(s).", loop.Frames())
	switch {
	case loopErr != nil:
		return errors.Wrap(loopErr, "render loop failed")
	case serverErr != nil:
		return errors.Wrap(serverErr, "OSC server failed")
	default:
		return nil
	}
}

// OpenStrip opens the strip selected by cfg.Output.
//
// If the returned io.Closer is not nil, it must be closed when the strip is
// no longer used.
func OpenStrip(cfg *Config, logger logging.L) (device.Strip, io.Closer, error) {
	count := cfg.LED.Count
	if count <= 0 {
		return nil, nil, errors.Errorf("invalid pixel count: %d", count)
	}

	switch Output(cfg.Output) {
	case OutputNone:
		return device.NewMemory(count), nil, nil

	case OutputWS281x:
		ledCfg := cfg.LED
		ledCfg.Layout = pixel.BufferLayout(cfg.Layout)
		s, err := device.OpenWS281x(ledCfg)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case OutputOPC:
		if cfg.OPCChannel < 0 || cfg.OPCChannel > 0xFF {
			return nil, nil, errors.Errorf("invalid OPC channel: %d", cfg.OPCChannel)
		}
		s, err := device.DialOPC(cfg.OPCAddr, uint8(cfg.OPCChannel), count, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case OutputUDP:
		sender := network.ResilientDatagramSender{
			Factory: network.UDPSenderFactory(cfg.UDPAddr, cfg.UDPBufferSize),
			Logger:  logger,
		}
		if err := sender.Connect(); err != nil {
			return nil, nil, errors.Wrapf(err, "could not connect to %q", cfg.UDPAddr)
		}
		s, err := device.NewDatagram(&sender, count, pixel.BufferLayout(cfg.Layout), cfg.UDPCompress)
		if err != nil {
			_ = sender.Close()
			return nil, nil, err
		}
		return s, s, nil

	default:
		return nil, nil, errors.Errorf("unknown output: %q", cfg.Output)
	}
}

func serveMetrics(c context.Context, addr string, reg *prometheus.Registry, logger logging.L) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "could not listen for metrics on %q", addr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := http.Server{Handler: mux}

	go func() {
		<-c.Done()
		_ = srv.Close()
	}()
	go func() {
		if err := srv.Serve(l); err != nil && err != http.ErrServerClosed {
			logger.Warnf("Metrics server stopped: %s", err)
		}
	}()

	logger.Infof("Serving metrics on http://%s/metrics", l.Addr())
	return nil
}
