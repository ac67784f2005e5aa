// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package render

import (
	"context"
	"time"

	"github.com/danjacques/oscstrip/control"
	"github.com/danjacques/oscstrip/device"
	"github.com/danjacques/oscstrip/pixel"

	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Loop", func() {
	const numPixels = 4

	var (
		strip *device.Memory
		state *control.State
		l     *Loop
	)
	BeforeEach(func() {
		strip = device.NewMemory(numPixels)
		state = control.NewState(control.DefaultParams())
		l = &Loop{
			Strip:    strip,
			State:    state,
			Interval: time.Millisecond,
		}
	})

	It("pushes one rendered frame per tick", func() {
		h := control.Handlers{State: state}
		h.ColorMode("point")
		h.RGB(10, 20, 30)
		h.Luminosity(0.5)

		Expect(l.Tick()).To(Succeed())
		Expect(strip.Shows()).To(Equal(1))
		Expect(strip.Frame()).To(Equal(uniform(numPixels, pixel.RGB{R: 5, G: 10, B: 15})))
		Expect(l.Frames()).To(Equal(int64(1)))
	})

	It("sizes its generator to the strip", func() {
		Expect(l.Tick()).To(Succeed())
		Expect(l.Generator).ToNot(BeNil())
		Expect(strip.Frame()).To(HaveLen(numPixels))
	})

	It("picks up parameter changes on the next tick", func() {
		h := control.Handlers{State: state}
		h.ColorMode("point")
		h.RGB(1, 2, 3)
		Expect(l.Tick()).To(Succeed())
		Expect(strip.Frame()[0]).To(Equal(pixel.RGB{R: 1, G: 2, B: 3}))

		h.RGB(4, 5, 6)
		Expect(l.Tick()).To(Succeed())
		Expect(strip.Frame()[0]).To(Equal(pixel.RGB{R: 4, G: 5, B: 6}))
	})

	It("keeps rendering after a zero tempo message", func() {
		d := control.Dispatcher{Handlers: &control.Handlers{State: state}}
		Expect(d.Dispatch(control.AddrBPM, control.Args{int32(0)})).ToNot(Succeed())

		for i := 0; i < 10; i++ {
			Expect(l.Tick()).To(Succeed())
		}
		Expect(strip.Shows()).To(Equal(10))
		Expect(l.Generator.Phase().Pattern).To(Equal(160.0))
	})

	Context("when the strip fails", func() {
		var failures int
		BeforeEach(func() {
			failures = 0
			strip.OnShow = func([]pixel.RGB) error {
				if failures > 0 {
					failures--
					return errors.New("bus error")
				}
				return nil
			}
		})

		It("fails the tick without retries", func() {
			failures = 1
			Expect(l.Tick()).ToNot(Succeed())
			Expect(l.Frames()).To(Equal(int64(0)))
		})

		It("retries within the tick", func() {
			failures = 1
			l.ShowRetries = 1
			Expect(l.Tick()).To(Succeed())
			Expect(strip.Shows()).To(Equal(2))
		})

		It("gives up after exhausting retries", func() {
			failures = 3
			l.ShowRetries = 1
			err := l.Tick()
			Expect(err).To(HaveOccurred())
			Expect(errors.Cause(err).Error()).To(Equal("bus error"))
		})

		It("stops running", func() {
			failures = 1000
			Expect(l.Run(context.Background())).ToNot(Succeed())
		})
	})

	It("runs until cancelled", func() {
		c, cancel := context.WithCancel(context.Background())
		defer cancel()

		strip.OnShow = func([]pixel.RGB) error {
			if strip.Shows() >= 5 {
				cancel()
			}
			return nil
		}

		Expect(l.Run(c)).To(Succeed())
		Expect(l.Frames()).To(BeNumerically(">=", 5))
	})

	It("paces frames at the interval", func() {
		c, cancel := context.WithCancel(context.Background())
		defer cancel()

		l.Interval = 10 * time.Millisecond
		strip.OnShow = func([]pixel.RGB) error {
			if strip.Shows() >= 6 {
				cancel()
			}
			return nil
		}

		start := time.Now()
		Expect(l.Run(c)).To(Succeed())
		Expect(time.Since(start)).To(BeNumerically(">=", 40*time.Millisecond))
	})
})
