// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package render

import (
	"github.com/danjacques/oscstrip/control"
	"github.com/danjacques/oscstrip/pattern"
	"github.com/danjacques/oscstrip/pixel"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func pointParams(c pixel.RGB, lum float64) control.Params {
	p := control.DefaultParams()
	p.ColorMode = control.ColorPoint
	p.PointColor = c
	p.Luminosity = lum
	return p
}

func uniform(n int, c pixel.RGB) []pixel.RGB {
	frame := make([]pixel.RGB, n)
	for i := range frame {
		frame[i] = c
	}
	return frame
}

var _ = Describe("Generator", func() {
	const numPixels = 8

	var g *Generator
	BeforeEach(func() {
		g = NewGenerator(numPixels)
	})

	Context("in point mode", func() {
		It("scales every pixel by luminosity (passthrough)", func() {
			frame := g.Render(pointParams(pixel.RGB{R: 10, G: 20, B: 30}, 0.5))
			Expect(frame).To(Equal(uniform(numPixels, pixel.RGB{R: 5, G: 10, B: 15})))
		})

		It("scales every pixel by luminosity (clamped)", func() {
			g.Clamp = true
			frame := g.Render(pointParams(pixel.RGB{R: 10, G: 20, B: 30}, 0.5))
			Expect(frame).To(Equal(uniform(numPixels, pixel.RGB{R: 5, G: 10, B: 15})))
		})

		It("passes out of range values through unclamped", func() {
			frame := g.Render(pointParams(pixel.RGB{R: 200, G: -10, B: 30}, 2))
			Expect(frame).To(Equal(uniform(numPixels, pixel.RGB{R: 400, G: -20, B: 60})))
		})

		It("clamps luminosity and channels when hardened", func() {
			g.Clamp = true
			frame := g.Render(pointParams(pixel.RGB{R: 200, G: -10, B: 30}, 2))
			Expect(frame).To(Equal(uniform(numPixels, pixel.RGB{R: 200, G: 0, B: 30})))

			frame = g.Render(pointParams(pixel.RGB{R: 300, G: 20, B: 30}, 1))
			Expect(frame).To(Equal(uniform(numPixels, pixel.RGB{R: 255, G: 20, B: 30})))

			frame = g.Render(pointParams(pixel.RGB{R: 10, G: 20, B: 30}, -1))
			Expect(frame).To(Equal(uniform(numPixels, pixel.RGB{})))
		})

		It("does not compound scaling across frames", func() {
			p := pointParams(pixel.RGB{R: 100, G: 100, B: 100}, 0.5)
			g.Render(p)
			g.Render(p)
			frame := g.Render(p)
			Expect(frame).To(Equal(uniform(numPixels, pixel.RGB{R: 50, G: 50, B: 50})))
		})

		It("does not advance the rainbow phase", func() {
			g.Render(pointParams(pixel.RGB{R: 1}, 1))
			Expect(g.Phase().Rainbow).To(Equal(0.0))
		})
	})

	Context("in rainbow mode", func() {
		var p control.Params
		BeforeEach(func() {
			p = control.DefaultParams()
		})

		It("spreads the wheel across the strip", func() {
			frame := g.Render(p)
			for i, c := range frame {
				Expect(c).To(Equal(pixel.Wheel(i)), "pixel %d", i)
			}
		})

		It("rolls the wheel each frame", func() {
			p.RainbowRollSkip = 2
			g.Render(p)
			frame := g.Render(p)
			for i, c := range frame {
				Expect(c).To(Equal(pixel.Wheel(i+2)), "pixel %d", i)
			}
		})

		It("honors the roll interval", func() {
			g.RollInterval = 32
			frame := g.Render(p)
			for i, c := range frame {
				Expect(c).To(Equal(pixel.Wheel(i*32)), "pixel %d", i)
			}
		})

		It("truncates fractional positions", func() {
			p.RainbowRollSkip = 0.75
			g.Render(p)
			frame := g.Render(p)
			Expect(frame[0]).To(Equal(pixel.Wheel(0)))
			Expect(frame[1]).To(Equal(pixel.Wheel(1)))
		})

		It("treats an unknown color mode as rainbow", func() {
			p.ColorMode = control.ColorMode(42)
			frame := g.Render(p)
			Expect(frame[3]).To(Equal(pixel.Wheel(3)))
		})

		It("resets the phase to 0 when it overflows", func() {
			p.RainbowRollSkip = 300
			g.Render(p)
			Expect(g.Phase().Rainbow).To(Equal(0.0))
		})

		It("resets the phase to 255 when it underflows", func() {
			p.RainbowRollSkip = -1
			g.Render(p)
			Expect(g.Phase().Rainbow).To(Equal(255.0))
			g.Render(p)
			Expect(g.Phase().Rainbow).To(Equal(254.0))
		})

		It("keeps the phase within the wheel for any sequence of skips", func() {
			for _, skip := range []float64{1, 7.5, 255, 256, -3, -300, 0.1, 1000, -0.5} {
				p.RainbowRollSkip = skip
				for i := 0; i < 50; i++ {
					g.Render(p)
					Expect(g.Phase().Rainbow).To(BeNumerically(">=", 0))
					Expect(g.Phase().Rainbow).To(BeNumerically("<=", 255))
				}
			}
		})
	})

	Context("with a pattern", func() {
		var p control.Params
		BeforeEach(func() {
			p = pointParams(pixel.RGB{R: 100, G: 50, B: 10}, 1)
		})

		It("advances the pattern phase once per frame", func() {
			p.PatternSkip = 16
			g.Render(p)
			g.Render(p)
			Expect(g.Phase().Pattern).To(Equal(32.0))
		})

		It("advances the pattern phase with no pattern selected", func() {
			p.PatternMode = pattern.None
			p.PatternSkip = 100
			frame := g.Render(p)
			Expect(frame).To(Equal(uniform(numPixels, pixel.RGB{R: 100, G: 50, B: 10})))
			Expect(g.Phase().Pattern).To(Equal(100.0))
		})

		It("resets the pattern phase to exactly 0 after it exceeds the period", func() {
			p.PatternSkip = 1000
			g.Render(p)
			Expect(g.Phase().Pattern).To(Equal(1000.0))
			g.Render(p)
			Expect(g.Phase().Pattern).To(Equal(0.0))
		})

		It("applies the envelope at the phase before advancing", func() {
			p.PatternMode = pattern.Triangle
			p.PatternSkip = pattern.Split / 4

			frame := g.Render(p)
			Expect(frame[0]).To(Equal(pixel.RGB{}))

			frame = g.Render(p)
			Expect(frame[0]).To(Equal(pixel.RGB{R: 50, G: 25, B: 5}))

			frame = g.Render(p)
			Expect(frame[0]).To(Equal(pixel.RGB{R: 100, G: 50, B: 10}))
		})

		It("blanks the second half of a pulse", func() {
			p.PatternMode = pattern.Pulse
			p.PatternSkip = pattern.Split / 2

			frame := g.Render(p)
			Expect(frame[numPixels-1]).To(Equal(pixel.RGB{R: 100, G: 50, B: 10}))

			frame = g.Render(p)
			Expect(frame[numPixels-1]).To(Equal(pixel.RGB{}))
		})

		It("multiplies by the raw phase for a legacy beat", func() {
			p.PatternMode = pattern.Beat
			p.PatternSkip = 2.5

			frame := g.Render(p)
			Expect(frame[0]).To(Equal(pixel.RGB{}))

			frame = g.Render(p)
			Expect(frame[0]).To(Equal(pixel.RGB{R: 200, G: 100, B: 20}))
		})

		It("keeps a bounded breath within the base color", func() {
			g.Style = pattern.StyleBounded
			p.PatternMode = pattern.Breath
			p.PatternSkip = 37

			for i := 0; i < 200; i++ {
				frame := g.Render(p)
				Expect(frame[0].R).To(BeNumerically(">=", 0))
				Expect(frame[0].R).To(BeNumerically("<=", 100))
			}
		})

		It("applies the envelope before luminosity", func() {
			p.PatternMode = pattern.Pulse
			p.Luminosity = 0.5
			frame := g.Render(p)
			Expect(frame[0]).To(Equal(pixel.RGB{R: 50, G: 25, B: 5}))
		})
	})
})
