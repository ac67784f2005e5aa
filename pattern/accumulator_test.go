// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pattern

import (
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Accumulator", func() {
	var a Accumulator
	BeforeEach(func() {
		a = Accumulator{}
	})

	It("starts at 0", func() {
		Expect(a.Phase()).To(Equal(0.0))
	})

	It("advances by skip", func() {
		a.Advance(16)
		a.Advance(16)
		Expect(a.Phase()).To(Equal(32.0))
	})

	It("resets to exactly 0 once the period is exceeded", func() {
		for _, skip := range []float64{16, 100, 333.3, 1919, 5000} {
			a.Reset()

			// Advance until the phase would leave the period; every observed phase
			// must be in range, and the wrap must land on 0.
			for i := 0; ; i++ {
				before := a.Phase()
				a.Advance(skip)
				if before+skip >= Split {
					Expect(a.Phase()).To(Equal(0.0), "skip %v", skip)
					break
				}
				Expect(a.Phase()).To(BeNumerically("<", Split))
				Expect(i).To(BeNumerically("<", 1000))
			}
		}
	})

	It("does not carry the remainder across a reset", func() {
		a.Advance(1900)
		a.Advance(100)
		Expect(a.Phase()).To(Equal(0.0))
		a.Advance(100)
		Expect(a.Phase()).To(Equal(100.0))
	})

	It("wraps negative skips back into the period", func() {
		a.Advance(-20)
		Expect(a.Phase()).To(Equal(Split - 20))
		a.Advance(-3 * Split)
		Expect(a.Phase()).To(BeNumerically(">=", 0))
		Expect(a.Phase()).To(BeNumerically("<", Split))
	})

	It("recovers from non-finite skips", func() {
		a.Advance(math.Inf(1))
		Expect(a.Phase()).To(Equal(0.0))
		a.Advance(math.Inf(-1))
		Expect(a.Phase()).To(Equal(0.0))
		a.Advance(math.NaN())
		Expect(a.Phase()).To(Equal(0.0))
	})
})
