// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixel

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Pixel Buffer", func() {
	p0 := P{Red: 100, Green: 110, Blue: 120}
	p1 := P{Red: 150, Green: 160, Blue: 170}

	Context("an RGB Buffer", func() {
		var pb *Buffer
		BeforeEach(func() {
			pb = &Buffer{Layout: BufferRGB}
		})

		It("has length 0", func() {
			Expect(pb.Len()).To(Equal(0))
			Expect(pb.Bytes()).To(HaveLen(0))
		})

		It("will grow its buffer when reset", func() {
			pb.Reset(5)
			Expect(pb.Len()).To(Equal(5))
			Expect(pb.Bytes()).To(HaveLen(15))
		})

		It("zeroes a reused buffer when reset", func() {
			pb.Reset(2)
			pb.SetPixel(0, p0)
			pb.Reset(1)
			Expect(pb.Bytes()).To(Equal([]byte{0, 0, 0}))
		})

		It("writes pixels in RGB order", func() {
			pb.Reset(2)
			pb.SetPixel(0, p0)
			pb.SetPixel(1, p1)

			Expect(pb.Bytes()).To(Equal([]byte{100, 110, 120, 150, 160, 170}))
			Expect(pb.Pixel(0)).To(Equal(p0))
			Expect(pb.Pixel(1)).To(Equal(p1))
		})

		It("ignores out of bounds pixels", func() {
			pb.Reset(1)
			pb.SetPixel(1, p0)
			pb.SetPixel(-1, p0)

			Expect(pb.Bytes()).To(Equal([]byte{0, 0, 0}))
			Expect(pb.Pixel(5)).To(Equal(P{}))
		})
	})

	Context("reordered layouts", func() {
		It("writes pixels in GRB order", func() {
			pb := Buffer{Layout: BufferGRB}
			pb.Reset(1)
			pb.SetPixel(0, p0)

			Expect(pb.Bytes()).To(Equal([]byte{110, 100, 120}))
			Expect(pb.Pixel(0)).To(Equal(p0))
		})

		It("writes pixels in BRG order", func() {
			pb := Buffer{Layout: BufferBRG}
			pb.Reset(1)
			pb.SetPixel(0, p0)

			Expect(pb.Bytes()).To(Equal([]byte{120, 100, 110}))
			Expect(pb.Pixel(0)).To(Equal(p0))
		})
	})

	Context("layout names", func() {
		It("parses known layouts", func() {
			l, err := ParseBufferLayout("GRB")
			Expect(err).ToNot(HaveOccurred())
			Expect(l).To(Equal(BufferGRB))
			Expect(l.String()).To(Equal("grb"))
		})

		It("rejects unknown layouts", func() {
			_, err := ParseBufferLayout("rgbw")
			Expect(err).To(HaveOccurred())
		})
	})
})
