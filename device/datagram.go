// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package device

import (
	"bytes"
	"io"

	"github.com/danjacques/oscstrip/pixel"
	"github.com/danjacques/oscstrip/support/network"

	"github.com/golang/snappy"
	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

// DatagramMagic identifies a Datagram frame.
var DatagramMagic = [4]byte{'O', 'S', 'C', 'S'}

// DatagramVersion is the current Datagram frame version.
const DatagramVersion = 1

// DatagramFlags is a bitmask of Datagram frame options.
type DatagramFlags uint8

const (
	// DatagramSnappy indicates that the pixel payload is snappy-compressed.
	DatagramSnappy DatagramFlags = 1 << iota
)

// DatagramHeader precedes the pixel payload of every Datagram frame.
type DatagramHeader struct {
	Magic    [4]byte
	Version  uint8
	Flags    DatagramFlags
	Layout   uint8
	Reserved uint8

	// Sequence increases by one with every frame, wrapping on overflow.
	Sequence uint32 `struc:",little"`
	// Pixels is the number of pixels in the (uncompressed) payload.
	Pixels uint16 `struc:",little"`
}

// Datagram is a Strip that sends each frame as a single UDP datagram.
//
// A frame is a DatagramHeader followed by the strip's pixels as a
// pixel.Buffer.
type Datagram struct {
	sender   network.DatagramSender
	compress bool

	pixels   pixel.Buffer
	sequence uint32
	out      bytes.Buffer
}

var _ Strip = (*Datagram)(nil)

// NewDatagram returns a Strip of count pixels that sends frames through
// sender, with pixel channels in the given layout.
//
// The Datagram takes ownership of sender, and will close it when closed.
func NewDatagram(sender network.DatagramSender, count int, layout pixel.BufferLayout, compress bool) (*Datagram, error) {
	if count > 0xFFFF {
		return nil, errors.Errorf("too many pixels for a datagram frame: %d", count)
	}

	d := Datagram{
		sender:   sender,
		compress: compress,
	}
	d.pixels.Layout = layout
	d.pixels.Reset(count)
	return &d, nil
}

// NumPixels implements Strip.
func (d *Datagram) NumPixels() int { return d.pixels.Len() }

// SetPixelColor implements Strip.
func (d *Datagram) SetPixelColor(i int, c pixel.RGB) { d.pixels.SetPixel(i, c.P()) }

// Show implements Strip.
func (d *Datagram) Show() error {
	hdr := DatagramHeader{
		Magic:    DatagramMagic,
		Version:  DatagramVersion,
		Layout:   uint8(d.pixels.Layout),
		Sequence: d.sequence,
		Pixels:   uint16(d.pixels.Len()),
	}

	payload := d.pixels.Bytes()
	if d.compress {
		hdr.Flags |= DatagramSnappy
		payload = snappy.Encode(nil, payload)
	}

	d.out.Reset()
	if err := struc.Pack(&d.out, &hdr); err != nil {
		return errors.Wrap(err, "could not pack frame header")
	}
	d.out.Write(payload)

	if max := d.sender.MaxDatagramSize(); max > 0 && d.out.Len() > max {
		return errors.Errorf("frame (%d byte(s)) exceeds maximum datagram size (%d)", d.out.Len(), max)
	}
	if err := d.sender.SendDatagram(d.out.Bytes()); err != nil {
		return errors.Wrapf(err, "could not send frame %d", d.sequence)
	}
	d.sequence++
	return nil
}

// Close closes the underlying sender.
func (d *Datagram) Close() error { return d.sender.Close() }

// DecodeDatagram parses a Datagram frame, returning its header and its pixels.
func DecodeDatagram(b []byte) (*DatagramHeader, *pixel.Buffer, error) {
	r := bytes.NewReader(b)

	var hdr DatagramHeader
	if err := struc.Unpack(r, &hdr); err != nil {
		return nil, nil, errors.Wrap(err, "could not unpack frame header")
	}
	switch {
	case hdr.Magic != DatagramMagic:
		return nil, nil, errors.Errorf("bad frame magic: %q", hdr.Magic[:])
	case hdr.Version != DatagramVersion:
		return nil, nil, errors.Errorf("unsupported frame version: %d", hdr.Version)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not read frame payload")
	}
	if hdr.Flags&DatagramSnappy != 0 {
		if payload, err = snappy.Decode(nil, payload); err != nil {
			return nil, nil, errors.Wrap(err, "could not decompress frame payload")
		}
	}

	pb := pixel.Buffer{Layout: pixel.BufferLayout(hdr.Layout)}
	pb.Reset(int(hdr.Pixels))
	if len(payload) != len(pb.Bytes()) {
		return nil, nil, errors.Errorf("frame payload is %d byte(s), expected %d", len(payload), len(pb.Bytes()))
	}
	copy(pb.Bytes(), payload)
	return &hdr, &pb, nil
}
