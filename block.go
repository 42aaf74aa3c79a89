/*
DESCRIPTION
  block.go implements the BC7 per-block decoder: mode dispatch, endpoint and
  index extraction, endpoint unquantization, palette interpolation, and
  channel rotation for a single 16-byte compressed block.

AUTHORS
  AusOcean Texture Team <texture@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bc7 decodes BC7 (BPTC) compressed texture blocks into RGBA pixels.
// The core API, DecodeBlock and DecodeImage, is a pure function over bytes:
// no heap state is retained between calls, and the static mode/partition/
// anchor/weight tables are safe to share across concurrent decodes.
package bc7

import (
	"github.com/pkg/errors"

	"github.com/ausocean/bc7/internal/bits"
	"github.com/ausocean/bc7/internal/tables"
)

// Block is a single 128-bit BC7 compressed block.
type Block [16]byte

// Pixel is one decoded RGBA texel.
type Pixel struct {
	R, G, B, A uint8
}

const numPixelsPerBlock = 16

// DecodeBlock decodes a single BC7 block into 16 RGBA pixels in raster order
// (pixel i is at row i/4, column i%4).
func DecodeBlock(block Block) ([numPixelsPerBlock]Pixel, error) {
	var out [numPixelsPerBlock]Pixel

	r := bits.NewReader(block[:])

	mode, err := readMode(r)
	if err != nil {
		return out, err
	}
	m := tables.Modes[mode]

	shape, err := read(r, m.ShapeBits)
	if err != nil {
		return out, errors.Wrap(err, "bc7: reading shape index")
	}

	rotation, err := read(r, m.RotationBits)
	if err != nil {
		return out, errors.Wrap(err, "bc7: reading rotation index")
	}

	isb, err := read(r, m.ISBBits)
	if err != nil {
		return out, errors.Wrap(err, "bc7: reading index selection bit")
	}

	numChannels := 3
	if m.HasAlpha() {
		numChannels = 4
	}

	var endpoints [3][2][4]uint8
	if err := readEndpoints(r, m, numChannels, &endpoints); err != nil {
		return out, err
	}

	if m.Parity != tables.ParityNone {
		if err := applyParity(r, m, numChannels, &endpoints); err != nil {
			return out, err
		}
	}

	unquantize(m, numChannels, &endpoints)

	var primaryIdx, secondaryIdx [numPixelsPerBlock]uint8
	if err := readIndices(r, m.IndexBits1, m.NumSubsets, int(shape), &primaryIdx); err != nil {
		return out, errors.Wrap(err, "bc7: reading primary indices")
	}
	if m.HasSecondIndex() {
		if err := readSecondaryIndices(r, m.IndexBits2, &secondaryIdx); err != nil {
			return out, errors.Wrap(err, "bc7: reading secondary indices")
		}
	} else {
		secondaryIdx = primaryIdx
	}

	idx1, off1, size1 := &primaryIdx, m.PaletteOffset1, m.PaletteSize1
	idx2, off2, size2 := &secondaryIdx, m.PaletteOffset1, m.PaletteSize1
	if m.HasSecondIndex() {
		off2, size2 = m.PaletteOffset2, m.PaletteSize2
	}
	if isb == 1 {
		idx1, idx2 = idx2, idx1
		off1, off2 = off2, off1
		size1, size2 = size2, size1
	}

	for p := 0; p < numPixelsPerBlock; p++ {
		subset := tables.Partitions[m.NumSubsets-1][shape][p]

		w1, err := paletteWeight(off1, size1, idx1[p])
		if err != nil {
			return out, err
		}
		w2, err := paletteWeight(off2, size2, idx2[p])
		if err != nil {
			return out, err
		}

		e0 := endpoints[subset][0]
		e1 := endpoints[subset][1]

		px := Pixel{
			R: interpolate(e0[0], e1[0], w1),
			G: interpolate(e0[1], e1[1], w1),
			B: interpolate(e0[2], e1[2], w1),
			A: interpolate(e0[3], e1[3], w2),
		}

		px, err = rotate(px, uint8(rotation))
		if err != nil {
			return out, err
		}

		out[p] = px
	}

	return out, nil
}

// readMode reads the unary mode prefix: the number of leading zero bits
// before the first 1, which is the mode number. Eight leading zeros with no
// terminating 1 is an invalid block.
func readMode(r *bits.Reader) (int, error) {
	for mode := 0; mode < 8; mode++ {
		bit, err := r.Read(1)
		if err != nil {
			return 0, errors.Wrap(err, "bc7: reading mode prefix")
		}
		if bit == 1 {
			return mode, nil
		}
	}
	return 0, ErrInvalidMode
}

// read is a small convenience wrapper translating bits.ErrOverflow into the
// package's own sentinel so callers outside internal/bits see bc7's error
// kinds per spec.
func read(r *bits.Reader, width int) (uint32, error) {
	v, err := r.Read(width)
	if err == bits.ErrOverflow {
		return 0, ErrBitCursorOverflow
	}
	return v, err
}

// readEndpoints reads the channel-major, subset-major, endpoint-minor
// sequence of endpoint color components (spec step 4.3.4).
func readEndpoints(r *bits.Reader, m tables.Mode, numChannels int, endpoints *[3][2][4]uint8) error {
	parityAdjust := 0
	if m.Parity != tables.ParityNone {
		parityAdjust = 1
	}
	for c := 0; c < numChannels; c++ {
		precision := m.EndpointPrecision[c] - parityAdjust
		for s := 0; s < m.NumSubsets; s++ {
			v0, err := read(r, precision)
			if err != nil {
				return errors.Wrapf(err, "bc7: reading endpoint 0 channel %d subset %d", c, s)
			}
			v1, err := read(r, precision)
			if err != nil {
				return errors.Wrapf(err, "bc7: reading endpoint 1 channel %d subset %d", c, s)
			}
			endpoints[s][0][c] = uint8(v0)
			endpoints[s][1][c] = uint8(v1)
		}
	}
	return nil
}

// applyParity reads the mode's parity bits and folds them into the endpoint
// channel values as the new least-significant bit.
func applyParity(r *bits.Reader, m tables.Mode, numChannels int, endpoints *[3][2][4]uint8) error {
	numParityBits := m.NumSubsets
	if m.Parity == tables.ParityPerEndpoint {
		numParityBits = 2 * m.NumSubsets
	}

	var parity [2 * 3]uint8
	for i := 0; i < numParityBits; i++ {
		v, err := read(r, 1)
		if err != nil {
			return errors.Wrap(err, "bc7: reading parity bit")
		}
		parity[i] = uint8(v)
	}

	for c := 0; c < numChannels; c++ {
		for s := 0; s < m.NumSubsets; s++ {
			if m.Parity == tables.ParityShared {
				p := parity[s]
				endpoints[s][0][c] = (endpoints[s][0][c] << 1) | p
				endpoints[s][1][c] = (endpoints[s][1][c] << 1) | p
				continue
			}
			p0 := parity[2*s]
			p1 := parity[2*s+1]
			endpoints[s][0][c] = (endpoints[s][0][c] << 1) | p0
			endpoints[s][1][c] = (endpoints[s][1][c] << 1) | p1
		}
	}
	return nil
}

// unquantize expands each endpoint channel (already parity-folded to its
// full stored precision) to 8 bits by replicating its high bits into the
// newly opened low bits, then forces alpha to opaque for 3-channel modes.
func unquantize(m tables.Mode, numChannels int, endpoints *[3][2][4]uint8) {
	for s := 0; s < m.NumSubsets; s++ {
		for c := 0; c < numChannels; c++ {
			p := uint(m.EndpointPrecision[c])
			endpoints[s][0][c] = expandBits(endpoints[s][0][c], p)
			endpoints[s][1][c] = expandBits(endpoints[s][1][c], p)
		}
		if numChannels == 3 {
			endpoints[s][0][3] = 255
			endpoints[s][1][3] = 255
		}
	}
}

// expandBits left-shifts v (a value of precision p bits) up to 8 bits and
// ORs in the top p bits of the shifted value into the newly-opened low bits,
// the standard BC7 bit-replication unquantization.
func expandBits(v uint8, p uint) uint8 {
	shifted := v << (8 - p)
	return shifted | (shifted >> p)
}

// readIndices reads the primary palette index for every pixel in raster
// order, reducing the bit width by one for each subset's anchor pixel.
func readIndices(r *bits.Reader, indexBits, numSubsets, shape int, out *[numPixelsPerBlock]uint8) error {
	for p := 0; p < numPixelsPerBlock; p++ {
		precision := indexBits
		for s := 0; s < numSubsets; s++ {
			if int(tables.Anchors[numSubsets-1][shape][s]) == p {
				precision--
				break
			}
		}
		v, err := read(r, precision)
		if err != nil {
			return errors.Wrapf(err, "pixel %d", p)
		}
		out[p] = uint8(v)
	}
	return nil
}

// readSecondaryIndices reads the secondary palette index stream, where only
// pixel 0 is an anchor.
func readSecondaryIndices(r *bits.Reader, indexBits int, out *[numPixelsPerBlock]uint8) error {
	for p := 0; p < numPixelsPerBlock; p++ {
		precision := indexBits
		if p == 0 {
			precision--
		}
		v, err := read(r, precision)
		if err != nil {
			return errors.Wrapf(err, "pixel %d", p)
		}
		out[p] = uint8(v)
	}
	return nil
}

// paletteWeight looks up the interpolation weight for palette index idx
// within the palette starting at offset with the given size. This is a
// defense-in-depth bounds check: a conforming block cannot produce idx
// outside [0, size), since index fields are sized to exactly match the
// palette they select from.
func paletteWeight(offset, size int, idx uint8) (uint8, error) {
	if int(idx) >= size {
		return 0, errors.Errorf("bc7: palette index %d out of range for size %d", idx, size)
	}
	return tables.Weights[offset+int(idx)], nil
}

// interpolate blends two endpoint channel values using weight w (0..64) per
// spec.md's fixed-point formula.
func interpolate(e0, e1, w uint8) uint8 {
	const maxWeight = 64
	v := (uint32(e0)*(maxWeight-uint32(w)) + uint32(e1)*uint32(w) + 32) >> 6
	return uint8(v)
}

// rotate swaps alpha with R, G, or B depending on the rotation selector.
func rotate(px Pixel, rotation uint8) (Pixel, error) {
	switch rotation {
	case 0:
		return px, nil
	case 1:
		px.R, px.A = px.A, px.R
		return px, nil
	case 2:
		px.G, px.A = px.A, px.G
		return px, nil
	case 3:
		px.B, px.A = px.A, px.B
		return px, nil
	default:
		return px, ErrInvalidRotation
	}
}
