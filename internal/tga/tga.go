/*
DESCRIPTION
  tga.go writes decoded BC7 images out as uncompressed 32-bit TGA files, for
  visual inspection of decode results with cmd/bc7dump.

AUTHORS
  AusOcean Texture Team <texture@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package tga writes uncompressed 32-bit truecolor TGA images. It supports
// only what the BC7 tooling needs: a single write path for top-left-origin
// RGBA images, modelled on the minimal loader/writer pair used by the
// texture-compression tooling this module's decoder is descended from.
package tga

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

const (
	imageTypeUncompressedTrueColor = 2
	bitsPerPixel                   = 32
	// originTopLeft sets bits 5 of the image descriptor byte, marking the
	// first pixel written as the top-left corner rather than TGA's default
	// bottom-left.
	originTopLeft = 0x20
)

// Pixel is a single RGBA source texel. It mirrors bc7.Pixel's field layout
// without importing the bc7 package, keeping tga usable standalone.
type Pixel struct {
	R, G, B, A uint8
}

// Write encodes width*height RGBA pixels (row-major, top-left origin) as an
// uncompressed 32-bit TGA image.
func Write(w io.Writer, width, height int, pixels []Pixel) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("tga: invalid dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return errors.Errorf("tga: got %d pixels, want %d for %dx%d", len(pixels), width*height, width, height)
	}

	header := make([]byte, 18)
	header[2] = imageTypeUncompressedTrueColor
	binary.LittleEndian.PutUint16(header[12:14], uint16(width))
	binary.LittleEndian.PutUint16(header[14:16], uint16(height))
	header[16] = bitsPerPixel
	header[17] = originTopLeft

	if _, err := w.Write(header); err != nil {
		return errors.Wrap(err, "tga: writing header")
	}

	// TGAs store color data as BGRA.
	row := make([]byte, width*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := pixels[y*width+x]
			row[x*4+0] = px.B
			row[x*4+1] = px.G
			row[x*4+2] = px.R
			row[x*4+3] = px.A
		}
		if _, err := w.Write(row); err != nil {
			return errors.Wrapf(err, "tga: writing row %d", y)
		}
	}
	return nil
}
