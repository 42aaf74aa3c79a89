/*
DESCRIPTION
  bc7compare decodes a BC7-compressed file and scores it against a reference
  TGA image: absolute error, mean-squared error, root-mean-squared error, and
  an optional per-pixel error histogram.

AUTHORS
  AusOcean Texture Team <texture@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements bc7compare, a command line tool that scores a
// decoded BC7 image against a reference image.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/ausocean/bc7"
	"github.com/ausocean/bc7/compare"
)

func main() {
	bc7Path := flag.String("bc7", "", "path to a raw BC7 block stream")
	refPath := flag.String("reference", "", "path to a reference uncompressed 32-bit TGA image")
	width := flag.Int("width", 0, "image width in pixels")
	height := flag.Int("height", 0, "image height in pixels")
	histPath := flag.String("histogram", "", "optional path to write a per-pixel error histogram PNG")
	histBins := flag.Int("bins", 32, "number of histogram bins")
	flag.Parse()

	if *bc7Path == "" || *refPath == "" || *width == 0 || *height == 0 {
		fmt.Fprintln(os.Stderr, "usage: bc7compare -bc7 FILE -reference FILE.tga -width W -height H [-histogram FILE.png]")
		os.Exit(2)
	}

	if err := run(*bc7Path, *refPath, *width, *height, *histPath, *histBins); err != nil {
		fmt.Fprintln(os.Stderr, "bc7compare:", err)
		os.Exit(1)
	}
}

func run(bc7Path, refPath string, width, height int, histPath string, histBins int) error {
	compressed, err := os.ReadFile(bc7Path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", bc7Path)
	}

	decoded, err := bc7.DecodeImage(compressed, width, height, bc7.Options{})
	if err != nil {
		return errors.Wrapf(err, "decoding %s", bc7Path)
	}

	reference, err := loadTGA(refPath, width, height)
	if err != nil {
		return errors.Wrapf(err, "loading %s", refPath)
	}

	result, err := compare.Images(reference, decoded)
	if err != nil {
		return errors.Wrap(err, "comparing images")
	}

	fmt.Printf("RGBA absolute error: %d\n", result.AbsoluteError)
	fmt.Printf("RGBA mean-squared error: %f\n", result.MSE)
	fmt.Printf("RGBA root-mean-squared error: %f\n", result.RMSE)

	if histPath != "" {
		errs := compare.PerPixelError(reference, decoded)
		if err := compare.SaveErrorHistogram(errs, histBins, histPath); err != nil {
			return errors.Wrap(err, "saving error histogram")
		}
	}
	return nil
}

// loadTGA reads an uncompressed 24 or 32-bit top-left-origin TGA image into
// a bc7.Image, for use as a comparison reference. This intentionally only
// covers the subset of the format internal/tga writes and this tool needs.
func loadTGA(path string, width, height int) (*bc7.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) < 18 {
		return nil, errors.New("file too short to be a TGA")
	}

	const imageTypeUncompressedTrueColor = 2
	if data[2] != imageTypeUncompressedTrueColor {
		return nil, errors.New("only uncompressed true-color TGAs are supported")
	}

	gotWidth := int(binary.LittleEndian.Uint16(data[12:14]))
	gotHeight := int(binary.LittleEndian.Uint16(data[14:16]))
	if gotWidth != width || gotHeight != height {
		return nil, errors.Errorf("reference TGA is %dx%d, want %dx%d", gotWidth, gotHeight, width, height)
	}

	bitsPerPixel := int(data[16])
	bytesPerPixel := bitsPerPixel / 8
	if bytesPerPixel != 3 && bytesPerPixel != 4 {
		return nil, errors.Errorf("unsupported bit depth %d", bitsPerPixel)
	}

	// Bit 5 (0x20) of the descriptor marks a top-left origin; internal/tga
	// only ever writes that form, so anything else is rejected rather than
	// silently flipped.
	if data[17]&0x20 == 0 {
		return nil, errors.New("only top-left-origin TGAs are supported")
	}

	body := data[18:]
	want := width * height * bytesPerPixel
	if len(body) < want {
		return nil, errors.Errorf("pixel data too short: got %d bytes, want %d", len(body), want)
	}

	pixels := make([]bc7.Pixel, width*height)
	for i := range pixels {
		off := i * bytesPerPixel
		a := uint8(255)
		if bytesPerPixel == 4 {
			a = body[off+3]
		}
		pixels[i] = bc7.Pixel{R: body[off+2], G: body[off+1], B: body[off], A: a}
	}

	return &bc7.Image{Width: width, Height: height, Pixels: pixels}, nil
}
