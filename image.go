/*
DESCRIPTION
  image.go tiles a BC7-compressed image into 4x4 blocks, decodes each with
  DecodeBlock, and assembles the result into a flat RGBA pixel image. Block
  decoding is fanned out across a worker pool using sync.WaitGroup.

AUTHORS
  AusOcean Texture Team <texture@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bc7

import (
	"sync"

	"github.com/pkg/errors"
)

const blockDim = 4

// Image is a decoded BC7 texture: Width*Height pixels in row-major order.
type Image struct {
	Width, Height int
	Pixels        []Pixel
}

// At returns the pixel at (x, y).
func (img *Image) At(x, y int) Pixel {
	return img.Pixels[y*img.Width+x]
}

// DecodeImage decodes a whole BC7-compressed image. data must hold exactly
// (width/4)*(height/4) 16-byte blocks in row-major block order. width and
// height must each be a non-zero multiple of 4.
func DecodeImage(data []byte, width, height int, opts Options) (*Image, error) {
	if width <= 0 || height <= 0 || width%blockDim != 0 || height%blockDim != 0 {
		opts.log(LogError, "bc7: invalid image dimensions", "width", width, "height", height)
		return nil, ErrDimension
	}

	blocksWide := width / blockDim
	blocksHigh := height / blockDim
	numBlocks := blocksWide * blocksHigh

	if len(data) != numBlocks*16 {
		opts.log(LogError, "bc7: compressed buffer size mismatch",
			"got", len(data), "want", numBlocks*16)
		return nil, ErrDimension
	}

	img := &Image{Width: width, Height: height, Pixels: make([]Pixel, width*height)}

	decodeRange := func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			bx := i % blocksWide
			by := i / blocksWide

			var blk Block
			copy(blk[:], data[i*16:i*16+16])

			pixels, err := DecodeBlock(blk)
			if err != nil {
				return errors.Wrapf(err, "bc7: decoding block (%d, %d)", bx, by)
			}

			for p := 0; p < 16; p++ {
				x := bx*blockDim + p%blockDim
				y := by*blockDim + p/blockDim
				img.Pixels[y*width+x] = pixels[p]
			}
		}
		return nil
	}

	workers := opts.workers()
	if workers <= 1 || numBlocks <= workers {
		if err := decodeRange(0, numBlocks); err != nil {
			return nil, err
		}
		return img, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	chunk := (numBlocks + workers - 1) / workers
	for lo := 0; lo < numBlocks; lo += chunk {
		hi := lo + chunk
		if hi > numBlocks {
			hi = numBlocks
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			if err := decodeRange(lo, hi); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(lo, hi)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return img, nil
}
