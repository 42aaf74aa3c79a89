/*
DESCRIPTION
  errors.go provides the sentinel errors surfaced by the BC7 block and image
  decoders.

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

import "errors"

// Errors returned by DecodeBlock and DecodeImage. Callers should compare
// against these with errors.Is; wrapped context (block coordinates, the field
// or pixel being read) is added with github.com/pkg/errors at the call site,
// not baked into the sentinel itself.
var (
	// ErrDimension indicates the image width or height is not a positive
	// multiple of 4, or the supplied buffers are inconsistent with the given
	// dimensions.
	ErrDimension = errors.New("bc7: width and height must be non-zero multiples of 4")

	// ErrInvalidMode indicates a block's mode prefix has eight leading zero
	// bits with no terminating 1, so no valid mode could be selected.
	ErrInvalidMode = errors.New("bc7: invalid mode (no mode-prefix terminator found)")

	// ErrBitCursorOverflow indicates a field read would consume more than
	// the 128 bits available in a block. This should be unreachable on a
	// conforming BC7 stream; it guards against corrupt mode tables.
	ErrBitCursorOverflow = errors.New("bc7: bit cursor overflow")

	// ErrInvalidRotation indicates a rotation selector outside 0..3. This is
	// unreachable given rotation fields are at most 2 bits wide, but is
	// checked defensively.
	ErrInvalidRotation = errors.New("bc7: invalid rotation selector")
)
