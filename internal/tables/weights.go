/*
DESCRIPTION
  weights.go provides the BC7 palette interpolation weight table: the
  2-bit, 3-bit, and 4-bit palette weight sequences, concatenated and
  indexed by the per-mode palette offset/size in modes.go.

AUTHORS
  AusOcean Texture Team <texture@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package tables

// Weights holds the interpolation weight (0..64) for every palette entry
// across all three palette sizes BC7 uses, laid out back to back:
//
//	offset 0:  2-bit palette (4 entries)
//	offset 4:  3-bit palette (8 entries)
//	offset 12: 4-bit palette (16 entries)
//
// Mode.PaletteOffset{1,2} index into this table; Mode.PaletteSize{1,2} gives
// how many entries from that offset belong to the palette.
var Weights = [4 + 8 + 16]uint8{
	// 2-bit palette.
	0, 21, 43, 64,

	// 3-bit palette.
	0, 9, 18, 27, 37, 46, 55, 64,

	// 4-bit palette.
	0, 4, 9, 13, 17, 21, 26, 30, 34, 38, 43, 47, 51, 55, 60, 64,
}
