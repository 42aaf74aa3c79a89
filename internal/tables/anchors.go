/*
DESCRIPTION
  anchors.go provides the BC7/BPTC anchor-index table: for each subset count
  and shape, which pixel index is the anchor for each subset (subset 0's
  anchor is always pixel 0; this table carries the fixups for subsets 1/2).

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

// Anchors[ns-1][shape][subset] gives the pixel index whose palette index is
// stored with one fewer bit for that subset. Subset 0 is always pixel 0 and
// is included here only for uniform indexing; these are the literal BC7
// specification fixup values, not re-derived.
var Anchors = [3][64][3]uint8{
	// 1 subset: no fixups needed, subset 0 anchor is always pixel 0.
	{
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
	},

	// 2 subsets.
	{
		{0, 15, 0}, {0, 15, 0}, {0, 15, 0}, {0, 15, 0},
		{0, 15, 0}, {0, 15, 0}, {0, 15, 0}, {0, 15, 0},
		{0, 15, 0}, {0, 15, 0}, {0, 15, 0}, {0, 15, 0},
		{0, 15, 0}, {0, 15, 0}, {0, 15, 0}, {0, 15, 0},
		{0, 15, 0}, {0, 2, 0}, {0, 8, 0}, {0, 2, 0},
		{0, 2, 0}, {0, 8, 0}, {0, 8, 0}, {0, 15, 0},
		{0, 2, 0}, {0, 8, 0}, {0, 2, 0}, {0, 2, 0},
		{0, 8, 0}, {0, 8, 0}, {0, 2, 0}, {0, 2, 0},

		{0, 15, 0}, {0, 15, 0}, {0, 6, 0}, {0, 8, 0},
		{0, 2, 0}, {0, 8, 0}, {0, 15, 0}, {0, 15, 0},
		{0, 2, 0}, {0, 8, 0}, {0, 2, 0}, {0, 2, 0},
		{0, 2, 0}, {0, 15, 0}, {0, 15, 0}, {0, 6, 0},
		{0, 6, 0}, {0, 2, 0}, {0, 6, 0}, {0, 8, 0},
		{0, 15, 0}, {0, 15, 0}, {0, 2, 0}, {0, 2, 0},
		{0, 15, 0}, {0, 15, 0}, {0, 15, 0}, {0, 15, 0},
		{0, 15, 0}, {0, 2, 0}, {0, 2, 0}, {0, 15, 0},
	},

	// 3 subsets.
	{
		{0, 3, 15}, {0, 3, 8}, {0, 15, 8}, {0, 15, 3},
		{0, 8, 15}, {0, 3, 15}, {0, 15, 3}, {0, 15, 8},
		{0, 8, 15}, {0, 8, 15}, {0, 6, 15}, {0, 6, 15},
		{0, 6, 15}, {0, 5, 15}, {0, 3, 15}, {0, 3, 8},
		{0, 3, 15}, {0, 3, 8}, {0, 8, 15}, {0, 15, 3},
		{0, 3, 15}, {0, 3, 8}, {0, 6, 15}, {0, 10, 8},
		{0, 5, 3}, {0, 8, 15}, {0, 8, 6}, {0, 6, 10},
		{0, 8, 15}, {0, 5, 15}, {0, 15, 10}, {0, 15, 8},
		{0, 8, 15}, {0, 15, 3}, {0, 3, 15}, {0, 5, 10},
		{0, 6, 10}, {0, 10, 8}, {0, 8, 9}, {0, 15, 10},
		{0, 15, 6}, {0, 3, 15}, {0, 15, 8}, {0, 5, 15},
		{0, 15, 3}, {0, 15, 6}, {0, 15, 6}, {0, 15, 8},
		{0, 3, 15}, {0, 15, 3}, {0, 5, 15}, {0, 5, 15},
		{0, 5, 15}, {0, 8, 15}, {0, 5, 15}, {0, 10, 15},
		{0, 5, 15}, {0, 10, 15}, {0, 8, 15}, {0, 13, 15},
		{0, 15, 3}, {0, 12, 15}, {0, 3, 15}, {0, 3, 8},
	},
}
