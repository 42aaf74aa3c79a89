/*
DESCRIPTION
  modes.go provides the eight BC7 mode descriptors: endpoint precision,
  subset count, and bit-field widths for each mode's block layout.

AUTHORS
  AusOcean Texture Team <texture@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package tables provides the static BC7 mode, partition, anchor, and
// palette-weight tables used by the block decoder. All data here is
// read-only and safe to share across concurrent decodes.
package tables

// ParityKind tags how (if at all) a mode's endpoint channels carry a trailing
// parity bit. Modeled as its own type rather than overloading 0/1/2 so call
// sites read as intent, not magic numbers.
type ParityKind int

const (
	// ParityNone means endpoint channels carry no parity bit.
	ParityNone ParityKind = iota
	// ParityShared means one parity bit per subset, applied to both of that
	// subset's endpoints.
	ParityShared
	// ParityPerEndpoint means each endpoint of each subset has its own
	// parity bit.
	ParityPerEndpoint
)

// Mode describes one of BC7's eight block layouts. Field widths are in bits.
type Mode struct {
	// EndpointPrecision gives, per channel (R,G,B,A), the full stored
	// precision of an endpoint component including any parity bit. A is 0
	// for modes with no alpha channel.
	EndpointPrecision [4]int

	NumSubsets   int // 1, 2, or 3.
	ShapeBits    int // Width of the partition/shape index field.
	RotationBits int // Width of the rotation field (0 or 2).
	ISBBits      int // Width of the index-selection-bit field (0 or 1).
	Parity       ParityKind

	IndexBits1     int // Primary palette index width.
	PaletteSize1   int // Primary palette cardinality (1 << IndexBits1).
	PaletteOffset1 int // Offset of the primary palette into Weights.

	IndexBits2     int // Secondary palette index width (0 if absent).
	PaletteSize2   int // Secondary palette cardinality.
	PaletteOffset2 int // Offset of the secondary palette into Weights.
}

// Modes holds the eight BC7 mode descriptors, indexed by mode number. Values
// are transcribed directly from the BC7_modes table in the reference
// bc7_decompress.cpp this decoder is ported from.
var Modes = [8]Mode{
	// Mode 0: 3 subsets, per-endpoint parity, 3-bit primary index.
	{
		EndpointPrecision: [4]int{5, 5, 5, 0},
		NumSubsets:        3,
		ShapeBits:         4,
		Parity:            ParityPerEndpoint,
		IndexBits1:        3, PaletteSize1: 8, PaletteOffset1: 4,
	},
	// Mode 1: 2 subsets, shared parity, 3-bit primary index.
	{
		EndpointPrecision: [4]int{7, 7, 7, 0},
		NumSubsets:        2,
		ShapeBits:         6,
		Parity:            ParityShared,
		IndexBits1:        3, PaletteSize1: 8, PaletteOffset1: 4,
	},
	// Mode 2: 3 subsets, no parity, 2-bit primary index.
	{
		EndpointPrecision: [4]int{5, 5, 5, 0},
		NumSubsets:        3,
		ShapeBits:         6,
		Parity:            ParityNone,
		IndexBits1:        2, PaletteSize1: 4, PaletteOffset1: 0,
	},
	// Mode 3: 2 subsets, per-endpoint parity, 2-bit primary index.
	{
		EndpointPrecision: [4]int{8, 8, 8, 0},
		NumSubsets:        2,
		ShapeBits:         6,
		Parity:            ParityPerEndpoint,
		IndexBits1:        2, PaletteSize1: 4, PaletteOffset1: 0,
	},
	// Mode 4: 1 subset, rotation + ISB, dual index streams (2-bit color, 3-bit alpha).
	{
		EndpointPrecision: [4]int{5, 5, 5, 6},
		NumSubsets:        1,
		RotationBits:      2,
		ISBBits:           1,
		Parity:            ParityNone,
		IndexBits1:        2, PaletteSize1: 4, PaletteOffset1: 0,
		IndexBits2: 3, PaletteSize2: 8, PaletteOffset2: 4,
	},
	// Mode 5: 1 subset, rotation only, dual index streams (2-bit each).
	{
		EndpointPrecision: [4]int{7, 7, 7, 8},
		NumSubsets:        1,
		RotationBits:      2,
		Parity:            ParityNone,
		IndexBits1:        2, PaletteSize1: 4, PaletteOffset1: 0,
		IndexBits2: 2, PaletteSize2: 4, PaletteOffset2: 0,
	},
	// Mode 6: 1 subset, per-endpoint parity, 4-bit single index stream.
	{
		EndpointPrecision: [4]int{8, 8, 8, 8},
		NumSubsets:        1,
		Parity:            ParityPerEndpoint,
		IndexBits1:        4, PaletteSize1: 16, PaletteOffset1: 12,
	},
	// Mode 7: 2 subsets, per-endpoint parity, 2-bit single index stream.
	{
		EndpointPrecision: [4]int{6, 6, 6, 6},
		NumSubsets:        2,
		ShapeBits:         6,
		Parity:            ParityPerEndpoint,
		IndexBits1:        2, PaletteSize1: 4, PaletteOffset1: 0,
	},
}

// HasAlpha reports whether mode m stores a fourth (alpha) endpoint channel.
func (m Mode) HasAlpha() bool { return m.EndpointPrecision[3] != 0 }

// HasSecondIndex reports whether mode m carries a secondary index stream.
func (m Mode) HasSecondIndex() bool { return m.IndexBits2 != 0 }
