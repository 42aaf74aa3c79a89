/*
DESCRIPTION
  doc.go provides the package-level documentation for bc7.

AUTHORS
  AusOcean Texture Team <texture@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bc7 decodes BC7 (also known as BPTC) compressed texture blocks,
// as produced by GPU texture compressors, into RGBA pixel data.
//
// The package exposes two entry points: DecodeBlock, which decodes a single
// 16-byte block, and DecodeImage, which tiles a full compressed buffer into
// blocks and decodes them (optionally in parallel) into an Image. Both are
// pure functions: decoding a block depends only on its 16 input bytes and
// the package's static mode/partition/anchor/weight tables, which are never
// mutated after package initialization and are safe for concurrent use.
package bc7
