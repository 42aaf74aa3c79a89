/*
DESCRIPTION
  options.go defines decoding options accepted by DecodeImage: worker
  concurrency and an optional logging hook, following the tolerant
  defaulting style used throughout AusOcean's capture/streaming config.

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

import "runtime"

// Log levels passed to Options.Log, matching the level conventions used by
// github.com/ausocean/utils/logging.
const (
	LogDebug int8 = iota
	LogInfo
	LogWarning
	LogError
)

// LogFunc is a logging callback: lvl is one of the Log* constants, msg is a
// short description, and args are alternating key/value pairs.
type LogFunc func(lvl int8, msg string, args ...interface{})

// Options controls how DecodeImage tiles and parallelizes block decoding.
// A zero-value Options is valid; DecodeImage fills in defaults for any field
// left unset.
type Options struct {
	// Workers is the number of goroutines decoding blocks concurrently. A
	// value of 1 decodes serially. If zero or negative, Workers defaults to
	// runtime.NumCPU().
	Workers int

	// Log, if non-nil, receives diagnostic messages during decode (e.g. a
	// dimension mismatch). DecodeImage itself never logs successful
	// decodes; this exists for callers building higher-level tools, such
	// as cmd/bc7dump, on top of the package.
	Log LogFunc
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) log(lvl int8, msg string, args ...interface{}) {
	if o.Log == nil {
		return
	}
	o.Log(lvl, msg, args...)
}
