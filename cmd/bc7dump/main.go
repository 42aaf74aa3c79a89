/*
DESCRIPTION
  bc7dump decodes a raw BC7-compressed texture file into a TGA image, for
  visually inspecting decoder output. It can also watch a directory and
  decode each new .bc7 file as it appears.

AUTHORS
  AusOcean Texture Team <texture@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements bc7dump, a command line tool that decodes raw BC7
// block streams to TGA images.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/bc7"
	"github.com/ausocean/bc7/internal/tga"
	"github.com/ausocean/utils/logging"
)

// Logging configuration, following the AusOcean capture-tooling convention
// of a rotated log file plus console output.
const (
	logPath      = "bc7dump.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = false
)

const pkg = "bc7dump: "

func main() {
	inPath := flag.String("in", "", "path to a raw BC7 block stream")
	outPath := flag.String("out", "", "output TGA path (defaults to the input path with a .tga extension)")
	width := flag.Int("width", 0, "image width in pixels")
	height := flag.Int("height", 0, "image height in pixels")
	workers := flag.Int("workers", 0, "number of block-decode workers (0 = runtime.NumCPU())")
	watchDir := flag.String("watch", "", "watch this directory and decode each new .bc7 file as it appears")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	opts := bc7.Options{Workers: *workers, Log: bridgeLog(log)}

	if *watchDir != "" {
		if err := watch(*watchDir, opts, log); err != nil {
			log.Fatal(pkg+"watch failed", "error", err.Error())
		}
		return
	}

	if *inPath == "" || *width == 0 || *height == 0 {
		fmt.Fprintln(os.Stderr, "usage: bc7dump -in FILE -width W -height H [-out FILE] [-workers N]")
		fmt.Fprintln(os.Stderr, "   or: bc7dump -watch DIR -width W -height H")
		os.Exit(2)
	}

	out := *outPath
	if out == "" {
		out = strings.TrimSuffix(*inPath, filepath.Ext(*inPath)) + ".tga"
	}

	if err := decodeFile(*inPath, out, *width, *height, opts); err != nil {
		log.Fatal(pkg+"decode failed", "error", err.Error())
	}
	log.Info("decoded", "in", *inPath, "out", out)
}

// bridgeLog adapts an ausocean/utils/logging.Logger to bc7's LogFunc so the
// package's internal diagnostics flow through the same sinks as the rest of
// this tool's logging.
func bridgeLog(l logging.Logger) bc7.LogFunc {
	return func(lvl int8, msg string, args ...interface{}) {
		switch lvl {
		case bc7.LogDebug:
			l.Debug(msg, args...)
		case bc7.LogWarning:
			l.Warning(msg, args...)
		case bc7.LogError:
			l.Error(msg, args...)
		default:
			l.Info(msg, args...)
		}
	}
}

func decodeFile(inPath, outPath string, width, height int, opts bc7.Options) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", inPath)
	}

	img, err := bc7.DecodeImage(data, width, height, opts)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", inPath)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outPath)
	}
	defer f.Close()

	pixels := make([]tga.Pixel, len(img.Pixels))
	for i, px := range img.Pixels {
		pixels[i] = tga.Pixel{R: px.R, G: px.G, B: px.B, A: px.A}
	}

	if err := tga.Write(f, img.Width, img.Height, pixels); err != nil {
		return errors.Wrapf(err, "writing %s", outPath)
	}
	return nil
}

// watch decodes every .bc7 file already in dir, then decodes each new one
// that shows up, until the process is interrupted.
func watch(dir string, opts bc7.Options, log logging.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "reading %s", dir)
	}
	width, height := flagInt("width"), flagInt("height")

	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".bc7" {
			continue
		}
		processWatched(filepath.Join(dir, e.Name()), width, height, opts, log)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating fsnotify watcher")
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return errors.Wrapf(err, "watching %s", dir)
	}

	log.Info(pkg+"watching for .bc7 files", "dir", dir)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 || filepath.Ext(ev.Name) != ".bc7" {
				continue
			}
			processWatched(ev.Name, width, height, opts, log)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error(pkg+"watcher error", "error", err.Error())
		}
	}
}

func processWatched(path string, width, height int, opts bc7.Options, log logging.Logger) {
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".tga"
	if err := decodeFile(path, out, width, height, opts); err != nil {
		log.Error(pkg+"decode failed", "path", path, "error", err.Error())
		return
	}
	log.Info(pkg+"decoded", "in", path, "out", out)
}

func flagInt(name string) int {
	f := flag.Lookup(name)
	if f == nil {
		return 0
	}
	v, ok := f.Value.(flag.Getter).Get().(int)
	if !ok {
		return 0
	}
	return v
}
