// seehuhn.de/go/stddraw - a 2D drawing canvas
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Command stddraw renders the built-in scenes to image files.
//
// Usage:
//
//	stddraw [-out dir] [-format png|tiff|bmp] [-scale n] [-downsample] [-scene name] [-v]
//
// Each scene is written to <dir>/<category>_<name>.<format>. The -scene
// flag selects either a whole category or a single scene.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/stddraw"
	"seehuhn.de/go/stddraw/scenes"
)

var encoders = map[string]func(io.Writer, image.Image) error{
	"png":  png.Encode,
	"tiff": encodeTIFF,
	"bmp":  bmp.Encode,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func main() {
	outDir := flag.String("out", ".", "output directory")
	format := flag.String("format", "png", "image format (png, tiff or bmp)")
	scale := flag.Int("scale", stddraw.DefaultDeviceScale, "device pixels per logical pixel")
	downsample := flag.Bool("downsample", false, "resample the output to the logical size")
	only := flag.String("scene", "", "render only this category or scene")
	verbose := flag.Bool("v", false, "log drawing details to stderr")
	flag.Parse()

	if *verbose {
		stddraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	err := run(*outDir, *format, *scale, *downsample, *only)
	if err != nil {
		fmt.Fprintln(os.Stderr, "stddraw:", err)
		os.Exit(1)
	}
}

func run(outDir, format string, scale int, downsample bool, only string) error {
	encode, ok := encoders[format]
	if !ok {
		return errors.Errorf("unknown format %q", format)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	count := 0
	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, s := range scenes.All[category] {
			name := category + "_" + s.Name
			if only != "" && only != category && only != name {
				continue
			}
			fname := filepath.Join(outDir, name+"."+format)
			if err := render(s, fname, encode, scale, downsample); err != nil {
				return errors.Wrap(err, name)
			}
			slog.Info("wrote scene", "file", fname)
			count++
		}
	}
	if count == 0 {
		return errors.Errorf("no scene matches %q (have %s)", only,
			strings.Join(slices.Sorted(maps.Keys(scenes.All)), ", "))
	}
	return nil
}

func render(s scenes.Scene, fname string, encode func(io.Writer, image.Image) error, scale int, downsample bool) (err error) {
	c, err := s.Render(stddraw.WithDeviceScale(scale))
	if err != nil {
		return err
	}
	defer c.Close()

	var img *image.RGBA
	if downsample {
		img, err = c.ResultDownsampled()
	} else {
		img, err = c.Result()
	}
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, img)
}
