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

// Package shaper lays out single lines of text and converts them into
// glyph outlines.
//
// Shaping uses the HarfBuzz port from github.com/go-text/typesetting, so
// kerning and ligatures are applied. The Go font family is registered by
// default.
package shaper

import (
	"bytes"
	"sort"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
)

// DefaultFont is the name of the font used when no other font is chosen.
const DefaultFont = "Go-Regular"

var (
	// ErrUnknownFont is returned by Shape for font names which have not
	// been registered.
	ErrUnknownFont = errors.New("unknown font")

	// ErrNoOutline is returned by Shape if a glyph is only available as a
	// bitmap or SVG image.
	ErrNoOutline = errors.New("glyph has no outline")
)

// Shaper maps font names to fonts and shapes text.
//
// A Shaper is safe for concurrent use. Fonts are parsed on first use and
// the parsed fonts are cached.
type Shaper struct {
	mu      sync.RWMutex
	sources map[string][]byte
	fonts   map[string]*font.Font

	// HarfbuzzShaper keeps internal buffers and is not safe for
	// concurrent use.
	pool sync.Pool
}

// New returns a Shaper with the Go fonts registered.
func New() *Shaper {
	s := &Shaper{
		sources: make(map[string][]byte),
		fonts:   make(map[string]*font.Font),
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
	for name, ttf := range map[string][]byte{
		"Go-Regular":     goregular.TTF,
		"Go-Bold":        gobold.TTF,
		"Go-Italic":      goitalic.TTF,
		"Go-Bold-Italic": gobolditalic.TTF,
		"Go-Medium":      gomedium.TTF,
		"Go-Mono":        gomono.TTF,
		"Go-Mono-Bold":   gomonobold.TTF,
		"Go-Smallcaps":   gosmallcaps.TTF,
	} {
		s.sources[name] = ttf
	}
	return s
}

// Register makes a TrueType or OpenType font available under the given
// name. An existing font of the same name is replaced.
func (s *Shaper) Register(name string, ttf []byte) error {
	if name == "" {
		return errors.New("empty font name")
	}
	if len(ttf) == 0 {
		return errors.Errorf("font %q: no data", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources[name] = ttf
	delete(s.fonts, name)
	return nil
}

// Has reports whether a font of the given name is registered.
func (s *Shaper) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sources[name]
	return ok
}

// Names returns the registered font names in sorted order.
func (s *Shaper) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.sources))
	for name := range s.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Shape lays out text as a single left-to-right line, using the named font
// at the given size. The size is the em size in output units.
func (s *Shaper) Shape(text, fontName string, size float64) (*Line, error) {
	f, err := s.font(fontName)
	if err != nil {
		return nil, err
	}
	face := font.NewFace(f)

	runes := []rune(text)
	line := &Line{outline: &path.Data{}}
	if len(runes) == 0 {
		return line, nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	scale := size / float64(face.Upem())
	var x float64
	for _, g := range out.Glyphs {
		data := face.GlyphData(g.GlyphID)
		if data != nil {
			glyph, ok := data.(font.GlyphOutline)
			if !ok {
				return nil, errors.Wrapf(ErrNoOutline, "font %q, glyph %d", fontName, g.GlyphID)
			}
			ox := x + fromFixed(g.XOffset)
			oy := fromFixed(g.YOffset)
			line.addGlyph(glyph.Segments, ox, oy, scale)
		}
		x += fromFixed(g.Advance)
	}
	line.width = fromFixed(out.Advance)
	return line, nil
}

// font returns the parsed font for name, parsing it if needed.
func (s *Shaper) font(name string) (*font.Font, error) {
	s.mu.RLock()
	f, ok := s.fonts[name]
	s.mu.RUnlock()
	if ok {
		return f, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fonts[name]; ok {
		return f, nil
	}
	data, ok := s.sources[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFont, "%q", name)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "font %q", name)
	}
	s.fonts[name] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
