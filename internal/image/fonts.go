package imagepkg

import (
	"bytes"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/patrickmn/go-cache"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// BuiltinFontName identifies the embedded face used when no candidate loads.
const BuiltinFontName = "builtin:gobold"

// FontSource is one entry of a font fallback chain: a file on disk, or
// embedded font bytes when Data is set.
type FontSource struct {
	Name string
	Path string
	Data []byte
}

// FontFile is shorthand for a path candidate.
func FontFile(path string) FontSource {
	return FontSource{Name: path, Path: path}
}

func (s FontSource) key() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Path
}

// FontResolver picks the first loadable font from an ordered candidate list.
// Parsed fonts are cached and shared; faces are created per call because a
// font.Face is not safe for concurrent use.
type FontResolver struct {
	candidates []FontSource
	logger     *slog.Logger
	parsed     *cache.Cache
	warned     atomic.Bool
}

// NewFontResolver builds a resolver over candidates, tried in order.
func NewFontResolver(logger *slog.Logger, candidates ...FontSource) *FontResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &FontResolver{
		candidates: candidates,
		logger:     logger,
		parsed:     cache.New(cache.NoExpiration, 0),
	}
}

// Face returns a face at size points from the first candidate that exists
// and parses, along with the name of the source used. When every candidate
// fails the embedded Go Bold face is used and a warning is logged once.
func (fr *FontResolver) Face(size float64) (font.Face, string) {
	for _, src := range fr.candidates {
		f := fr.load(src)
		if f == nil {
			continue
		}
		face, err := newFace(f, size)
		if err != nil {
			fr.logger.Debug("font face construction failed", "font", src.key(), "error", err)
			continue
		}
		return face, src.key()
	}
	if fr.warned.CompareAndSwap(false, true) {
		fr.logger.Warn("no font candidate could be loaded, using built-in fallback",
			"candidates", len(fr.candidates), "fallback", BuiltinFontName)
	}
	if f := fr.load(FontSource{Name: BuiltinFontName, Data: gobold.TTF}); f != nil {
		if face, err := newFace(f, size); err == nil {
			return face, BuiltinFontName
		}
	}
	return basicfont.Face7x13, "basicfont"
}

// load returns the parsed font for src, or nil when it is missing or invalid.
// Failures are cached too, so a missing file is checked once per resolver.
func (fr *FontResolver) load(src FontSource) *opentype.Font {
	if v, ok := fr.parsed.Get(src.key()); ok {
		f, _ := v.(*opentype.Font)
		return f
	}
	f := fr.parse(src)
	fr.parsed.Set(src.key(), f, cache.NoExpiration)
	return f
}

func (fr *FontResolver) parse(src FontSource) *opentype.Font {
	data := src.Data
	if len(data) == 0 {
		if src.Path == "" {
			return nil
		}
		if _, err := os.Stat(src.Path); err != nil {
			fr.logger.Debug("font candidate not found", "path", src.Path)
			return nil
		}
		b, err := os.ReadFile(src.Path)
		if err != nil {
			fr.logger.Debug("font candidate unreadable", "path", src.Path, "error", err)
			return nil
		}
		data = b
	}
	f, err := parseFont(data)
	if err != nil {
		fr.logger.Debug("font candidate invalid", "font", src.key(), "error", err)
		return nil
	}
	return f
}

// parseFont accepts single fonts and collections (.ttc/.otc); for a
// collection the first face is used.
func parseFont(data []byte) (*opentype.Font, error) {
	if bytes.HasPrefix(data, []byte("ttcf")) {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		return coll.Font(0)
	}
	return opentype.Parse(data)
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
