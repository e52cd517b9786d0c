package imagepkg

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestFontResolverFallsBackToBuiltin(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	fr := NewFontResolver(logger, FontFile(filepath.Join(t.TempDir(), "missing.ttf")))

	for i := 0; i < 2; i++ {
		face, name := fr.Face(40)
		if name != BuiltinFontName {
			t.Fatalf("font = %q, want %q", name, BuiltinFontName)
		}
		if face.Metrics().Height <= 0 {
			t.Fatal("face has no height")
		}
		face.Close()
	}
	if n := strings.Count(buf.String(), "no font candidate"); n != 1 {
		t.Fatalf("fallback warning logged %d times, want 1:\n%s", n, buf.String())
	}
}

func TestFontResolverOrder(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.ttf")
	if err := os.WriteFile(broken, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	good := filepath.Join(dir, "regular.ttf")
	if err := os.WriteFile(good, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	fr := NewFontResolver(nil,
		FontFile(filepath.Join(dir, "missing.ttf")),
		FontFile(broken),
		FontFile(good),
		FontSource{Name: "embedded", Data: goregular.TTF},
	)
	face, name := fr.Face(24)
	defer face.Close()
	if name != good {
		t.Fatalf("font = %q, want %q", name, good)
	}
}

func TestFontResolverEmbeddedData(t *testing.T) {
	fr := NewFontResolver(nil, FontSource{Name: "goregular", Data: goregular.TTF})
	small, _ := fr.Face(12)
	large, name := fr.Face(96)
	defer small.Close()
	defer large.Close()
	if name != "goregular" {
		t.Fatalf("font = %q", name)
	}
	if large.Metrics().Ascent <= small.Metrics().Ascent {
		t.Fatal("larger size should have a larger ascent")
	}
}
