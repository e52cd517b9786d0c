package batch

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/youruser/shotgen/internal/content"
	"github.com/youruser/shotgen/internal/device"
	imagepkg "github.com/youruser/shotgen/internal/image"
)

func testProfiles(t *testing.T) *device.Registry {
	t.Helper()
	base := device.Profile{
		ScreenshotScale: 0.5,
		BottomMargin:    20,
		TitleStartY:     40,
		TitleFontSize:   20,
		LineSpacing:     24,
		CornerRadius:    10,
		Shadow:          device.ShadowSpec{BlurRadius: 3, Opacity: 120, OffsetY: 4},
	}
	phone, tablet := base, base
	phone.Name, phone.CanvasWidth, phone.CanvasHeight = "phone", 200, 400
	tablet.Name, tablet.CanvasWidth, tablet.CanvasHeight, tablet.SourceDirPrefix = "tablet", 300, 400, "tab_"
	r, err := device.NewRegistry(phone, tablet)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func testCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	c, err := content.NewCatalog(map[string][]content.Item{
		"en": {
			{ID: "a", Title: "First\nscreen", RawFilename: "a.png", OutFilename: "01_a.png"},
			{ID: "b", Title: "Second", RawFilename: "b.png", OutFilename: "02_b.png"},
		},
		"ko": {
			{ID: "a", Title: "첫 화면", RawFilename: "a.png", OutFilename: "01_a.png"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRunner(t *testing.T, r Renderer, w imagepkg.Writer) *Runner {
	t.Helper()
	return &Runner{
		Profiles: testProfiles(t),
		Catalog:  testCatalog(t),
		Renderer: r,
		Writer:   w,
		RawDir:   t.TempDir(),
		FinalDir: t.TempDir(),
		Logger:   quietLogger(),
	}
}

func writeRaw(t *testing.T, path string) {
	t.Helper()
	if err := (imagepkg.PNGWriter{}).Write(path, imaging.New(120, 240, color.NRGBA{G: 180, A: 255})); err != nil {
		t.Fatal(err)
	}
}

func TestRunRendersAndSkips(t *testing.T) {
	runner := newTestRunner(t, imagepkg.NewCompositor(imagepkg.Options{Logger: quietLogger()}), imagepkg.PNGWriter{})
	writeRaw(t, filepath.Join(runner.RawDir, "en", "a.png"))
	writeRaw(t, filepath.Join(runner.RawDir, "tab_en", "a.png"))

	report, err := runner.Run(context.Background(), Selection{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Outcomes) != 6 {
		t.Fatalf("expected 6 outcomes, got %d", len(report.Outcomes))
	}
	if report.Count(StatusRendered) != 2 || report.Count(StatusSkipped) != 4 || report.Count(StatusFailed) != 0 {
		t.Fatalf("unexpected counts:\n%s", report.Summary())
	}

	order := []string{"en/phone/a", "en/phone/b", "en/tablet/a", "en/tablet/b", "ko/phone/a", "ko/tablet/a"}
	for i, o := range report.Outcomes {
		if got := o.Locale + "/" + o.Device + "/" + o.Screen; got != order[i] {
			t.Errorf("outcome %d = %s, want %s", i, got, order[i])
		}
	}

	for path, size := range map[string]image.Point{
		filepath.Join(runner.FinalDir, "en", "01_a.png"):     {200, 400},
		filepath.Join(runner.FinalDir, "tab_en", "01_a.png"): {300, 400},
	} {
		img, err := imagepkg.LoadSource(path)
		if err != nil {
			t.Fatalf("load %s: %v", path, err)
		}
		if got := img.Bounds().Size(); got != size {
			t.Errorf("%s is %v, want %v", path, got, size)
		}
	}
	if _, err := os.Stat(filepath.Join(runner.FinalDir, "en", "02_b.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("skipped screen produced output: %v", err)
	}
	if !strings.Contains(report.Summary(), "2 rendered, 4 skipped, 0 failed") {
		t.Errorf("summary:\n%s", report.Summary())
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	runner := newTestRunner(t, imagepkg.NewCompositor(imagepkg.Options{Logger: quietLogger()}), imagepkg.PNGWriter{})
	writeRaw(t, filepath.Join(runner.RawDir, "en", "a.png"))
	writeRaw(t, filepath.Join(runner.RawDir, "ko", "a.png"))

	seq, err := runner.Run(context.Background(), Selection{})
	if err != nil {
		t.Fatal(err)
	}
	runner.Jobs = 3
	par, err := runner.Run(context.Background(), Selection{})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(seq.Outcomes, par.Outcomes) {
		t.Fatalf("parallel outcomes differ:\n%s\n---\n%s", seq.Summary(), par.Summary())
	}
}

func TestPlanSelection(t *testing.T) {
	runner := newTestRunner(t, nil, nil)

	tasks, err := runner.Plan(Selection{Locale: "en", Device: "tablet", Screen: "b"})
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	task := tasks[0]
	if want := filepath.Join(runner.RawDir, "tab_en", "b.png"); task.RawPath != want {
		t.Errorf("raw path = %s, want %s", task.RawPath, want)
	}
	if want := filepath.Join(runner.FinalDir, "tab_en", "02_b.png"); task.OutPath != want {
		t.Errorf("out path = %s, want %s", task.OutPath, want)
	}

	tasks, err = runner.Plan(Selection{Screen: "missing"})
	if err != nil || len(tasks) != 0 {
		t.Fatalf("unmatched screen filter: tasks=%d err=%v", len(tasks), err)
	}
}

func TestRunUnknownSelection(t *testing.T) {
	runner := newTestRunner(t, nil, nil)
	if _, err := runner.Run(context.Background(), Selection{Locale: "fr"}); !errors.Is(err, content.ErrUnknownLocale) {
		t.Errorf("expected ErrUnknownLocale, got %v", err)
	}
	if _, err := runner.Run(context.Background(), Selection{Device: "watch"}); !errors.Is(err, device.ErrUnknownProfile) {
		t.Errorf("expected ErrUnknownProfile, got %v", err)
	}
}

type stubRenderer struct {
	fail map[string]error
	size image.Point
}

func (s stubRenderer) Render(_ context.Context, p device.Profile, item content.Item, _ string) (*image.RGBA, error) {
	if err := s.fail[item.ID]; err != nil {
		return nil, err
	}
	size := s.size
	if size == (image.Point{}) {
		size = image.Pt(p.CanvasWidth, p.CanvasHeight)
	}
	return image.NewRGBA(image.Rectangle{Max: size}), nil
}

type recordingWriter struct {
	err   error
	paths []string
}

func (w *recordingWriter) Write(path string, _ image.Image) error {
	if w.err != nil {
		return w.err
	}
	w.paths = append(w.paths, path)
	return nil
}

func TestRunRecordsFailures(t *testing.T) {
	w := &recordingWriter{}
	runner := newTestRunner(t, stubRenderer{fail: map[string]error{"b": errors.New("boom")}}, w)

	report, err := runner.Run(context.Background(), Selection{Locale: "en", Device: "phone"})
	if err != nil {
		t.Fatal(err)
	}
	if report.Count(StatusRendered) != 1 || report.Count(StatusFailed) != 1 {
		t.Fatalf("unexpected counts:\n%s", report.Summary())
	}
	if got := report.Outcomes[1]; got.Screen != "b" || got.Reason != "boom" {
		t.Errorf("failure outcome = %+v", got)
	}
	if len(w.paths) != 1 {
		t.Errorf("expected one write, got %v", w.paths)
	}
}

func TestRunRejectsWrongSize(t *testing.T) {
	w := &recordingWriter{}
	runner := newTestRunner(t, stubRenderer{size: image.Pt(10, 10)}, w)
	report, err := runner.Run(context.Background(), Selection{Locale: "ko"})
	if err != nil {
		t.Fatal(err)
	}
	if report.Count(StatusFailed) != 2 || len(w.paths) != 0 {
		t.Fatalf("wrong-size renders should fail without writing:\n%s", report.Summary())
	}
}

func TestRunWriteError(t *testing.T) {
	runner := newTestRunner(t, stubRenderer{}, &recordingWriter{err: errors.New("disk full")})
	report, err := runner.Run(context.Background(), Selection{Locale: "ko", Device: "phone"})
	if err != nil {
		t.Fatal(err)
	}
	if o := report.Outcomes[0]; o.Status != StatusFailed || o.Reason != "disk full" {
		t.Fatalf("outcome = %+v", o)
	}
}

func TestRunCancelled(t *testing.T) {
	runner := newTestRunner(t, stubRenderer{}, &recordingWriter{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runner.Run(ctx, Selection{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
