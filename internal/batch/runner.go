package batch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/youruser/shotgen/internal/content"
	"github.com/youruser/shotgen/internal/device"
	imagepkg "github.com/youruser/shotgen/internal/image"
	"golang.org/x/sync/errgroup"
)

// Renderer composes one screen from the raw capture at rawPath.
type Renderer interface {
	Render(ctx context.Context, p device.Profile, item content.Item, rawPath string) (*image.RGBA, error)
}

// Selection narrows a run. Empty fields select everything.
type Selection struct {
	Locale string `json:"lang"`
	Device string `json:"device"`
	Screen string `json:"screen"`
}

// Task is one (locale, profile, screen) render with its resolved paths.
type Task struct {
	Locale  string
	Profile device.Profile
	Item    content.Item
	RawPath string
	OutPath string
}

// Runner renders the cross product of locales, device profiles and screens.
type Runner struct {
	Profiles *device.Registry
	Catalog  *content.Catalog
	Renderer Renderer
	Writer   imagepkg.Writer
	RawDir   string
	FinalDir string
	Jobs     int // <=1 renders sequentially
	Logger   *slog.Logger
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// Plan expands sel into tasks, locale-major then profile then screen order.
// An unknown locale or profile name is a configuration error and fails the
// whole invocation.
func (r *Runner) Plan(sel Selection) ([]Task, error) {
	locales, err := r.Catalog.Select(sel.Locale)
	if err != nil {
		return nil, err
	}
	profiles, err := r.Profiles.Select(sel.Device)
	if err != nil {
		return nil, err
	}
	var tasks []Task
	for _, locale := range locales {
		items, err := r.Catalog.Items(locale)
		if err != nil {
			return nil, err
		}
		items = content.Filter(items, sel.Screen)
		for _, p := range profiles {
			dir := p.Dir(locale)
			for _, it := range items {
				tasks = append(tasks, Task{
					Locale:  locale,
					Profile: p,
					Item:    it,
					RawPath: filepath.Join(r.RawDir, dir, it.RawFilename),
					OutPath: filepath.Join(r.FinalDir, dir, it.OutFilename),
				})
			}
		}
	}
	if len(tasks) == 0 && sel.Screen != "" {
		r.logger().Warn("no screen matches the filter", "screen", sel.Screen)
	}
	return tasks, nil
}

// Run renders every selected screen. Per-screen problems are recorded in the
// report and never stop the batch; the returned error is reserved for an
// invalid selection or cancellation.
func (r *Runner) Run(ctx context.Context, sel Selection) (*Report, error) {
	tasks, err := r.Plan(sel)
	if err != nil {
		return nil, err
	}
	outcomes := make([]Outcome, len(tasks))

	if r.Jobs <= 1 {
		for i, t := range tasks {
			if err := ctx.Err(); err != nil {
				return &Report{Outcomes: outcomes[:i]}, err
			}
			outcomes[i] = r.runTask(ctx, t)
		}
		return &Report{Outcomes: outcomes}, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.Jobs)
	for i, t := range tasks {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.runTask(egCtx, t)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &Report{Outcomes: outcomes}, nil
}

func (r *Runner) runTask(ctx context.Context, t Task) Outcome {
	o := Outcome{Locale: t.Locale, Device: t.Profile.Name, Screen: t.Item.ID}
	log := r.logger().With("locale", t.Locale, "device", t.Profile.Name, "screen", t.Item.ID)

	img, err := r.Renderer.Render(ctx, t.Profile, t.Item, t.RawPath)
	switch {
	case errors.Is(err, imagepkg.ErrSourceMissing):
		log.Warn("raw source not found, skipping", "path", t.RawPath)
		o.Status, o.Reason = StatusSkipped, err.Error()
		return o
	case err != nil:
		log.Error("render failed", "error", err)
		o.Status, o.Reason = StatusFailed, err.Error()
		return o
	}

	if b := img.Bounds(); b.Dx() != t.Profile.CanvasWidth || b.Dy() != t.Profile.CanvasHeight {
		err := fmt.Errorf("rendered %dx%d, profile requires %dx%d", b.Dx(), b.Dy(), t.Profile.CanvasWidth, t.Profile.CanvasHeight)
		log.Error("render has wrong size", "error", err)
		o.Status, o.Reason = StatusFailed, err.Error()
		return o
	}
	if err := r.Writer.Write(t.OutPath, img); err != nil {
		log.Error("write failed", "path", t.OutPath, "error", err)
		o.Status, o.Reason = StatusFailed, err.Error()
		return o
	}
	log.Info("saved", "path", t.OutPath)
	o.Status, o.Output = StatusRendered, t.OutPath
	return o
}
