package device

import (
	"errors"
	"fmt"
)

// ErrUnknownProfile is returned when a profile name is not registered.
var ErrUnknownProfile = errors.New("unknown device profile")

// Registry is an immutable, ordered set of device profiles.
type Registry struct {
	order    []string
	profiles map[string]Profile
}

// NewRegistry validates profiles and indexes them by name, keeping the given order.
func NewRegistry(profiles ...Profile) (*Registry, error) {
	r := &Registry{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.profiles[p.Name]; dup {
			return nil, fmt.Errorf("device profile %s registered twice", p.Name)
		}
		r.profiles[p.Name] = p
		r.order = append(r.order, p.Name)
	}
	return r, nil
}

// Lookup returns the named profile.
func (r *Registry) Lookup(name string) (Profile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// Names lists registered profile names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Profiles returns every profile in registration order.
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.profiles[name])
	}
	return out
}

// Select resolves a profile filter. An empty name selects every profile.
func (r *Registry) Select(name string) ([]Profile, error) {
	if name == "" {
		return r.Profiles(), nil
	}
	p, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []Profile{p}, nil
}

// Builtin returns the App Store phone and tablet slots.
func Builtin() *Registry {
	r, err := NewRegistry(
		Profile{
			Name:             "iphone", // 6.5"/6.7" slot
			CanvasWidth:      1284,
			CanvasHeight:     2778,
			ScreenshotScale:  0.95,
			BottomMargin:     90,
			TitleStartY:      190,
			TitleFontSize:    120,
			LineSpacing:      138,
			SubtitleFontSize: 48,
			SubtitleGap:      40,
			CornerRadius:     80,
			ContentCrop:      Crop{Top: 0.06, Bottom: 0.08},
			Shadow:           ShadowSpec{BlurRadius: 18, Opacity: 120, OffsetY: 16},
		},
		Profile{
			Name:             "ipad", // 12.9" slot
			CanvasWidth:      2048,
			CanvasHeight:     2732,
			ScreenshotScale:  0.82,
			BottomMargin:     110,
			TitleStartY:      210,
			TitleFontSize:    140,
			LineSpacing:      165,
			SubtitleFontSize: 56,
			SubtitleGap:      30,
			CornerRadius:     60,
			ContentCrop:      Crop{Top: 0.04, Bottom: 0.06},
			Shadow:           ShadowSpec{BlurRadius: 14, Opacity: 120, OffsetY: 16},
			SourceDirPrefix:  "ipad_",
		},
	)
	if err != nil {
		panic(err)
	}
	return r
}
