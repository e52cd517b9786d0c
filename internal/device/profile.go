package device

import (
	"fmt"
	"math"
)

// Crop is a fractional border removed from a raw capture before scaling.
// Each side is a ratio of the current width or height.
type Crop struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// IsZero reports whether the crop removes nothing.
func (c Crop) IsZero() bool {
	return c == Crop{}
}

func (c Crop) validate() error {
	for _, side := range []struct {
		name string
		v    float64
	}{{"top", c.Top}, {"bottom", c.Bottom}, {"left", c.Left}, {"right", c.Right}} {
		if side.v < 0 || side.v >= 1 {
			return fmt.Errorf("content crop %s %.3f outside [0,1)", side.name, side.v)
		}
	}
	if c.Top+c.Bottom >= 1 {
		return fmt.Errorf("content crop top+bottom %.3f leaves no rows", c.Top+c.Bottom)
	}
	if c.Left+c.Right >= 1 {
		return fmt.Errorf("content crop left+right %.3f leaves no columns", c.Left+c.Right)
	}
	return nil
}

// ShadowSpec describes the drop shadow painted behind a screenshot.
// A zero BlurRadius disables the shadow.
type ShadowSpec struct {
	BlurRadius int   `json:"blur_radius"`
	Opacity    uint8 `json:"opacity"`
	OffsetX    int   `json:"offset_x"`
	OffsetY    int   `json:"offset_y"`
}

// Enabled reports whether a shadow should be rendered.
func (s ShadowSpec) Enabled() bool {
	return s.BlurRadius > 0
}

// Profile is the geometry and typography of one store screenshot slot.
// CanvasWidth and CanvasHeight are the exact pixel size the store accepts.
type Profile struct {
	Name             string     `json:"name"`
	CanvasWidth      int        `json:"canvas_width"`
	CanvasHeight     int        `json:"canvas_height"`
	ScreenshotScale  float64    `json:"screenshot_scale"`
	BottomMargin     int        `json:"bottom_margin"`
	TitleStartY      int        `json:"title_start_y"`
	TitleFontSize    int        `json:"title_font_size"`
	LineSpacing      int        `json:"line_spacing"`
	SubtitleFontSize int        `json:"subtitle_font_size"`
	SubtitleGap      int        `json:"subtitle_gap"`
	CornerRadius     int        `json:"corner_radius"`
	ContentCrop      Crop       `json:"content_crop"`
	Shadow           ShadowSpec `json:"shadow"`

	// MaxHeightRatio caps the scaled screenshot height at this fraction of
	// the canvas height. Zero leaves the height uncapped.
	MaxHeightRatio float64 `json:"max_height_ratio"`

	// SourceDirPrefix is prepended to the locale to name the raw and final
	// subdirectories, e.g. "ipad_" gives "ipad_en".
	SourceDirPrefix string `json:"source_dir_prefix"`
}

// TargetWidth is the width the screenshot is scaled to.
func (p Profile) TargetWidth() int {
	return int(math.Round(float64(p.CanvasWidth) * p.ScreenshotScale))
}

// MaxScreenshotHeight returns the height cap in pixels, or 0 when uncapped.
func (p Profile) MaxScreenshotHeight() int {
	if p.MaxHeightRatio <= 0 {
		return 0
	}
	return int(float64(p.CanvasHeight) * p.MaxHeightRatio)
}

// Dir returns the per-locale subdirectory used for raw and final assets.
func (p Profile) Dir(locale string) string {
	return p.SourceDirPrefix + locale
}

// Validate checks the profile's numeric invariants.
func (p Profile) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("device profile: empty name")
	case p.CanvasWidth <= 0 || p.CanvasHeight <= 0:
		return fmt.Errorf("device profile %s: canvas %dx%d must be positive", p.Name, p.CanvasWidth, p.CanvasHeight)
	case p.ScreenshotScale <= 0 || p.ScreenshotScale > 1:
		return fmt.Errorf("device profile %s: screenshot scale %.3f outside (0,1]", p.Name, p.ScreenshotScale)
	case p.BottomMargin < 0 || p.TitleStartY < 0 || p.CornerRadius < 0 || p.SubtitleGap < 0:
		return fmt.Errorf("device profile %s: margins and radius must not be negative", p.Name)
	case p.TitleFontSize <= 0 || p.LineSpacing <= 0:
		return fmt.Errorf("device profile %s: title font size and line spacing must be positive", p.Name)
	case p.SubtitleFontSize < 0:
		return fmt.Errorf("device profile %s: subtitle font size must not be negative", p.Name)
	case p.Shadow.BlurRadius < 0:
		return fmt.Errorf("device profile %s: shadow blur must not be negative", p.Name)
	case p.MaxHeightRatio < 0 || p.MaxHeightRatio > 1:
		return fmt.Errorf("device profile %s: max height ratio %.3f outside [0,1]", p.Name, p.MaxHeightRatio)
	}
	if err := p.ContentCrop.validate(); err != nil {
		return fmt.Errorf("device profile %s: %w", p.Name, err)
	}
	return nil
}
