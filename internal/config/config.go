package config

import (
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shouni/go-utils/envutil"
)

const (
	DefaultRawDir   = "assets/raw"
	DefaultFinalDir = "assets/final"
	DefaultAddr     = ":8080"
	DefaultLogLevel = "info"
	DefaultJobs     = 1
)

// DefaultFontPaths is the title font chain: the bundled brand font first,
// then system fonts with Hangul coverage.
var DefaultFontPaths = []string{
	"assets/fonts/Pretendard-Bold.otf",
	"/System/Library/Fonts/AppleSDGothicNeo.ttc",
	"/System/Library/Fonts/Supplemental/AppleGothic.ttf",
	"/Library/Fonts/NanumGothic.ttf",
	"/usr/share/fonts/truetype/nanum/NanumGothicBold.ttf",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Bold.ttc",
	"/System/Library/Fonts/Helvetica.ttc",
}

// Config is the run configuration. Load fills it from the environment and
// CLI flags override individual fields.
type Config struct {
	RawDir      string
	FinalDir    string
	CatalogPath string // empty uses the built-in catalog
	Fonts       []string
	Addr        string
	LogLevel    string
	Jobs        int
}

// Load reads SHOTGEN_* environment variables, falling back to defaults.
func Load() *Config {
	cfg := &Config{
		RawDir:      envutil.GetEnv("SHOTGEN_RAW_DIR", DefaultRawDir),
		FinalDir:    envutil.GetEnv("SHOTGEN_FINAL_DIR", DefaultFinalDir),
		CatalogPath: envutil.GetEnv("SHOTGEN_CATALOG", ""),
		Addr:        envutil.GetEnv("SHOTGEN_ADDR", DefaultAddr),
		LogLevel:    envutil.GetEnv("SHOTGEN_LOG_LEVEL", DefaultLogLevel),
		Jobs:        DefaultJobs,
		Fonts:       append([]string(nil), DefaultFontPaths...),
	}
	if fonts := envutil.GetEnv("SHOTGEN_FONTS", ""); fonts != "" {
		cfg.Fonts = filepath.SplitList(fonts)
	}
	if jobs, err := strconv.Atoi(envutil.GetEnv("SHOTGEN_JOBS", "")); err == nil && jobs > 0 {
		cfg.Jobs = jobs
	}
	return cfg
}

// SlogLevel maps LogLevel to a slog level; unknown names mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
