package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/youruser/shotgen/internal/batch"
	"github.com/youruser/shotgen/internal/config"
	"github.com/youruser/shotgen/internal/content"
	"github.com/youruser/shotgen/internal/device"
	imagepkg "github.com/youruser/shotgen/internal/image"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(config.Load()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "shotgen",
		Short:         "Render App Store marketing screenshots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&cfg.RawDir, "raw-dir", cfg.RawDir, "directory holding raw captures (<locale>/ and ipad_<locale>/)")
	flags.StringVar(&cfg.FinalDir, "final-dir", cfg.FinalDir, "directory receiving rendered screenshots")
	flags.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "CSV catalog replacing the built-in screens")
	flags.StringSliceVar(&cfg.Fonts, "font", cfg.Fonts, "font candidates in fallback order")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	root.AddCommand(newRenderCmd(cfg), newProfilesCmd(), newServeCmd(cfg))
	return root
}

// app bundles the collaborators shared by the render and serve commands.
type app struct {
	profiles *device.Registry
	catalog  *content.Catalog
	runner   *batch.Runner
}

func newApp(cfg *config.Config) (*app, error) {
	profiles := device.Builtin()
	catalog := content.Builtin()
	if cfg.CatalogPath != "" {
		c, err := content.LoadCSV(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		catalog = c
	}

	logger := slog.Default()
	sources := make([]imagepkg.FontSource, 0, len(cfg.Fonts))
	for _, path := range cfg.Fonts {
		sources = append(sources, imagepkg.FontFile(path))
	}
	compositor := imagepkg.NewCompositor(imagepkg.Options{
		Fonts:  imagepkg.NewFontResolver(logger, sources...),
		Logger: logger,
	})

	return &app{
		profiles: profiles,
		catalog:  catalog,
		runner: &batch.Runner{
			Profiles: profiles,
			Catalog:  catalog,
			Renderer: compositor,
			Writer:   imagepkg.PNGWriter{},
			RawDir:   cfg.RawDir,
			FinalDir: cfg.FinalDir,
			Jobs:     cfg.Jobs,
			Logger:   logger,
		},
	}, nil
}
