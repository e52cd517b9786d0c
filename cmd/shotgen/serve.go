package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/youruser/shotgen/internal/api"
	"github.com/youruser/shotgen/internal/config"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the profile/catalog listing and batch render API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}

			r := gin.Default()
			api.RegisterRoutes(r, &api.Server{Profiles: a.profiles, Catalog: a.catalog, Runner: a.runner})

			srv := &http.Server{Addr: cfg.Addr, Handler: r}
			go func() {
				<-cmd.Context().Done()
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()

			slog.Info("starting server", "addr", cfg.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "screens rendered in parallel per request")
	return cmd
}
