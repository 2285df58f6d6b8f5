package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pnaconstructions/pnasite/internal/clock"
	"github.com/pnaconstructions/pnasite/internal/reveal"
	"github.com/pnaconstructions/pnasite/internal/server"
	"github.com/pnaconstructions/pnasite/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website server",
	Long:  `Serves the site pages, the contact API and the page-session WebSocket until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		renderer, err := newRenderer(cfg)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAll,
		})

		s := site.New(renderer, newRelay(cfg), site.Options{
			Interval:        cfg.Carousel.Interval(),
			ResetOnNavigate: cfg.Carousel.ResetOnNavigate,
			Reveal: reveal.Options{
				Threshold:        cfg.Reveal.Threshold,
				RootMarginBottom: cfg.Reveal.RootMarginBottom,
			},
			Clock:     clock.Real(),
			AssetsDir: cfg.Server.AssetsDir,
			Verbose:   verbose,
		})
		s.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
			s.Close()
		}()

		fmt.Fprintf(os.Stderr, "pnasite %s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Assets: %s\n", cfg.Server.AssetsDir)
		if !cfg.MailConfigured() {
			fmt.Fprintln(os.Stderr, "  Warning: EmailJS ids are not set, contact submissions will fail")
		}

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
