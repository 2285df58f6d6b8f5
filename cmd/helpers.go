package cmd

import (
	"fmt"

	"github.com/pnaconstructions/pnasite/internal/clock"
	"github.com/pnaconstructions/pnasite/internal/config"
	"github.com/pnaconstructions/pnasite/internal/content"
	"github.com/pnaconstructions/pnasite/internal/mailrelay"
	"github.com/pnaconstructions/pnasite/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `pnasite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newRenderer loads the site content and parses the page templates.
func newRenderer(cfg *config.Config) (*site.Renderer, error) {
	c, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	r, err := site.NewRenderer(c, cfg.Carousel.Interval(), clock.Real())
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	return r, nil
}

// newRelay creates the EmailJS client from the mail settings.
func newRelay(cfg *config.Config) *mailrelay.Client {
	return mailrelay.NewClient(cfg.Mail.Endpoint, cfg.Mail.Credentials(), cfg.Mail.Timeout())
}
