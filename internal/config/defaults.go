package config

import (
	"time"

	"github.com/pnaconstructions/pnasite/internal/mailrelay"
)

// DefaultAssetPatterns are the files copied by `pnasite export`.
var DefaultAssetPatterns = []string{
	"**/*.{png,PNG,jpg,JPG,jpeg,JPEG,webp,svg,ico}",
}

// DefaultExcludes are glob patterns never copied by `pnasite export`.
var DefaultExcludes = []string{
	".git/**",
	"**/.DS_Store",
	"**/Thumbs.db",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      8080,
			AssetsDir: "public",
		},
		Mail: MailConfig{
			Endpoint:       mailrelay.DefaultEndpoint,
			TimeoutSeconds: 10,
		},
		Carousel: CarouselConfig{
			IntervalMS: 4000,
		},
		Reveal: RevealConfig{
			Threshold:        0.1,
			RootMarginBottom: -50,
		},
		Export: ExportConfig{
			OutputDir: "dist",
			Include:   DefaultAssetPatterns,
			Exclude:   DefaultExcludes,
		},
	}
}

// Interval returns the carousel auto-advance period.
func (c CarouselConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Timeout returns the relay request timeout.
func (m MailConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// Credentials returns the relay identifiers.
func (m MailConfig) Credentials() mailrelay.Credentials {
	return mailrelay.Credentials{
		ServiceID:  m.ServiceID,
		TemplateID: m.TemplateID,
		PublicKey:  m.PublicKey,
	}
}
