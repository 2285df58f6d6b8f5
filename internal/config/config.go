package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. PNASITE_SERVER_PORT.
const EnvPrefix = "PNASITE_"

// sections are the top-level keys an env var can address.
var sections = []string{"server", "mail", "carousel", "reveal", "export"}

// legacyMailEnv maps the variable names used by the original deployment
// to mail settings. They apply only when the setting is still empty.
var legacyMailEnv = map[string]func(*MailConfig) *string{
	"EMAILJS_SERVICE_ID":  func(m *MailConfig) *string { return &m.ServiceID },
	"EMAILJS_TEMPLATE_ID": func(m *MailConfig) *string { return &m.TemplateID },
	"EMAILJS_PUBLIC_KEY":  func(m *MailConfig) *string { return &m.PublicKey },
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PNASITE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: PNASITE_MAIL_SERVICE_ID -> mail.service_id, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	for name, field := range legacyMailEnv {
		if v := os.Getenv(name); v != "" && *field(&cfg.Mail) == "" {
			*field(&cfg.Mail) = v
		}
	}

	return cfg, nil
}

// envKey turns PNASITE_SECTION_SOME_KEY into section.some_key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, sec := range sections {
		if strings.HasPrefix(key, sec+"_") {
			return sec + "." + strings.TrimPrefix(key, sec+"_")
		}
	}
	return key
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 0 and 65535", c.Server.Port)
	}

	if c.Mail.TimeoutSeconds <= 0 {
		return fmt.Errorf("mail.timeout_seconds must be positive")
	}

	if c.Carousel.IntervalMS < 0 {
		return fmt.Errorf("carousel.interval_ms must be non-negative")
	}

	if c.Reveal.Threshold <= 0 || c.Reveal.Threshold > 1 {
		return fmt.Errorf("invalid reveal.threshold %v: must be in (0, 1]", c.Reveal.Threshold)
	}

	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir is required")
	}

	return nil
}

// MailConfigured reports whether all three relay identifiers are set.
func (c *Config) MailConfigured() bool {
	return c.Mail.ServiceID != "" && c.Mail.TemplateID != "" && c.Mail.PublicKey != ""
}
