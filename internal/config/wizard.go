package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to pnasite! Let's configure the site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 2. Assets directory.
	assetsPrompt := promptui.Prompt{
		Label:   "Directory containing site images",
		Default: cfg.Server.AssetsDir,
	}
	if cfg.Server.AssetsDir, err = assetsPrompt.Run(); err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}

	// 3. EmailJS identifiers.
	fields := []struct {
		label string
		dst   *string
	}{
		{"EmailJS service ID", &cfg.Mail.ServiceID},
		{"EmailJS template ID", &cfg.Mail.TemplateID},
		{"EmailJS public key", &cfg.Mail.PublicKey},
	}
	for _, f := range fields {
		p := promptui.Prompt{Label: f.label + " (leave blank to set later)"}
		v, err := p.Run()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", strings.ToLower(f.label), err)
		}
		*f.dst = strings.TrimSpace(v)
	}

	// 4. Carousel behaviour.
	resetPrompt := promptui.Select{
		Label: "When a visitor clicks a carousel arrow",
		Items: []string{
			"keep the slideshow timer running on its schedule",
			"restart the slideshow timer",
		},
	}
	resetIdx, _, err := resetPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("carousel behaviour: %w", err)
	}
	cfg.Carousel.ResetOnNavigate = resetIdx == 1

	if !cfg.MailConfigured() {
		fmt.Printf("\nNote: the contact form will fail until all EmailJS ids are set (or %sMAIL_* variables are exported).\n", EnvPrefix)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
