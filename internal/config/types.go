package config

// Config is the top-level pnasite configuration, corresponding to .pnasite.yml.
type Config struct {
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Mail     MailConfig     `yaml:"mail" koanf:"mail"`
	Carousel CarouselConfig `yaml:"carousel" koanf:"carousel"`
	Reveal   RevealConfig   `yaml:"reveal" koanf:"reveal"`
	Export   ExportConfig   `yaml:"export" koanf:"export"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Port      int    `yaml:"port" koanf:"port"`
	AssetsDir string `yaml:"assets_dir" koanf:"assets_dir"`
	AllowAll  bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// MailConfig identifies the EmailJS account used by the contact form.
// The ids are passed through unvalidated; a wrong or missing value only
// shows up as a failed submission.
type MailConfig struct {
	Endpoint       string `yaml:"endpoint" koanf:"endpoint"`
	ServiceID      string `yaml:"service_id" koanf:"service_id"`
	TemplateID     string `yaml:"template_id" koanf:"template_id"`
	PublicKey      string `yaml:"public_key" koanf:"public_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// CarouselConfig controls slideshow timing.
type CarouselConfig struct {
	IntervalMS      int  `yaml:"interval_ms" koanf:"interval_ms"`
	ResetOnNavigate bool `yaml:"reset_on_navigate" koanf:"reset_on_navigate"`
}

// RevealConfig controls the scroll animation trigger region.
type RevealConfig struct {
	Threshold        float64 `yaml:"threshold" koanf:"threshold"`
	RootMarginBottom float64 `yaml:"root_margin_bottom" koanf:"root_margin_bottom"`
}

// ExportConfig controls `pnasite export`.
type ExportConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	Include   []string `yaml:"include" koanf:"include"`
	Exclude   []string `yaml:"exclude" koanf:"exclude"`
}
