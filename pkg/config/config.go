package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultFile string = "stara.yaml"

type Config struct {
	Listen   string  `yaml:"listen"`
	BaseURL  string  `yaml:"baseURL"`
	SiteName string  `yaml:"siteName"`
	Data     Data    `yaml:"data"`
	Contact  Contact `yaml:"contact"`
	Export   Export  `yaml:"export"`
}

// Data names external datasets. Empty paths use the embedded ones.
type Data struct {
	Dealers  string `yaml:"dealers"`
	Products string `yaml:"products"`
}

type Contact struct {
	WebhookURL     string        `yaml:"webhookURL"`
	WebhookTimeout time.Duration `yaml:"webhookTimeout"`
	MaxUploadBytes int64         `yaml:"maxUploadBytes"`
}

type Export struct {
	Dir     string `yaml:"dir"`
	Workers int    `yaml:"workers"`
}

func Default() Config {
	return Config{
		Listen:   ":8080",
		BaseURL:  "https://stara.com",
		SiteName: "Stara",
		Contact: Contact{
			WebhookTimeout: 10 * time.Second,
			MaxUploadBytes: 10 << 20,
		},
		Export: Export{
			Dir:     "public",
			Workers: 4,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
	}

	b, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen must be set")
	}

	if c.Export.Workers < 1 {
		return fmt.Errorf("export.workers must be at least 1, got %d", c.Export.Workers)
	}

	if c.Contact.MaxUploadBytes < 1 {
		return fmt.Errorf("contact.maxUploadBytes must be positive")
	}

	if c.Contact.WebhookURL != "" && c.Contact.WebhookTimeout <= 0 {
		return fmt.Errorf("contact.webhookTimeout must be positive when a webhook is set")
	}

	return nil
}
