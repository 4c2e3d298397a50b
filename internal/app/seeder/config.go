package seeder

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config controls one seeding run.
type Config struct {
	ContentPath  string `yaml:"content_path"  env:"SEEDER_CONTENT_PATH"`
	CreatorEmail string `yaml:"creator_email" env:"SEEDER_CREATOR_EMAIL"`
	DryRun       bool   `yaml:"dry_run"       env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads the optional YAML file at path with SEEDER_* variables
// layered on top. Non-zero fields of flags win over both.
func LoadConfig(path string, flags Config) (Config, error) {
	var cfg Config
	read := func() error { return cleanenv.ReadEnv(&cfg) }
	if path != "" {
		read = func() error { return cleanenv.ReadConfig(path, &cfg) }
	}
	if err := read(); err != nil {
		return Config{}, fmt.Errorf("seeder config: %w", err)
	}

	if flags.ContentPath != "" {
		cfg.ContentPath = flags.ContentPath
	}
	if flags.CreatorEmail != "" {
		cfg.CreatorEmail = flags.CreatorEmail
	}
	cfg.DryRun = cfg.DryRun || flags.DryRun

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("seeder config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.ContentPath == "":
		return errors.New("content_path is required")
	case c.CreatorEmail == "" && !c.DryRun:
		return errors.New("creator_email is required for a real run")
	}
	return nil
}
