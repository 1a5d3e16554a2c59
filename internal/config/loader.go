package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvConfigPath names the environment variable pointing at an optional
// YAML config file.
const EnvConfigPath = "KIRO_CONFIG"

// Load builds a Config by layering defaults, an optional file and
// environment variables. Order of precedence (low -> high):
//  1. DefaultConfig()
//  2. YAML file named by KIRO_CONFIG
//  3. environment (prefix KIRO_, double underscore nests:
//     KIRO_PIPELINE__ACTIVE_FPS -> pipeline.active_fps)
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("KIRO_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "KIRO_")
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c Config) Validate() error {
	if c.Pipeline.ActiveFPS <= 0 || c.Pipeline.IdleFPS <= 0 {
		return fmt.Errorf("pipeline frame rates must be positive")
	}
	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		return fmt.Errorf("camera dimensions must be positive")
	}
	if c.Pipeline.MotionThreshold < 0 || c.Pipeline.MotionThreshold > 100 {
		return fmt.Errorf("motion threshold must be a percentage in [0, 100]")
	}
	for i, rule := range c.Rules {
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("mapping rule %d: %w", i, err)
		}
	}
	return nil
}
