package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "lingrow.yaml"
	envPrefix         = "LINGROW_"
)

type IconPaths struct {
	Home    string `yaml:"home"`
	Explore string `yaml:"explore"`
	Write   string `yaml:"write"`
	Profile string `yaml:"profile"`
}

// Map returns the icon paths keyed by navigation slot.
func (p IconPaths) Map() map[string]string {
	return map[string]string{
		"home":    p.Home,
		"explore": p.Explore,
		"write":   p.Write,
		"profile": p.Profile,
	}
}

type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type Config struct {
	StorePath    string        `yaml:"store_path"`
	DefaultImage string        `yaml:"default_image"`
	Icons        IconPaths     `yaml:"icons"`
	LogoPath     string        `yaml:"logo_path"`
	LogLevel     string        `yaml:"log_level"`
	JSONLogs     bool          `yaml:"json_logs"`
	Window       WindowConfig  `yaml:"window"`
	AnyImageFile bool          `yaml:"any_image_file"`
	RecentLimit  int           `yaml:"recent_limit"`
	Debounce     time.Duration `yaml:"watch_debounce"`
}

func Default() *Config {
	return &Config{
		StorePath:    "saved_texts.json",
		DefaultImage: "lingrow_mockup.png",
		Icons: IconPaths{
			Home:    "icons/home.png",
			Explore: "icons/explore.png",
			Write:   "icons/write.png",
			Profile: "icons/profile.png",
		},
		LogoPath:    "assets/lingrow_logo.png",
		LogLevel:    "info",
		Window:      WindowConfig{Width: 420, Height: 780},
		RecentLimit: 10,
		Debounce:    200 * time.Millisecond,
	}
}

// Load builds the configuration from defaults, the YAML file at path (a
// missing file is fine), a .env file in the working directory and LINGROW_*
// environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	_ = godotenv.Load()

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	str("STORE", &c.StorePath)
	str("IMAGE", &c.DefaultImage)
	str("LOGO", &c.LogoPath)
	str("ICON_HOME", &c.Icons.Home)
	str("ICON_EXPLORE", &c.Icons.Explore)
	str("ICON_WRITE", &c.Icons.Write)
	str("ICON_PROFILE", &c.Icons.Profile)
	str("LOG_LEVEL", &c.LogLevel)

	if v, ok := lookup(envPrefix + "JSON_LOGS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %sJSON_LOGS: %w", envPrefix, err)
		}
		c.JSONLogs = b
	}
	if v, ok := lookup(envPrefix + "ANY_IMAGE_FILE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %sANY_IMAGE_FILE: %w", envPrefix, err)
		}
		c.AnyImageFile = b
	}
	if v, ok := lookup(envPrefix + "RECENT_LIMIT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %sRECENT_LIMIT: %w", envPrefix, err)
		}
		c.RecentLimit = n
	}
	if v, _ := lookup("DEBUG"); v == "1" {
		c.LogLevel = "debug"
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.StorePath) == "" {
		return errors.New("config: store_path must not be empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: invalid window size %gx%g", c.Window.Width, c.Window.Height)
	}
	if c.RecentLimit < 0 {
		return fmt.Errorf("config: recent_limit must be >= 0, got %d", c.RecentLimit)
	}
	return nil
}
