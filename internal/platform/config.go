package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/jotter/pkg/richtext"
)

// Config mirrors jotter.yaml. Zero values mean "use the default".
type Config struct {
	Adapter string       `yaml:"adapter"`
	Data    string       `yaml:"data"`
	Key     string       `yaml:"key"`
	Redis   RedisConfig  `yaml:"redis"`
	Editor  EditorConfig `yaml:"editor"`

	// dir is the directory the file was loaded from.
	dir string
}

type RedisConfig struct {
	Addr string `yaml:"addr"`
}

type EditorConfig struct {
	Family       string  `yaml:"family"`
	BaseSize     float64 `yaml:"base_size"`
	EnlargedSize float64 `yaml:"enlarged_size"`
	ImageWidth   int     `yaml:"image_width"`
	ImageHeight  int     `yaml:"image_height"`
}

// LoadConfig parses a jotter.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return &cfg, nil
}

// FindConfig locates jotter.yaml above startDir. A root marked only by a
// .jotter directory yields an empty config anchored there.
func FindConfig(startDir string) (*Config, error) {
	root, err := FindRoot(startDir)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(root, ConfigFile)
	if !hasFile(root, ConfigFile) {
		return &Config{dir: root}, nil
	}
	return LoadConfig(path)
}

// DataPath returns the configured data location. Relative paths are
// resolved against the config file's directory; without a data entry the
// .jotter directory next to the config is used.
func (c *Config) DataPath() string {
	data := c.Data
	if data == "" {
		data = SystemDir
	}
	if filepath.IsAbs(data) || c.dir == "" {
		return data
	}
	return filepath.Join(c.dir, data)
}

// Options converts the file into store options.
func (c *Config) Options() []Option {
	var opts []Option
	if c.Adapter != "" {
		opts = append(opts, WithAdapter(c.Adapter))
	}
	if c.Key != "" {
		opts = append(opts, WithKey(c.Key))
	}
	if c.Redis.Addr != "" {
		opts = append(opts, WithRedisAddr(c.Redis.Addr))
	}
	return opts
}

// SessionOptions converts the editor section into session options.
func (c *Config) SessionOptions() []richtext.SessionOption {
	var opts []richtext.SessionOption
	if c.Editor.Family != "" {
		opts = append(opts, richtext.WithFamily(c.Editor.Family))
	}
	if c.Editor.BaseSize > 0 {
		opts = append(opts, richtext.WithBaseSize(c.Editor.BaseSize))
	}
	if c.Editor.EnlargedSize > 0 {
		opts = append(opts, richtext.WithEnlargedSize(c.Editor.EnlargedSize))
	}
	if c.Editor.ImageWidth > 0 || c.Editor.ImageHeight > 0 {
		w, h := c.Editor.ImageWidth, c.Editor.ImageHeight
		if w <= 0 {
			w = richtext.DefaultImageWidth
		}
		if h <= 0 {
			h = richtext.DefaultImageHeight
		}
		opts = append(opts, richtext.WithImageBox(w, h))
	}
	return opts
}
