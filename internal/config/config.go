package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/quill-ui/quill/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "quill.json"

	// DefaultPort is the default inspect server port.
	DefaultPort = 7410

	// DefaultHost is the default inspect server host.
	DefaultHost = "localhost"
)

// Config represents the complete quill.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Inspect contains inspect server configuration.
	Inspect InspectConfig `json:"inspect,omitempty"`

	// Templates contains template compiler configuration.
	Templates TemplatesConfig `json:"templates,omitempty"`

	// Metrics contains metrics export configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Archive contains registry snapshot configuration.
	Archive ArchiveConfig `json:"archive,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// InspectConfig contains inspect server settings.
type InspectConfig struct {
	// Port is the port to serve the inspect API on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`
}

// TemplatesConfig contains template compiler settings.
type TemplatesConfig struct {
	// ValidateSlots enables dense slot-index validation at compile time.
	ValidateSlots bool `json:"validateSlots,omitempty"`
}

// MetricsConfig contains metrics export settings.
type MetricsConfig struct {
	// Enabled controls whether compile metrics are collected.
	Enabled bool `json:"enabled,omitempty"`
}

// ArchiveConfig contains registry snapshot settings.
type ArchiveConfig struct {
	// Store selects the snapshot backend: "disk" or "s3".
	Store string `json:"store,omitempty"`

	// Dir is the local directory for disk snapshots.
	Dir string `json:"dir,omitempty"`

	// Bucket is the S3 bucket for remote snapshots.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix for S3 snapshots.
	Prefix string `json:"prefix,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Inspect: InspectConfig{
			Port: DefaultPort,
			Host: DefaultHost,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
		Archive: ArchiveConfig{
			Store: "disk",
			Dir:   "snapshots",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for quill.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("Q040").
				WithDetail("No quill.json found in " + filepath.Dir(path)).
				WithSuggestion("Create quill.json or run with defaults")
		}
		return nil, errors.New("Q041").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("Q041").
			WithDetail("Failed to parse quill.json: " + err.Error()).
			WithSuggestion("Check that quill.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("Q041").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("Q041").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Inspect.Port == 0 {
		c.Inspect.Port = DefaultPort
	}
	if c.Inspect.Host == "" {
		c.Inspect.Host = DefaultHost
	}
	if c.Archive.Store == "" {
		c.Archive.Store = "disk"
	}
	if c.Archive.Dir == "" {
		c.Archive.Dir = "snapshots"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Inspect.Port < 0 || c.Inspect.Port > 65535 {
		return errors.New("Q041").
			WithDetail("Port must be between 0 and 65535")
	}
	switch c.Archive.Store {
	case "disk", "s3":
	default:
		return errors.New("Q041").
			WithDetail("Archive store must be \"disk\" or \"s3\", got " + strconv.Quote(c.Archive.Store))
	}
	if c.Archive.Store == "s3" && c.Archive.Bucket == "" {
		return errors.New("Q041").
			WithDetail("Archive store \"s3\" requires a bucket name")
	}
	return nil
}

// InspectAddress returns the listen address for the inspect server.
func (c *Config) InspectAddress() string {
	return c.Inspect.Host + ":" + strconv.Itoa(c.Inspect.Port)
}

// ArchiveDir returns the absolute path to the disk snapshot directory.
func (c *Config) ArchiveDir() string {
	if filepath.IsAbs(c.Archive.Dir) {
		return c.Archive.Dir
	}
	return filepath.Join(c.Dir(), c.Archive.Dir)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing quill.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("Q040").
				WithDetail("No quill.json found in " + startDir + " or any parent directory").
				WithSuggestion("Create quill.json at the project root")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
