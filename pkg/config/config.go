package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"

	"github.com/Trivernis/uwucodec/pkg/codec"
)

// MaxChunkSize bounds the chunk size a profile may request.
const MaxChunkSize = 64 << 20

type Profile struct {
	Name      string         `yaml:"name" toml:"name"`
	ChunkSize int            `yaml:"chunk-size,omitempty" toml:"chunk-size,omitempty"`
	Boundary  codec.Boundary `yaml:"boundary,omitempty" toml:"boundary,omitempty"`
	Policy    codec.Policy   `yaml:"policy,omitempty" toml:"policy,omitempty"`
}

// Validate checks the enum values and the chunk size bounds. Empty
// fields are valid and mean "use the default".
func (p *Profile) Validate() error {
	if p.ChunkSize < 0 || p.ChunkSize > MaxChunkSize {
		return fmt.Errorf("profile %q: chunk-size must be between 0 and %d", p.Name, MaxChunkSize)
	}
	if p.Boundary != "" {
		var b codec.Boundary
		if err := b.Set(string(p.Boundary)); err != nil {
			return fmt.Errorf("profile %q: boundary %w", p.Name, err)
		}
	}
	if p.Policy != "" {
		var pol codec.Policy
		if err := pol.Set(string(p.Policy)); err != nil {
			return fmt.Errorf("profile %q: policy %w", p.Name, err)
		}
	}
	return nil
}

type Config struct {
	CurrentProfile  string     `yaml:"current-profile" toml:"current-profile"`
	ProfileOverride string     `yaml:"-" toml:"-"`
	Profiles        []*Profile `yaml:"profiles" toml:"profiles"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-" toml:"-"`
}

// Path returns the file this config was read from or will be written to.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) HasProfile(name string) bool {
	for _, profile := range c.Profiles {
		if profile.Name == name {
			return true
		}
	}
	return false
}

func (c *Config) SetCurrentProfile(name string) error {
	var oldProfile string
	if c.ActiveProfile() != nil {
		oldProfile = c.ActiveProfile().Name
	}
	for _, profile := range c.Profiles {
		if profile.Name == name {
			c.CurrentProfile = name

			if err := c.Write(); err != nil {
				// "Revert" change to the profile, either
				// everything is successful or nothing.
				c.CurrentProfile = oldProfile
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("could not find profile with name %v", name)
}

func (c *Config) ActiveProfile() *Profile {
	if c == nil {
		return nil
	}

	toSearch := c.ProfileOverride
	if c.ProfileOverride == "" {
		toSearch = c.CurrentProfile
	}

	if toSearch == "" {
		return nil
	}

	for _, profile := range c.Profiles {
		if profile.Name == toSearch {
			// Copy, so that flag overrides applied to the active profile
			// are not written back into the config.
			p := *profile
			return &p
		}
	}
	return nil
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if err := encode(tmpFile, configPath, c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	c.configPath = configPath
	return nil
}

func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	if err := decode(file, resolvedPath, &c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	for _, p := range c.Profiles {
		if err := p.Validate(); err != nil {
			return Config{}, err
		}
	}
	c.configPath = resolvedPath
	return c, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func encode(w io.Writer, path string, c *Config) error {
	if isTOML(path) {
		return toml.NewEncoder(w).Encode(c)
	}
	encoder := yaml.NewEncoder(w)
	if err := encoder.Encode(c); err != nil {
		return err
	}
	return encoder.Close()
}

func decode(r io.Reader, path string, c *Config) error {
	if isTOML(path) {
		_, err := toml.NewDecoder(r).Decode(c)
		return err
	}
	err := yaml.NewDecoder(r).Decode(c)
	if err == io.EOF {
		// Empty file.
		return nil
	}
	return err
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	if !fileExists(cfgPath) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return cfgPath, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".uwu", "config"), nil
}
