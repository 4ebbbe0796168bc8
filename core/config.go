package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/signatory-io/keyinfo/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	DefaultConfigFile = "config.yaml"
	DefaultBaseDir    = ".keyinfo"
)

// Output formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

type Config struct {
	BasePath      string       `yaml:"-"`
	LogLevel      logger.Level `yaml:"log_level"`
	Format        string       `yaml:"format"`
	RandomArt     bool         `yaml:"randomart"`
	RevealPrivate bool         `yaml:"reveal_private"`
}

func (c *Config) Default() {
	dir, _ := os.UserHomeDir()
	*c = Config{
		BasePath:  filepath.Join(dir, DefaultBaseDir),
		LogLevel:  logger.LevelWarn,
		Format:    FormatYAML,
		RandomArt: true,
	}
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatYAML, FormatJSON, FormatCBOR:
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", c.Format)
	}
}

func LoadConfig[T any](conf T, path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, conf)
}

func GetPath(path string, base string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func (c *Config) RegisterFlags(f *pflag.FlagSet, cmd *cobra.Command) {
	f.StringP("base-dir", "b", c.BasePath, "Base directory")
	f.StringP("config-file", "c", DefaultConfigFile, "Configuration file path (absolute or relative to the base directory)")
	f.TextVarP(&c.LogLevel, "log-level", "l", c.LogLevel, "Log level: [error, warn, info, debug, trace]")
	f.StringVarP(&c.Format, "format", "f", c.Format, "Output format: [yaml, json, cbor]")
	f.BoolVar(&c.RandomArt, "randomart", c.RandomArt, "Print the key fingerprint randomart when writing to a terminal")
	f.BoolVar(&c.RevealPrivate, "reveal-private", c.RevealPrivate, "Include private key values in the report")

	cmd.MarkFlagFilename("config-file")
	cmd.MarkFlagDirname("base-dir")
}

// FromCmdline loads the configuration file (a missing file is not an error) and applies explicitly set flags on top of it
func (c *Config) FromCmdline(loadFromFile bool, f *pflag.FlagSet) error {
	baseDir, err := f.GetString("base-dir")
	if err != nil {
		panic(err)
	}
	if loadFromFile {
		confPath, err := f.GetString("config-file")
		if err != nil {
			panic(err)
		}
		var fromFile Config
		fromFile.Default()
		if err := LoadConfig(&fromFile, GetPath(confPath, baseDir)); err == nil {
			c.merge(&fromFile, f)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	if f.Changed("base-dir") {
		c.BasePath = baseDir
	}
	return c.Validate()
}

func (c *Config) merge(file *Config, f *pflag.FlagSet) {
	if !f.Changed("log-level") {
		c.LogLevel = file.LogLevel
	}
	if !f.Changed("format") {
		c.Format = file.Format
	}
	if !f.Changed("randomart") {
		c.RandomArt = file.RandomArt
	}
	if !f.Changed("reveal-private") {
		c.RevealPrivate = file.RevealPrivate
	}
}
