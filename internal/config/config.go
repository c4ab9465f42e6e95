// Package config loads the project configuration file
// (.php-cs-fixer.toml or .php-cs-fixer.yaml).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
)

// FileNames are probed in order in every directory during discovery.
var FileNames = []string{".php-cs-fixer.toml", ".php-cs-fixer.yaml", ".php-cs-fixer.yml"}

// DefaultRules is used when a configuration names no rules.
var DefaultRules = []fixer.Rule{{Name: "@PSR2", Enabled: true}}

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is a loaded configuration file. Relative paths are resolved against
// Root, the directory that holds the file.
type Config struct {
	Path string
	Root string

	Rules      []fixer.Rule // in file order
	AllowRisky bool
	UsingCache *bool // nil: not set
	CacheFile  string
	MaxPasses  int
	Jobs       int
	Format     string
	Paths      []string
}

type fileConfig struct {
	Rules      map[string]any `toml:"rules" yaml:"-"`
	RulesNode  yaml.Node      `toml:"-" yaml:"rules"`
	AllowRisky bool           `toml:"allow_risky" yaml:"allow_risky"`
	UsingCache *bool          `toml:"using_cache" yaml:"using_cache"`
	CacheFile  string         `toml:"cache_file" yaml:"cache_file"`
	MaxPasses  int            `toml:"max_passes" yaml:"max_passes"`
	Jobs       int            `toml:"jobs" yaml:"jobs"`
	Format     string         `toml:"format" yaml:"format"`
	Paths      []string       `toml:"paths" yaml:"paths"`
}

// Discover walks up from startDir and returns the first configuration file.
func Discover(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("config: failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("config: failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadNearest discovers and loads the configuration for startDir.
// ok is false when no file exists anywhere up the tree.
func LoadNearest(startDir string) (cfg *Config, ok bool, err error) {
	path, ok, err := Discover(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err = Load(path)
	return cfg, true, err
}

// Load reads the configuration at path; the format follows the extension.
func Load(path string) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var cfg *Config
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".toml":
		cfg, err = loadTOML(abs)
	case ".yaml", ".yml":
		cfg, err = loadYAML(abs)
	default:
		return nil, fmt.Errorf("%w: %s: unsupported extension", ErrInvalidConfig, path)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadTOML(path string) (*Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to parse TOML: %v", ErrInvalidConfig, path, err)
	}
	for _, key := range meta.Undecoded() {
		// опции правил декодируются в any и проверяются самим фиксером
		if len(key) > 2 && key[0] == "rules" {
			continue
		}
		return nil, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, path, key.String())
	}
	cfg := newConfig(path, raw)
	// порядок правил важен: берём его из метаданных
	for _, key := range meta.Keys() {
		if len(key) != 2 || key[0] != "rules" {
			continue
		}
		rule, err := fixer.RuleFromValue(key[1], raw.Rules[key[1]])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
		cfg.Rules = append(cfg.Rules, rule)
	}
	return cfg, nil
}

func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var raw fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: failed to parse YAML: %v", ErrInvalidConfig, path, err)
	}
	cfg := newConfig(path, raw)
	node := raw.RulesNode
	if node.Kind == 0 {
		return cfg, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s: rules must be a mapping (line %d)", ErrInvalidConfig, path, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: %s: rule %s: %v", ErrInvalidConfig, path, name, err)
		}
		rule, err := fixer.RuleFromValue(name, value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
		cfg.Rules = append(cfg.Rules, rule)
	}
	return cfg, nil
}

func newConfig(path string, raw fileConfig) *Config {
	root := filepath.Dir(path)
	cfg := &Config{
		Path:       path,
		Root:       root,
		AllowRisky: raw.AllowRisky,
		UsingCache: raw.UsingCache,
		CacheFile:  raw.CacheFile,
		MaxPasses:  raw.MaxPasses,
		Jobs:       raw.Jobs,
		Format:     raw.Format,
	}
	if cfg.CacheFile != "" {
		cfg.CacheFile = cfg.resolve(cfg.CacheFile)
	}
	for _, p := range raw.Paths {
		cfg.Paths = append(cfg.Paths, cfg.resolve(p))
	}
	return cfg
}

func (c *Config) resolve(p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

func (c *Config) validate() error {
	if c.MaxPasses < 0 {
		return fmt.Errorf("%w: %s: max_passes must not be negative", ErrInvalidConfig, c.Path)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: %s: jobs must not be negative", ErrInvalidConfig, c.Path)
	}
	for _, r := range c.Rules {
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("%w: %s: empty rule name", ErrInvalidConfig, c.Path)
		}
	}
	return nil
}

// RuleSet returns the configured rules, or DefaultRules when none are set.
func (c *Config) RuleSet() fixer.RuleSet {
	if c == nil || len(c.Rules) == 0 {
		return fixer.RuleSet{Rules: append([]fixer.Rule(nil), DefaultRules...), AllowRisky: c != nil && c.AllowRisky}
	}
	return fixer.RuleSet{Rules: append([]fixer.Rule(nil), c.Rules...), AllowRisky: c.AllowRisky}
}
