package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/listmenu/internal/cel"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

var (
	embeddedConfigOnce sync.Once
	embeddedConfig     Config
	embeddedConfigErr  error
)

// ErrUnknownFormat is returned for config files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown config format")

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DefaultConfigYAML returns a copy of the embedded default config.
func DefaultConfigYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// Default returns the embedded default configuration.
func Default() (Config, error) {
	embeddedConfigOnce.Do(func() {
		if len(embeddedDefaultConfig) == 0 {
			embeddedConfigErr = fmt.Errorf("embedded default config is empty")
			return
		}
		if err := yaml.Unmarshal(embeddedDefaultConfig, &embeddedConfig); err != nil {
			embeddedConfigErr = fmt.Errorf("decode embedded default config: %w", err)
		}
	})
	return embeddedConfig.clone(), embeddedConfigErr
}

// ParseFormat accepts "yaml", "yml" or "toml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (Config, error) {
	var cfg Config
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return cfg, fmt.Errorf("decode %s config: %w", format, err)
	}
	return cfg, nil
}

// Encode renders cfg in the given format.
func Encode(cfg Config, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("encode yaml config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml config: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("encode toml config: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

// Load returns the defaults merged with the file at path. An empty path
// yields the defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, err
	}

	if path != "" {
		format, err := FormatFromPath(path)
		if err != nil {
			return cfg, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		fileCfg, err := Decode(data, format)
		if err != nil {
			return cfg, err
		}
		cfg = Merge(cfg, fileCfg)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath returns explicit if set, otherwise the first existing config
// file under $XDG_CONFIG_HOME/listmenu or ~/.config/listmenu. It returns an
// empty string when there is none.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "listmenu"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "listmenu"))
	}

	for _, dir := range dirs {
		for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// Merge returns base with every field set in override applied on top.
func Merge(base, override Config) Config {
	out := base.clone()
	m, o := &out.Menu, override.Menu
	setPtr(&m.Name, o.Name)
	setPtr(&m.PageSize, o.PageSize)
	setPtr(&m.Marker, o.Marker)
	setPtr(&m.MaxEntryLines, o.MaxEntryLines)
	setPtr(&m.MultilineMarker, o.MultilineMarker)
	setPtr(&m.OnlyBufferDifference, o.OnlyBufferDifference)
	setString(&m.Colors.Text, o.Colors.Text)
	setString(&m.Colors.SelectedText, o.Colors.SelectedText)
	setString(&m.Colors.SelectedBackground, o.Colors.SelectedBackground)
	setString(&m.Colors.Description, o.Colors.Description)
	setString(&out.History.Path, override.History.Path)
	setString(&out.History.Filter, override.History.Filter)
	return out
}

func setPtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func setString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// clone copies pointer fields so callers can mutate the result freely.
func (c Config) clone() Config {
	out := c
	out.Menu = MenuConfig{Colors: c.Menu.Colors}
	setPtr(&out.Menu.Name, c.Menu.Name)
	setPtr(&out.Menu.PageSize, c.Menu.PageSize)
	setPtr(&out.Menu.Marker, c.Menu.Marker)
	setPtr(&out.Menu.MaxEntryLines, c.Menu.MaxEntryLines)
	setPtr(&out.Menu.MultilineMarker, c.Menu.MultilineMarker)
	setPtr(&out.Menu.OnlyBufferDifference, c.Menu.OnlyBufferDifference)
	return out
}

// Validate checks values a file may set to something unusable.
func (c Config) Validate() error {
	if c.Menu.PageSize != nil && *c.Menu.PageSize <= 0 {
		return fmt.Errorf("menu.page_size must be greater than 0")
	}
	if c.Menu.MaxEntryLines != nil && *c.Menu.MaxEntryLines <= 0 {
		return fmt.Errorf("menu.max_entry_lines must be greater than 0")
	}
	if c.Menu.Marker != nil && *c.Menu.Marker == "" {
		return fmt.Errorf("menu.marker must not be empty")
	}
	if c.History.Filter != "" {
		if _, err := cel.Compile(c.History.Filter); err != nil {
			return fmt.Errorf("history.filter: %w", err)
		}
	}
	return nil
}

// HistoryPath returns the history database path with a leading "~/" expanded.
func (c Config) HistoryPath() (string, error) {
	path := c.History.Path
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path, nil
}
