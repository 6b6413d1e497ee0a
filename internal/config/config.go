// Package config loads the bwproxy configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the contents of config.toml. Empty paths fall back to the
// built-in defaults.
type Config struct {
	Fonts  Fonts  `toml:"fonts"`
	Assets Assets `toml:"assets"`
	Cache  Cache  `toml:"cache"`
	Render Render `toml:"render"`
	Pages  Pages  `toml:"pages"`
}

// Fonts are TrueType files for each family. Empty entries use the embedded
// Go fonts; without a symbol font, symbols are drawn with the text fonts.
type Fonts struct {
	Serif  string `toml:"serif"`
	Sans   string `toml:"sans"`
	Mono   string `toml:"mono"`
	Symbol string `toml:"symbol"`
}

type Assets struct {
	// Symbols holds the illustration symbols of basic lands and emblems,
	// named Plains.png, Island.png, ..., Emblem.png.
	Symbols string `toml:"symbols"`
	SetIcon string `toml:"set_icon"`
}

type Cache struct {
	Cards  string `toml:"cards"`
	Tokens string `toml:"tokens"`
	// Offline disables card database lookups.
	Offline bool `toml:"offline"`
}

type Render struct {
	Color             bool `toml:"color"`
	TextSymbols       bool `toml:"text_symbols"`
	FullArtLands      bool `toml:"full_art_lands"`
	AlternativeFrames bool `toml:"alternative_frames"`
	// Workers bounds parallel rendering; 0 uses every CPU.
	Workers int `toml:"workers"`
}

type Pages struct {
	Format      string `toml:"format"`
	Small       bool   `toml:"small"`
	NoCardSpace bool   `toml:"no_card_space"`
	OutputDir   string `toml:"output_dir"`
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "bwproxy", "config.toml")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cacheDir := filepath.Join(GetXDGCacheHome(), "bwproxy")
	return &Config{
		Cache: Cache{
			Cards:  filepath.Join(cacheDir, "cards.json"),
			Tokens: filepath.Join(cacheDir, "tokens.json"),
		},
		Render: Render{TextSymbols: true},
		Pages:  Pages{Format: "a4paper", OutputDir: "pages"},
	}
}

// Load reads the config file at path, or the default path if path is
// empty. Keys missing from the file keep their default values; a missing
// file gives the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in config file %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// WriteDefault writes the default configuration to path, or the default
// path if path is empty, and returns the path written. An existing file is
// left alone unless force is set.
func WriteDefault(path string, force bool) (string, error) {
	if path == "" {
		path = GetConfigFilePath()
	}
	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("config file %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(Default()); err != nil {
		return path, fmt.Errorf("error encoding config: %w", err)
	}
	return path, nil
}
