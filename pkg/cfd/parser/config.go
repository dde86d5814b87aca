package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/cfd-go/pkg/cfd"
	"github.com/ukaji3/cfd-go/pkg/cfd/models"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads a chart configuration from a YAML or JSON file.
// When data.source is set, the entries are read from that file, relative
// to the configuration's directory. The returned config has no surface.
func LoadConfig(path string) (*cfd.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Data != nil && cfg.Data.Source != "" {
		source := cfg.Data.Source
		if !filepath.IsAbs(source) {
			source = filepath.Join(filepath.Dir(path), source)
		}
		entries, err := LoadEntries(source, cfg.Data.Sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to load entries: %w", err)
		}
		cfg.Data.Entries = entries
	}
	return cfg, nil
}

// ParseConfig decodes a YAML or JSON configuration document.
func ParseConfig(data []byte) (*cfd.Config, error) {
	var cfg cfd.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntries reads entries from an xlsx, csv, yaml or json file.
// sheet is only used for workbooks.
func LoadEntries(path, sheet string) ([]models.Entry, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return ReadWorkbook(path, sheet)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCSV(f, filepath.Base(path))
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var entries []models.Entry
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}
