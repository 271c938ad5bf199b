// Package catalog loads box presets from YAML.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/ports"

	"gopkg.in/yaml.v3"
)

//go:embed default_boxes.yaml
var defaultBoxesYAML []byte

const supportedVersion = 1

// BoxEntry is one box type in the catalog file.
type BoxEntry struct {
	Type            string `yaml:"type"`
	Size            string `yaml:"size,omitempty"`
	EstimatedWeight string `yaml:"estimated_weight,omitempty"`
}

// File models the catalog YAML document.
type File struct {
	Version int        `yaml:"version"`
	Boxes   []BoxEntry `yaml:"boxes"`
}

var _ ports.BoxCatalog = (*BoxCatalog)(nil)

// BoxCatalog is an immutable lookup of box presets. Box types match case
// insensitively.
type BoxCatalog struct {
	presets map[string]ports.BoxPreset
}

// Default returns the catalog bundled with the binary.
func Default() (*BoxCatalog, error) {
	return Parse(defaultBoxesYAML)
}

// Load reads a catalog file. An empty path yields the bundled catalog.
func Load(path string) (*BoxCatalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read box catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("box catalog %s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (*BoxCatalog, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse box catalog: %w", err)
	}
	if file.Version != supportedVersion {
		return nil, fmt.Errorf("unsupported box catalog version %d", file.Version)
	}

	presets := make(map[string]ports.BoxPreset, len(file.Boxes))
	var errList []error
	for i, entry := range file.Boxes {
		key := normalizeType(entry.Type)
		if key == "" {
			errList = append(errList, fmt.Errorf("box %d: type is required", i))
			continue
		}
		if _, dup := presets[key]; dup {
			errList = append(errList, fmt.Errorf("box %q is declared twice", entry.Type))
			continue
		}

		preset := ports.BoxPreset{Size: strings.TrimSpace(entry.Size)}
		if entry.EstimatedWeight != "" {
			w, err := kernel.WeightFromString(entry.EstimatedWeight)
			if err != nil {
				errList = append(errList, fmt.Errorf("box %q: %w", entry.Type, err))
				continue
			}
			preset.EstimatedWeight = &w
		}
		presets[key] = preset
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &BoxCatalog{presets: presets}, nil
}

func (c *BoxCatalog) Preset(boxType string) (ports.BoxPreset, bool) {
	if c == nil {
		return ports.BoxPreset{}, false
	}
	p, ok := c.presets[normalizeType(boxType)]
	return p, ok
}

// Types lists the known box types.
func (c *BoxCatalog) Types() []string {
	types := make([]string, 0, len(c.presets))
	for t := range c.presets {
		types = append(types, t)
	}
	return types
}

func normalizeType(boxType string) string {
	return strings.ToLower(strings.TrimSpace(boxType))
}
