package main

import (
	"fmt"
	"os"

	"github.com/tsawler/folio/filter"
	"gopkg.in/yaml.v3"
)

// manifest is the YAML build description accepted by folio build.
type manifest struct {
	Output  string          `yaml:"output"`
	Page    string          `yaml:"page"`
	Margins *bool           `yaml:"margins"`
	Images  []manifestImage `yaml:"images"`
}

// manifestImage is one queued image: where to read it and which filter
// to confirm it with. An empty filter means none.
type manifestImage struct {
	Path   string `yaml:"path"`
	Filter string `yaml:"filter"`
}

// loadManifest reads and validates a build manifest. Filter names are
// checked up front so a bad manifest fails before any image is decoded.
func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if len(m.Images) == 0 {
		return nil, fmt.Errorf("manifest %s lists no images", path)
	}
	for i, img := range m.Images {
		if img.Path == "" {
			return nil, fmt.Errorf("manifest %s: image %d has no path", path, i)
		}
		if _, err := filter.Parse(img.Filter); err != nil {
			return nil, fmt.Errorf("manifest %s: image %s: %w", path, img.Path, err)
		}
	}

	return &m, nil
}
