package campus

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
)

// DatasetDescriptor is the on-disk description of a campus dataset. File
// paths are resolved relative to the descriptor's own location.
type DatasetDescriptor struct {
	Name          string `json:"name"`
	BuildingsFile string `json:"buildings"`
	PathsFile     string `json:"paths"`
}

// Dataset is a fully loaded campus dataset.
type Dataset struct {
	Name      string
	Buildings []Building
	Segments  []Segment
}

// LoadDataset reads a yaml dataset descriptor and parses the data files it
// points to.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset descriptor: %w", err)
	}

	desc := &DatasetDescriptor{}
	if err := yaml.Unmarshal(data, desc); err != nil {
		return nil, fmt.Errorf("failed to parse dataset descriptor %s: %w", path, err)
	}
	if desc.BuildingsFile == "" || desc.PathsFile == "" {
		return nil, fmt.Errorf("dataset descriptor %s must name a buildings and a paths file", path)
	}

	base := filepath.Dir(path)
	buildings, err := ParseBuildings(resolve(base, desc.BuildingsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load buildings: %w", err)
	}
	segments, err := ParseSegments(resolve(base, desc.PathsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load paths: %w", err)
	}

	return &Dataset{
		Name:      desc.Name,
		Buildings: buildings,
		Segments:  segments,
	}, nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
