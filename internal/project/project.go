// Package project handles persistence of projects, templates, and
// application configuration as JSON files under the user's home
// directory.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/CubeStow/internal/model"
)

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.cubestow/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cubestow")
}

// SaveProject writes a project to the specified JSON file, creating
// parent directories if needed.
func SaveProject(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project from the specified JSON file.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, err
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("parse project %s: %w", path, err)
	}
	if p.Settings.MaxBlocks == 0 {
		// Older project files predate the block cap setting.
		p.Settings.MaxBlocks = model.DefaultSettings().MaxBlocks
	}
	return p, nil
}
