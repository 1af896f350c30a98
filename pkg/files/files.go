package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/afdtools/afd-catalog/pkg/models"
)

const (
	SettingsFile           = ".afd.yaml"
	DefaultCatalogFile     = "data.csv"
	DefaultCodelistsFile   = "Codelist.afm.csv"
	settingsFilePermission = 0644
)

var (
	// ErrUnsupportedFormat is returned for source files that are neither CSV nor xlsx
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEmptySource is returned when a catalog source has no header row
	ErrEmptySource = errors.New("source has no header row")
)

// ReadSettings reads the settings file at path. A missing file yields the
// default settings; an empty path means SettingsFile in the working dir.
func ReadSettings(path string) (*models.Settings, error) {
	if path == "" {
		path = SettingsFile
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	// unmarshal over the defaults so omitted keys keep their default value
	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}

	return settings, nil
}

// WriteSettings writes settings as YAML, creating parent directories
func WriteSettings(path string, settings *models.Settings) error {
	if path == "" {
		path = SettingsFile
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	return WriteFile(path, string(content))
}

// InitProject writes a default settings file into dir. It refuses to
// overwrite an existing file unless force is set.
func InitProject(dir string, force bool) (string, error) {
	path := filepath.Join(dir, SettingsFile)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := WriteSettings(path, models.DefaultSettings()); err != nil {
		return path, err
	}
	return path, nil
}

// WriteFile writes content to path, creating parent directories
func WriteFile(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), settingsFilePermission); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
