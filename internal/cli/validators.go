package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/models"
)

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("%w: %s (must be: text, json, or yaml)", ErrInvalidOutputFormat, format)
}

// ValidateDatatype checks a datatype filter against the datatypes in store
func ValidateDatatype(store *catalog.Store, datatype string) error {
	if datatype == "" || datatype == models.All {
		return nil
	}
	if Contains(store.Datatypes(), datatype) {
		return nil
	}
	return fmt.Errorf("unknown datatype: %s (known: %v)", datatype, store.Datatypes())
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
