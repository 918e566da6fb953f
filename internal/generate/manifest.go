package generate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/company/scapp/internal/config"
)

// vcpkgManifest keeps the key order of the written file.
type vcpkgManifest struct {
	Schema      string `json:"$schema"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// ManifestName derives the package name vcpkg accepts from an app name:
// lower case, with underscores turned into hyphens.
func ManifestName(appName string) string {
	return strings.ReplaceAll(strings.ToLower(appName), "_", "-")
}

// Manifest overwrites vcpkg.json in the project folder.
func Manifest(p *config.Project) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(vcpkgManifest{
		Schema:      config.VcpkgSchemaURL,
		Name:        ManifestName(p.AppName),
		Version:     p.Version,
		Description: p.Description,
	}); err != nil {
		return fmt.Errorf("encoding %s: %w", config.VcpkgJSONFile, err)
	}

	path := filepath.Join(p.FullPath(), config.VcpkgJSONFile)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
