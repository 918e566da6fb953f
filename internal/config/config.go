package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultsFile is the name of the user defaults file inside the config dir.
const DefaultsFile = "config.yml"

// AppDir is the per-user directory name under XDG_CONFIG_HOME.
const AppDir = "scapp"

const envPrefix = "SCAPP"

const defaultsHeader = "# scapp defaults: answers pre-filled in every prompt\n"

// Defaults holds the user-editable starting answers for the prompts.
type Defaults struct {
	Version       string `yaml:"version" mapstructure:"version"`
	Standard      string `yaml:"standard" mapstructure:"standard"`
	SrcFolder     bool   `yaml:"src_folder" mapstructure:"src_folder"`
	SrcFolderName string `yaml:"src_folder_name" mapstructure:"src_folder_name"`
	AddMain       bool   `yaml:"add_main" mapstructure:"add_main"`
	MainFileName  string `yaml:"main_file_name" mapstructure:"main_file_name"`
	Git           bool   `yaml:"git" mapstructure:"git"`
	CMake         bool   `yaml:"cmake" mapstructure:"cmake"`
	Vcpkg         bool   `yaml:"vcpkg" mapstructure:"vcpkg"`
	EditorConfig  bool   `yaml:"editor_config" mapstructure:"editor_config"`
	TemplateDir   string `yaml:"template_dir,omitempty" mapstructure:"template_dir"`
}

// BuiltinDefaults returns the answers used when no defaults file exists.
func BuiltinDefaults() *Defaults {
	return &Defaults{
		Version:       DefaultVersion,
		Standard:      DefaultStandard,
		SrcFolder:     true,
		SrcFolderName: SrcFolder,
		AddMain:       true,
		MainFileName:  MainFileName,
		Git:           true,
		CMake:         true,
		Vcpkg:         true,
		EditorConfig:  true,
	}
}

// DefaultsPath returns the location of the user defaults file.
func DefaultsPath() string {
	return filepath.Join(xdg.ConfigHome, AppDir, DefaultsFile)
}

// DefaultsExist checks whether a defaults file exists at path.
func DefaultsExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadDefaults reads the defaults file at path, layering SCAPP_* environment
// variables on top. A missing file is not an error: built-in values are used.
func LoadDefaults(path string) (*Defaults, error) {
	v := viper.New()
	b := BuiltinDefaults()
	v.SetDefault("version", b.Version)
	v.SetDefault("standard", b.Standard)
	v.SetDefault("src_folder", b.SrcFolder)
	v.SetDefault("src_folder_name", b.SrcFolderName)
	v.SetDefault("add_main", b.AddMain)
	v.SetDefault("main_file_name", b.MainFileName)
	v.SetDefault("git", b.Git)
	v.SetDefault("cmake", b.CMake)
	v.SetDefault("vcpkg", b.Vcpkg)
	v.SetDefault("editor_config", b.EditorConfig)
	v.SetDefault("template_dir", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" && DefaultsExist(path) {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading defaults %s: %w", path, err)
		}
	}

	var d Defaults
	if err := v.Unmarshal(&d); err != nil {
		return nil, fmt.Errorf("parsing defaults: %w", err)
	}

	std, err := NormalizeStandard(d.Standard)
	if err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}
	d.Standard = std

	if err := ValidateDefaults(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// SaveDefaults writes d to path, creating parent directories.
func SaveDefaults(path string, d *Defaults) error {
	if err := ValidateDefaults(d); err != nil {
		return err
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshaling defaults: %w", err)
	}
	content := append([]byte(defaultsHeader), data...)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0644); err != nil {
		return fmt.Errorf("writing defaults: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("saving defaults: %w", err)
	}
	return nil
}

// ValidateDefaults checks the names and standard carried by d.
func ValidateDefaults(d *Defaults) error {
	if d.Version == "" {
		return errors.New("defaults: version is required")
	}
	if err := ValidateStandard(d.Standard); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if err := ValidateEntryName("source folder name", d.SrcFolderName); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if err := ValidateEntryName("main file name", d.MainFileName); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	return nil
}
