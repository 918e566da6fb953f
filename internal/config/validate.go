package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var appNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// folderNamePattern rejects leading/trailing whitespace or dots and the
// characters no common filesystem accepts in a directory name.
var folderNamePattern = regexp.MustCompile(`^[^\s^\x00-\x1f\\?*:";<>|/.][^\x00-\x1f\\?*:";<>|/]*[^\s^\x00-\x1f\\?*:";<>|/.]+$`)

const minAppNameLength = 3

// ValidateAppName checks the app name grammar.
func ValidateAppName(name string) error {
	if name == "" {
		return errors.New("app name is mandatory")
	}
	if !appNamePattern.MatchString(name) {
		return errors.New("app name can only contain alphanumeric characters, underscores and dashes")
	}
	if len(name) < minAppNameLength {
		return fmt.Errorf("app name must be %d chars or more", minAppNameLength)
	}
	if !isAlphaNumeric(name[0]) {
		return errors.New("first char of the app name must be alphanumeric")
	}
	return nil
}

// ValidateFolderName checks the destination folder name grammar.
func ValidateFolderName(name string) error {
	if !folderNamePattern.MatchString(name) {
		return fmt.Errorf("invalid folder name: %q", name)
	}
	return nil
}

// ValidateEntryName checks that name is usable as a single file or folder name.
func ValidateEntryName(label, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s is mandatory", label)
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("invalid %s: %q", label, name)
	}
	return nil
}

// ValidateStandard checks that std is one of the supported bare numerals.
func ValidateStandard(std string) error {
	if !lo.Contains(Standards, std) {
		return fmt.Errorf("unsupported C++ standard %q (valid: %s)", std, strings.Join(Standards, ", "))
	}
	return nil
}

// NormalizeStandard accepts "20", "C++20" or "c++20" and returns the bare numeral.
func NormalizeStandard(s string) (string, error) {
	std := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "c++")
	if err := ValidateStandard(std); err != nil {
		return "", err
	}
	return std, nil
}

func isAlphaNumeric(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
