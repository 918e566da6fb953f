// Package textsub applies ordered literal find/replace rules to whole files.
package textsub

import (
	"fmt"
	"os"
	"strings"
)

// Scope selects how many occurrences a rule replaces.
type Scope int

const (
	// First replaces only the first occurrence.
	First Scope = iota
	// All replaces every occurrence.
	All
)

// Rule is a single literal substitution.
type Rule struct {
	Old   string
	New   string
	Scope Scope
}

// ReplaceFirst builds a rule replacing the first occurrence of old.
func ReplaceFirst(old, new string) Rule {
	return Rule{Old: old, New: new, Scope: First}
}

// ReplaceAll builds a rule replacing every occurrence of old.
func ReplaceAll(old, new string) Rule {
	return Rule{Old: old, New: new, Scope: All}
}

// Apply runs the rules over text in order. A rule with an empty Old is a no-op.
func Apply(text string, rules ...Rule) string {
	for _, r := range rules {
		if r.Old == "" {
			continue
		}
		n := 1
		if r.Scope == All {
			n = -1
		}
		text = strings.Replace(text, r.Old, r.New, n)
	}
	return text
}

// ApplyFile reads path, applies the rules and writes the result back in place.
func ApplyFile(path string, rules ...Rule) error {
	return EditFile(path, func(text string) (string, error) {
		return Apply(text, rules...), nil
	})
}

// EditFile reads path whole, passes its text through edit and writes the
// result back with the same permissions. Nothing is written when edit fails.
func EditFile(path string, edit func(string) (string, error)) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out, err := edit(string(data))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
