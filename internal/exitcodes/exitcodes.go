// Package exitcodes defines the process exit codes of scapp.
package exitcodes

const (
	Success = 0
	// Fatal covers destination and template copy failures and any unexpected error.
	Fatal = 1
	// UsageError is returned for bad flags and invalid non-interactive answers.
	UsageError = 2
	// ConfigError is returned for an unreadable defaults file or a missing template.
	ConfigError = 3
	// Aborted is returned when the user cancels a prompt.
	Aborted = 130
)
