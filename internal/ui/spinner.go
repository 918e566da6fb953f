package ui

import (
	"time"

	"github.com/charmbracelet/huh/spinner"
)

// WithSpinner runs fn under a spinner titled title. Without an interactive
// terminal fn runs directly. The elapsed time is logged at debug level.
func WithSpinner(title string, fn func() error) error {
	start := time.Now()
	defer func() {
		Logger.Debug("finished", "task", title, "took", time.Since(start).Round(time.Millisecond))
	}()

	if !IsInteractive() {
		return fn()
	}

	var actionErr error
	err := spinner.New().
		Title(" " + title + "...").
		Action(func() {
			actionErr = fn()
		}).
		Run()
	if err != nil {
		return err
	}
	return actionErr
}
