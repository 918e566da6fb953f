package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	cerrors "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/company/scapp/internal/config"
	"github.com/company/scapp/internal/exitcodes"
	"github.com/company/scapp/internal/ui"
	"github.com/company/scapp/internal/vcs"
)

// App is the dependency container for all CLI commands.
type App struct {
	rootCmd *cobra.Command
	version string
	commit  string
	date    string
	output  *ui.Output
	logger  *log.Logger
	logOut  io.Writer

	workDir     string
	configPath  string
	templateDir string
	folder      string
	standard    string
	yes         bool
	debug       bool
	noColor     bool

	// replaced in tests
	ask         func(p *config.Project) error
	interactive func() bool
	initializer vcs.Initializer
}

// NewApp creates the root command and registers all subcommands.
func NewApp(version, commit, date string) *App {
	app := &App{
		version:     version,
		commit:      commit,
		date:        date,
		output:      ui.NewOutput(),
		logOut:      os.Stderr,
		logger:      ui.Logger,
		ask:         ui.AskProject,
		interactive: ui.IsInteractive,
	}

	root := &cobra.Command{
		Use:   "scapp [app-name]",
		Short: "C++ project scaffolding",
		Long: "Creates a new C++ project folder from a template: CMake build files, vcpkg manifest,\n" +
			"editorconfig, git repository and an entry point, each one optional.",
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if envTemplate := os.Getenv("SCAPP_TEMPLATE"); envTemplate != "" && app.templateDir == "" {
				app.templateDir = envTemplate
			}
			if envDebug := os.Getenv("SCAPP_DEBUG"); !cmd.Flags().Changed("debug") && envDebug != "" && envDebug != "0" && envDebug != "false" {
				app.debug = true
			}
			if app.noColor || os.Getenv("SCAPP_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
				app.output.SetNoColor(true)
			}
			app.logger = ui.SetupLogging(app.logOut, app.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runNew(cmd.Context(), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&app.debug, "debug", false, "enable debug logging (overrides SCAPP_DEBUG)")
	root.PersistentFlags().BoolVar(&app.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVar(&app.configPath, "config", "", "defaults file (default: "+config.DefaultsPath()+")")
	root.PersistentFlags().StringVar(&app.templateDir, "template", "", "template directory to copy instead of the built-in one (overrides SCAPP_TEMPLATE)")

	root.Flags().StringVar(&app.workDir, "dir", ".", "directory the project folder is created in")
	root.Flags().StringVar(&app.folder, "folder", "", "project folder name (default: the app name)")
	root.Flags().StringVar(&app.standard, "std", "", "C++ standard, e.g. 20 or c++20")
	root.Flags().BoolVarP(&app.yes, "yes", "y", false, "accept the defaults without prompting (requires app-name)")

	root.AddCommand(
		app.newConfigCmd(),
		app.newDoctorCmd(),
		app.newVersionCmd(),
	)

	app.rootCmd = root
	return app
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.rootCmd.ExecuteContext(context.Background())
}

// getConfigPath returns the effective defaults file location.
func (a *App) getConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.DefaultsPath()
}

// getTemplateDir returns the effective template directory. Empty means the
// built-in template.
func (a *App) getTemplateDir(d *config.Defaults) string {
	if a.templateDir != "" {
		return a.templateDir
	}
	if d != nil {
		return d.TemplateDir
	}
	return ""
}

// newInitializer returns the repository initializer for this run. The git
// output is only shown in debug mode.
func (a *App) newInitializer() vcs.Initializer {
	if a.initializer != nil {
		return a.initializer
	}
	var out io.Writer
	if a.debug {
		out = a.logOut
	}
	return vcs.Detect(out)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			a.output.Info("scapp %s (commit: %s, built: %s)", a.version, a.commit, a.date)
		},
	}
}

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	// Err is the underlying cause, kept for its hints.
	Err error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// HandleError prints err, followed by any hints attached to it, and returns
// the process exit code.
func (a *App) HandleError(err error) int {
	code := exitcodes.Fatal
	msg := err.Error()
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
		msg = exitErr.Message
	}
	if code == exitcodes.Aborted {
		a.output.Warning("%s", msg)
		return code
	}

	a.output.Error("%s", msg)
	for _, hint := range cerrors.GetAllHints(err) {
		a.output.Hint("%s", hint)
	}
	return code
}

// debugf prints a debug message if debug mode is enabled.
func (a *App) debugf(format string, args ...interface{}) {
	if a.debug {
		a.output.Debug(format, args...)
	}
}
