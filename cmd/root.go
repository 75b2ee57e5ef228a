package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jeandeaual/go-locale"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/egoavara/spin-hub/internal/acquire"
	"github.com/egoavara/spin-hub/internal/config"
	"github.com/egoavara/spin-hub/internal/git"
	"github.com/egoavara/spin-hub/internal/hub"
	"github.com/egoavara/spin-hub/internal/i18n"
	"github.com/egoavara/spin-hub/internal/log"
	"github.com/egoavara/spin-hub/internal/process"
	"github.com/egoavara/spin-hub/internal/selection"
	"github.com/egoavara/spin-hub/internal/tui"
	"github.com/egoavara/spin-hub/internal/ui"
)

// App holds the I/O streams and collaborators shared by all commands.
// Nil collaborators are replaced with the real implementations.
type App struct {
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Runner  process.Runner
	Git     git.Client
	Port    selection.Port
	WorkDir string

	// set by flags
	cfgFile string
	verbose bool
	debug   bool
	yes     bool

	cfg      *config.Config
	cleanups []func()
}

// NewApp returns an App wired to the process's stdio
func NewApp() *App {
	return &App{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// NewRootCmd builds the command tree for app
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "spin-hub",
		Short:         "Find and use content from the Spin Hub",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `spin-hub finds templates, samples and plugins published on the Spin Hub
and brings them to your machine.

Commands:
  search          Search for content on the Hub
  new             Create an application from a template on the Hub
  clone           Clone a sample from the Hub
  run             Clone a sample and run or deploy it with spin
  install-plugin  Install a plugin from the Hub
  config          Show configuration`,
		PersistentPreRunE: app.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			app.teardown()
		},
	}
	rootCmd.SetIn(app.In)
	rootCmd.SetOut(app.Out)
	rootCmd.SetErr(app.Err)

	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "",
		"config file (default: ~/.config/spin-hub/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&app.debug, "debug", false, "write a debug log")
	rootCmd.PersistentFlags().BoolVarP(&app.yes, "yes", "y", false, "answer yes to confirmation prompts")

	rootCmd.AddCommand(
		newSearchCmd(app),
		newNewCmd(app),
		newCloneCmd(app),
		newRunCmd(app),
		newInstallPluginCmd(app),
		newConfigCmd(app),
		newVersionCmd(app),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() {
	app := NewApp()
	if err := NewRootCmd(app).Execute(); err != nil {
		app.teardown()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *App) setup(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := config.Configure(v, a.cfgFile); err != nil {
		return err
	}
	if cmd.Flags().Changed("debug") {
		v.Set("debug", a.debug)
	}
	cfg, err := config.Unmarshal(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := a.initLogging(); err != nil {
		return err
	}
	i18n.SetLocale(resolveLocale(cfg.Locale))

	log.Info(log.CatConfig, "invocation",
		"id", uuid.NewString(),
		"cmd", cmd.CommandPath(),
		"args", args,
		"config", v.ConfigFileUsed())

	if cfg.Process.Timeout > 0 {
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Process.Timeout)
		a.cleanups = append(a.cleanups, cancel)
		cmd.SetContext(ctx)
	}
	return nil
}

func (a *App) initLogging() error {
	switch {
	case a.cfg.Debug:
		if err := config.EnsureDir(filepath.Dir(a.cfg.LogFile)); err != nil {
			return err
		}
		closeLog, err := log.Init(a.cfg.LogFile, "spin-hub")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		a.cleanups = append(a.cleanups, closeLog, log.Reset)
	case a.verbose:
		log.InitWriter(a.Err, log.LevelInfo)
		a.cleanups = append(a.cleanups, log.Reset)
	}
	return nil
}

func (a *App) teardown() {
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
	a.cleanups = nil
}

// resolveLocale returns the configured locale, detecting the system locale for "auto"
func resolveLocale(configured string) string {
	if configured != "auto" {
		return configured
	}
	userLocale, err := locale.GetLocale()
	if err != nil || userLocale == "" {
		return "en-US"
	}
	return userLocale
}

func (a *App) runner() process.Runner {
	if a.Runner == nil {
		a.Runner = process.NewExecRunner()
	}
	return a.Runner
}

func (a *App) git() git.Client {
	if a.Git == nil {
		a.Git = git.NewClient(a.runner())
	}
	return a.Git
}

func (a *App) port() selection.Port {
	if a.Port == nil {
		a.Port = tui.NewPort(a.In, a.Out)
	}
	if a.yes {
		return selection.AutoConfirm{Port: a.Port}
	}
	return a.Port
}

func (a *App) workDir() (string, error) {
	if a.WorkDir != "" {
		return a.WorkDir, nil
	}
	return os.Getwd()
}

func (a *App) printer() ui.Printer {
	return ui.Printer{Out: a.Out}
}

func (a *App) catalog(ctx context.Context) ([]hub.Entry, error) {
	client := hub.NewClient(a.cfg.Hub.BaseURL, a.cfg.Hub.CacheTTL, hub.WithCacheFile(a.cfg.Hub.CacheFile))
	return client.Index(ctx)
}

func (a *App) registry() *acquire.Registry {
	return acquire.NewRegistry(acquire.Env{
		Git:         a.git(),
		Runner:      a.runner(),
		SpinBinPath: a.cfg.Spin.BinPath,
		SpinVersion: a.cfg.Spin.Version,
	})
}

// rawOutput reports whether output should skip terminal rendering
func (a *App) rawOutput() bool {
	f, ok := a.Out.(*os.File)
	return !ok || !ui.IsTerminal(f)
}
