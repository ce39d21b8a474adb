// Seer - a tarot reading shell for the terminal
package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnconnor-sec/seer-go/internal/account"
	"github.com/johnconnor-sec/seer-go/internal/config"
	"github.com/johnconnor-sec/seer-go/internal/errors"
	"github.com/johnconnor-sec/seer-go/internal/menus"
	"github.com/johnconnor-sec/seer-go/internal/narrator"
	"github.com/johnconnor-sec/seer-go/internal/output"
	"github.com/johnconnor-sec/seer-go/internal/store"
	"github.com/johnconnor-sec/seer-go/internal/tarot"
	"github.com/johnconnor-sec/seer-go/internal/ui"
)

// Build information - set by linker flags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type globalFlags struct {
	configPath string
	backend    string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		handleError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "seer",
		Short: "The Seer - tarot readings in your terminal",
		Long: `The Seer guards the ancient cards. Register, draw a daily card or a
three-card spread, and revisit past readings.

Menu controls:
  ↑/↓ or k/j    Move the highlight
  Enter         Choose
  Esc           Go back`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			return runShell(cfg)
		},
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "configuration file (default is $XDG_CONFIG_HOME/seer/config.yml)")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "terminal backend: screen or stream")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd(), newConfigCmd(flags), newHistoryCmd(flags), newCardsCmd())
	return root
}

// path resolves --config, then the usual search locations.
func (g *globalFlags) path() (string, error) {
	if g.configPath != "" {
		return config.ExpandPath(g.configPath), nil
	}
	return config.FindConfigPath()
}

// load reads the configuration and applies flag overrides.
func (g *globalFlags) load() (*config.Config, error) {
	path, err := g.path()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}

	if g.backend != "" {
		cfg.Display.Backend = g.backend
	}
	if g.logLevel != "" {
		cfg.General.LogLevel = g.logLevel
	}
	if g.backend != "" || g.logLevel != "" {
		if err := cfg.Validate(); err != nil {
			return nil, errors.Wrap(err, errors.ConfigInvalid, "Invalid command line override").
				WithDetails(err.Error())
		}
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	formatter := output.NewFormatter(w)

	formatter.Header(fmt.Sprintf("The Seer %s", version))

	table := formatter.Table()
	table.Headers("Component", "Version")
	table.Row("Seer", version)
	table.Row("Git commit", commit)
	table.Row("Build date", date)
	table.Row("Go version", runtime.Version())
	table.Row("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH))
	table.Print()
}

// closingTerminal is a backend the shell must release on exit.
type closingTerminal interface {
	ui.Terminal
	Close() error
}

func openTerminal(backend string) (closingTerminal, error) {
	if backend == config.BackendStream {
		t, err := ui.OpenStream(os.Stdin, os.Stdout)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	t, err := ui.OpenScreen()
	if err != nil {
		return nil, err
	}
	return t, nil
}

func runShell(cfg *config.Config) error {
	logger, err := output.CreateFileLogger(cfg.LogFile(), cfg.LogLevel(), output.LogFormatJSON)
	if err != nil {
		return errors.Wrap(err, errors.StorageWrite, "Failed to open log file").
			WithDetails(fmt.Sprintf("Path: %s", cfg.LogFile())).
			WithSuggestion("Set general.log_file to a writable location")
	}
	defer logger.Close()
	output.SetGlobalLogger(logger)

	data, err := store.NewDataService(cfg.DataDir(), logger)
	if err != nil {
		return err
	}

	term, err := openTerminal(cfg.Display.Backend)
	if err != nil {
		return err
	}
	defer term.Close()

	shellLog := logger.Component("shell")
	shellLog.Info("shell started", map[string]any{"backend": cfg.Display.Backend, "version": version})
	start := time.Now()

	engine := ui.NewEngine(term,
		ui.WithKeyMap(ui.NewKeyMap(cfg.Keys.Up, cfg.Keys.Down, cfg.Keys.Select, cfg.Keys.Cancel)),
		ui.WithLogger(logger))
	rng := rand.New(rand.NewPCG(uint64(start.UnixNano()), rand.Uint64()))

	app := &menus.App{
		Engine:          engine,
		Narrator:        narrator.New(engine, cfg.Display.TypingSpeed, rng),
		Accounts:        account.NewManager(data, logger),
		Readings:        data,
		Spreads:         tarot.NewSpreadService(),
		Deck:            tarot.NewDeck(),
		Rand:            rng,
		Logger:          logger,
		Prefix:          cfg.Display.Prefix,
		Speed:           cfg.Display.TypingSpeed,
		ConfirmOnEscape: cfg.Menus.ConfirmOnEscape,
	}

	_, err = menus.NewWelcomeMenu(app).Show()
	shellLog.LogDuration("shell session", time.Since(start))
	return err
}

func handleError(w io.Writer, err error) {
	formatter := output.NewFormatter(w)

	seerErr, ok := err.(*errors.SeerError)
	if !ok {
		formatter.Error("Unexpected error: %v", err)
		return
	}

	formatter.Error("%s", seerErr.Message)
	if seerErr.Details != "" {
		formatter.Info("%s", seerErr.Details)
	}
	for _, s := range seerErr.Suggestions {
		formatter.List("%s", s)
	}
}
