package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/store/memstore"
	"github.com/idilsaglam/shoplist/internal/tui"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// App carries root flags and the loaded config to subcommands.
type App struct {
	ConfigPath string
	Theme      string
	NoColor    bool

	cfg config.Config
}

// ExitError carries a process exit status out of a command.
// 1 is a runtime failure, 2 a usage error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "shoplist",
		Short:         "A two-list shopping list for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive list
  shoplist

  # Replay a script and print the result
  shoplist run groceries.txt
  printf 'add Milk\nmove pending 1\n' | shoplist run
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.ConfigPath)
		if err != nil {
			return err
		}
		if t := strings.TrimSpace(app.Theme); t != "" {
			cfg.Theme = strings.ToLower(t)
		}
		app.cfg = cfg
		ui.SetTheme(cfg.Theme)
		if app.NoColor {
			ui.SetColorForcing(false, true)
		}
		return nil
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: 2, Err: err}
	})

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("SHOPLIST_CONFIG", ""), "Config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", envOr("SHOPLIST_THEME", ""), "Theme ("+strings.Join(ui.Themes, "|")+")")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable coloured output")

	cmd.AddCommand(newRunCmd(app))

	return cmd
}

// Execute runs the root command and maps the outcome to an exit status.
func Execute(ctx context.Context, args []string) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		if exit.Err != nil {
			ui.Fail(cmd.ErrOrStderr(), exit.Err.Error())
		}
		return exit.Code
	}
	ui.Fail(cmd.ErrOrStderr(), err.Error())
	return 1
}

func newStore(cfg config.Config) *memstore.Store {
	return memstore.New(
		memstore.WithSeed(cfg.Seed...),
		memstore.WithPhotoName(cfg.PhotoName),
	)
}

func runTUI(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	err := tui.Run(ctx, newStore(app.cfg), tui.Options{
		Theme:     app.cfg.Theme,
		PickerDir: app.cfg.PickerDir,
		LogFile:   app.cfg.LogFile,
		NoColor:   app.NoColor,
	})
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// openLog sends the standard logger to path, or discards it when path is empty.
func openLog(path string) (func(), error) {
	if strings.TrimSpace(path) == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.SetPrefix("shoplist ")
	return func() { _ = f.Close() }, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
