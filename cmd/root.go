// Package cmd implements the listmenu command line.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/listmenu/internal/config"
	"github.com/oakwood-commons/listmenu/internal/history"
	"github.com/oakwood-commons/listmenu/internal/ui"
	"github.com/oakwood-commons/listmenu/pkg/logger"
	"github.com/oakwood-commons/listmenu/pkg/menu"
	"github.com/oakwood-commons/listmenu/pkg/settings"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configFile    string
	historyDB     string
	debug         bool
	noColor       bool
	pageSize      int
	maxEntryLines int
	marker        string
	fullBuffer    bool
	filter        string

	ctx context.Context
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{ctx: context.Background()}

	cmd := &cobra.Command{
		Use:   settings.CliBinaryName,
		Short: "Paginated completion menu for a line editor",
		Long: "listmenu edits a single line with a paginated completion menu over your command history.\n\n" +
			"Press tab to open the menu, type to filter it, and enter to accept a suggestion.\n" +
			"Type \"!N\" while the menu is open to jump to row N of the current page.",
		Example:       "  listmenu\n  listmenu history import < ~/.bash_history\n  listmenu render --buffer git --event next --width 60 --height 12",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			run := settings.NewCliParams()
			run.MinLogLevel = settings.LogLevel(opts.debug)
			run.NoColor = opts.noColor
			run.ConfigFile = opts.configFile
			run.HistoryDB = opts.historyDB

			lgr := logger.Get(run.MinLogLevel)
			lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
			ctx := logger.WithLogger(context.Background(), lgr)
			opts.ctx = settings.IntoContext(ctx, run)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, opts)
		},
	}
	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config-file", "", "path to a YAML or TOML config file")
	pf.StringVar(&opts.historyDB, "history-db", "", "path to the history database (default from config)")
	pf.BoolVar(&opts.debug, "debug", false, "log menu transitions to stderr")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable color output")
	pf.IntVar(&opts.pageSize, "page-size", 0, "entries fetched per page step (default from config)")
	pf.IntVar(&opts.maxEntryLines, "max-entry-lines", 0, "lines shown per multi-line entry (default from config)")
	pf.StringVar(&opts.marker, "marker", "", "menu indicator shown before the prompt (default from config)")
	pf.BoolVar(&opts.fullBuffer, "full-buffer", false, "query with the whole line instead of the text typed since the menu opened")
	pf.StringVar(&opts.filter, "filter", "", "CEL predicate over value, description and seq that history entries must satisfy")

	cmd.AddCommand(
		newRenderCmd(opts),
		newHistoryCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func (o *rootOptions) logger() logr.Logger {
	return *logger.FromContext(o.ctx)
}

func (o *rootOptions) settings() *settings.Run {
	return settings.FromContextOrDefault(o.ctx)
}

func runInteractive(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	store, err := openHistory(cfg, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	completer, err := historyCompleter(store, cfg, opts)
	if err != nil {
		return err
	}

	log := opts.logger()
	m := menu.New(cfg.MenuOptions(log.WithValues(logger.MenuKey, *cfg.Menu.Name))...)
	model := ui.NewModel(m, completer, ui.TerminalScreen(os.Stdout, 0, 0))
	model.Recorder = store
	model.NoColor = !opts.settings().UseColor(os.Stdout)
	model.Log = log

	final, err := ui.RunModel(model)
	if err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	log.V(1).Info("session ended", "submitted", len(final.Submitted))
	return nil
}

func openHistory(cfg config.Config, opts *rootOptions) (*history.Store, error) {
	path := opts.historyDB
	if path == "" {
		var err error
		if path, err = cfg.HistoryPath(); err != nil {
			return nil, err
		}
	}
	if path == "" {
		return nil, fmt.Errorf("no history database configured; set history.path or --history-db")
	}
	return history.Open(path, opts.logger())
}
