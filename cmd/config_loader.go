package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/listmenu/internal/cel"
	"github.com/oakwood-commons/listmenu/internal/config"
	"github.com/oakwood-commons/listmenu/internal/history"
)

// loadConfig resolves and loads the config file, then applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	path := config.ResolvePath(opts.configFile)
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		opts.logger().V(1).Info("config loaded", "path", path)
	}

	flags := cmd.Flags()
	if flags.Changed("page-size") {
		cfg.Menu.PageSize = &opts.pageSize
	}
	if flags.Changed("max-entry-lines") {
		cfg.Menu.MaxEntryLines = &opts.maxEntryLines
	}
	if flags.Changed("marker") {
		cfg.Menu.Marker = &opts.marker
	}
	if flags.Changed("full-buffer") {
		only := !opts.fullBuffer
		cfg.Menu.OnlyBufferDifference = &only
	}
	if flags.Changed("filter") {
		cfg.History.Filter = opts.filter
	}
	if flags.Changed("history-db") {
		cfg.History.Path = opts.historyDB
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// historyCompleter builds the history completer with the configured filter.
func historyCompleter(store *history.Store, cfg config.Config, opts *rootOptions) (*history.Completer, error) {
	completerOpts := []history.CompleterOption{history.WithLogger(opts.logger())}
	if cfg.History.Filter != "" {
		p, err := cel.Compile(cfg.History.Filter)
		if err != nil {
			return nil, fmt.Errorf("history filter: %w", err)
		}
		completerOpts = append(completerOpts, history.WithFilter(p))
	}
	return history.NewCompleter(store, completerOpts...), nil
}
