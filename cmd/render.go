package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/listmenu/internal/editor"
	"github.com/oakwood-commons/listmenu/internal/ui"
	"github.com/oakwood-commons/listmenu/pkg/completion"
	"github.com/oakwood-commons/listmenu/pkg/logger"
	"github.com/oakwood-commons/listmenu/pkg/menu"
)

// typePrefix marks an --event that inserts text at the cursor and sends Edit.
const typePrefix = "type:"

type renderOptions struct {
	buffer string
	events []string
	values []string
	width  int
	height int
	color  bool
	accept bool
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the menu after replaying events",
		Long: "Activate the menu over --buffer, apply each --event in order and print the menu.\n\n" +
			"Events: " + strings.Join(menu.EventNames(), ", ") + ", or " + typePrefix + "<text> to type text.\n" +
			"Suggestions come from --value when given, otherwise from the history database.",
		Example: "  listmenu render --buffer 'git ' --event next --event next-page\n" +
			"  listmenu render --value alpha --value beta --event type:al\n" +
			"  listmenu render --value alpha --event next --accept",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, root, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.buffer, "buffer", "", "initial line buffer; the cursor starts at its end")
	f.StringArrayVar(&opts.events, "event", nil, "menu event to apply after activation (repeatable)")
	f.StringArrayVar(&opts.values, "value", nil, "suggestion to complete from instead of history (repeatable)")
	f.IntVar(&opts.width, "width", 0, "screen width in columns (default: terminal width or 80)")
	f.IntVar(&opts.height, "height", 0, "screen height in rows (default: terminal height or 24)")
	f.BoolVar(&opts.color, "color", false, "render with ANSI styles")
	f.BoolVar(&opts.accept, "accept", false, "accept the selected suggestion and print the resulting line")
	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions) error {
	if opts.width < 0 || opts.height < 0 {
		return fmt.Errorf("--width and --height must be non-negative")
	}

	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}

	var completer completion.Completer
	if len(opts.values) > 0 {
		completer = completion.NewListCompleter(opts.values...)
	} else {
		store, err := openHistory(cfg, root)
		if err != nil {
			return err
		}
		defer store.Close()
		if completer, err = historyCompleter(store, cfg, root); err != nil {
			return err
		}
	}

	log := root.logger().WithValues(logger.MenuKey, *cfg.Menu.Name)
	m := menu.New(cfg.MenuOptions(log)...)
	buf := editor.New(opts.buffer)
	screen := ui.TerminalScreen(os.Stdout, opts.width, opts.height)

	m.MenuEvent(menu.Activate)
	m.UpdateWorkingDetails(buf, completer, screen)
	for _, name := range opts.events {
		if text, ok := strings.CutPrefix(name, typePrefix); ok {
			buf.InsertString(text)
			m.MenuEvent(menu.Edit)
		} else {
			e, err := menu.ParseEvent(name)
			if err != nil {
				return fmt.Errorf("--event: %w", err)
			}
			m.MenuEvent(e)
		}
		m.UpdateWorkingDetails(buf, completer, screen)
	}

	out := cmd.OutOrStdout()
	if opts.accept {
		m.ReplaceInBuffer(buf)
		_, err = fmt.Fprintln(out, buf.Buffer())
		return err
	}

	useColor := opts.color && !root.settings().NoColor
	rendered := m.MenuString(screen.Height, useColor)
	_, err = fmt.Fprintln(out, strings.ReplaceAll(rendered, "\r\n", "\n"))
	return err
}
