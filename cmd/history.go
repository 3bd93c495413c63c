package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/listmenu/internal/limiter"
)

func newHistoryCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage the command history the menu completes from",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newHistoryAddCmd(root), newHistoryListCmd(root), newHistoryImportCmd(root),
		newHistoryGetCmd(root), newHistoryDeleteCmd(root))
	return cmd
}

func newHistoryAddCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Append a line to the history",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			store, err := openHistory(cfg, root)
			if err != nil {
				return err
			}
			defer store.Close()

			seq, err := store.Add(strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), seq)
			return err
		},
	}
}

func newHistoryListCmd(root *rootOptions) *cobra.Command {
	var window limiter.Config
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print history entries, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := window.Validate(); err != nil {
				return err
			}
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			store, err := openHistory(cfg, root)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(window)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				if _, err := fmt.Fprintf(out, "%5d  %s\n", e.Seq, e.Text); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&window.Limit, "limit", 0, "print at most N entries")
	f.IntVar(&window.Offset, "offset", 0, "skip the first N entries")
	f.IntVar(&window.Tail, "tail", 0, "print the last N entries (mutually exclusive with --limit; ignores --offset)")
	return cmd
}

func newHistoryImportCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Append every non-blank line from stdin to the history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			store, err := openHistory(cfg, root)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Import(cmd.InOrStdin())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries\n", n)
			return err
		},
	}
}

func parseSeq(arg string) (int, error) {
	seq, err := strconv.Atoi(arg)
	if err != nil || seq <= 0 {
		return 0, fmt.Errorf("sequence number must be a positive integer, got %q", arg)
	}
	return seq, nil
}

func newHistoryGetCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <seq>",
		Short: "Print the history entry with the given sequence number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSeq(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			store, err := openHistory(cfg, root)
			if err != nil {
				return err
			}
			defer store.Close()

			text, err := store.Get(seq)
			if err != nil {
				return fmt.Errorf("history entry %d: %w", seq, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
}

func newHistoryDeleteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <seq>",
		Short: "Remove the history entry with the given sequence number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSeq(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			store, err := openHistory(cfg, root)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(seq); err != nil {
				return fmt.Errorf("history entry %d: %w", seq, err)
			}
			n, err := store.Len()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %d, %d entries left\n", seq, n)
			return err
		},
	}
}
