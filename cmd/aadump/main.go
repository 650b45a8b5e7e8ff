// Command aadump replays operation scripts against an ordered map and
// shows the resulting AA tree.
//
// Usage:
//
//	aadump walk -- 3 4 0 7 -4 5=50
//	aadump dot --out tree.dot -- 1 2 3 -2
//	aadump soak --ops 1000000 --keys 5000
//
// Script tokens are k or +k (insert k→k), k=v (insert k→v) and -k (erase k).
// Use "--" before a script that starts with an erase so it is not taken
// for a flag.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jba/aamap"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		logLevel string
		log      zerolog.Logger
	)
	root := &cobra.Command{
		Use:          "aadump",
		Short:        "Inspect the AA tree behind github.com/jba/aamap",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("bad --log-level: %w", err)
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(lvl).With().Timestamp().Logger()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")

	logger := func() *zerolog.Logger { return &log }
	root.AddCommand(walkCmd(logger), dotCmd(logger), soakCmd(logger))
	return root
}

// build parses args as a script and applies it to a new map.
func build(log *zerolog.Logger, args []string) (*aamap.Map[int, int], error) {
	ops, err := parseOps(args)
	if err != nil {
		return nil, err
	}
	var m aamap.Map[int, int]
	added, removed := apply(&m, ops)
	log.Debug().Int("ops", len(ops)).Int("added", added).Int("removed", removed).
		Int("len", m.Len()).Msg("applied script")
	if err := m.Check(); err != nil {
		return nil, err
	}
	return &m, nil
}

func walkCmd(logger func() *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "walk [ops...]",
		Short: "Apply ops and print the keys in both directions",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := build(logger(), args)
			if err != nil {
				return err
			}
			return writeWalk(cmd.OutOrStdout(), m)
		},
	}
}

func writeWalk(w io.Writer, m *aamap.Map[int, int]) error {
	if _, err := fmt.Fprint(w, "forward:"); err != nil {
		return err
	}
	for it := m.Begin(); !it.AtEnd(); it.Next() {
		fmt.Fprintf(w, " %d=%d", it.Key(), it.Value())
	}
	fmt.Fprint(w, "\nbackward:")
	it := m.End()
	for it.Prev(); !it.AtEnd(); it.Prev() {
		fmt.Fprintf(w, " %d=%d", it.Key(), it.Value())
	}
	_, err := fmt.Fprintln(w)
	return err
}

func dotCmd(logger func() *zerolog.Logger) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "dot [ops...]",
		Short: "Apply ops and write the tree as a Graphviz graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := build(logger(), args)
			if err != nil {
				return err
			}
			if out == "" {
				return m.WriteDot(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating dot file: %w", err)
			}
			if err := m.WriteDot(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing dot file: %w", err)
			}
			logger().Info().Str("file", out).Int("nodes", m.Len()).Msg("wrote dot graph")
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "file to write the graph to (default stdout)")
	return cmd
}
