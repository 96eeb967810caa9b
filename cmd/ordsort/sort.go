package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/adamluzsi/checked/pkg/compare"
	"github.com/adamluzsi/checked/storages/boltstorage"
	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.uber.org/zap"
)

func newSortCommand(a *app) *cobra.Command {
	var (
		flags    orderingFlags
		ordering string
		stable   bool
	)
	cmd := &cobra.Command{
		Use:   "sort [FILE]",
		Short: "Sort the lines of FILE, or of the standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.resolveOrdering(cmd.Context(), cmd, &flags, ordering)
			if err != nil {
				return err
			}
			lines, err := readLines(cmd, args)
			if err != nil {
				return err
			}
			a.logger.Debug("sorting", zap.Int("lines", len(lines)), zap.Bool("stable", stable))
			sort := compare.Sort[[]*string, *string]
			if stable {
				sort = compare.SortStable[[]*string, *string]
			}
			if err := sort(lines, c); err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), lines)
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&ordering, "ordering", "", "name of a saved ordering to use instead of the key flags")
	cmd.Flags().BoolVar(&stable, "stable", true, "keep the input order of equal lines")
	return cmd
}

func (a *app) resolveOrdering(ctx context.Context, cmd *cobra.Command, flags *orderingFlags, name string) (compare.Comparator[*string], error) {
	if name == "" {
		return buildOrdering(a.keys, flags.options(cmd, a.cfg))
	}
	var c compare.Comparator[*string]
	err := a.withStore(func(store *boltstorage.Storage) error {
		o, found, err := store.FindByName(ctx, name)
		if err != nil {
			return err
		}
		if !found {
			return boltstorage.ErrNotFound.F("name: %s", name)
		}
		a.logger.Debug("saved ordering loaded", zap.String("name", name), zap.Stringer("ordering", o.Descriptor))
		c, err = compare.RestoreOrdered[string](o.Descriptor, a.keys)
		return err
	})
	return c, err
}

// maxLineSize is the longest input line that sort accepts.
const maxLineSize = 16 << 20

func readLines(cmd *cobra.Command, args []string) (_ []*string, rErr error) {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer errorkit.Finish(&rErr, f.Close)
		in = f
	}
	var lines []*string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, &line)
			continue
		}
		lines = append(lines, nil)
	}
	return lines, scanner.Err()
}

func writeLines(w io.Writer, lines []*string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		var text string
		if line != nil {
			text = *line
		}
		if _, err := fmt.Fprintln(bw, text); err != nil {
			return err
		}
	}
	return bw.Flush()
}
