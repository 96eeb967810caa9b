package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/adamluzsi/checked/pkg/compare"
	"github.com/adamluzsi/checked/storages/boltstorage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSaveCommand(a *app) *cobra.Command {
	var flags orderingFlags
	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the ordering built from the key flags under NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildOrdering(a.keys, flags.options(cmd, a.cfg))
			if err != nil {
				return err
			}
			d, err := compare.Describe(c)
			if err != nil {
				return err
			}
			o := boltstorage.Ordering{Name: args[0], Descriptor: d}
			if err := a.withStore(func(store *boltstorage.Storage) error {
				return store.Create(cmd.Context(), &o)
			}); err != nil {
				return err
			}
			a.logger.Debug("ordering saved", zap.String("id", o.ID), zap.String("name", o.Name))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), o.ID)
			return err
		},
	}
	flags.bind(cmd)
	return cmd
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the saved orderings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store *boltstorage.Storage) error {
				all, err := store.FindAll(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, o := range all {
					fmt.Fprintf(w, "%s\t%s\t%s\n", o.ID, o.Name, o.Descriptor)
				}
				return w.Flush()
			})
		},
	}
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved ordering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store *boltstorage.Storage) error {
				if err := store.DeleteByID(cmd.Context(), args[0]); err != nil {
					return err
				}
				a.logger.Debug("ordering deleted", zap.String("id", args[0]))
				return nil
			})
		},
	}
}
