package main

import (
	"github.com/adamluzsi/checked/pkg/compare"
	"github.com/adamluzsi/checked/storages/boltstorage"
	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.uber.org/zap"
)

type app struct {
	configPath string
	storePath  string
	verbose    bool

	cfg    Config
	logger *zap.Logger
	keys   compare.Registry[*string]
}

// NewRootCommand assembles the ordsort command tree.
func NewRootCommand() *cobra.Command {
	a := &app{
		logger: zap.NewNop(),
		keys:   keyRegistry(),
	}

	root := &cobra.Command{
		Use:   "ordsort",
		Short: "Sort lines with composable orderings",
		Long: `ordsort sorts text lines by one or more sort keys.

Sort keys: natural, length, numeric, fold.
Empty lines are missing values, --nulls decides where they go.
Orderings can be saved under a name and reused with --ordering.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().StringVar(&a.storePath, "store", "", "path to the ordering database (default "+defaultStorePath+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSortCommand(a),
		newSaveCommand(a),
		newListCommand(a),
		newDeleteCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		a.logger = logger
	}
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.storePath != "" {
		cfg.Store = a.storePath
	}
	a.cfg = cfg
	a.logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("store", cfg.Store),
		zap.Strings("keys", cfg.Keys))
	return nil
}

// withStore opens the ordering database for the duration of blk.
func (a *app) withStore(blk func(*boltstorage.Storage) error) (rErr error) {
	store, err := boltstorage.New(a.cfg.Store)
	if err != nil {
		return err
	}
	defer errorkit.Finish(&rErr, store.Close)
	a.logger.Debug("store opened", zap.String("path", a.cfg.Store))
	return blk(store)
}

// orderingFlags are shared by the commands that build an ordering from flags.
type orderingFlags struct {
	keys    []string
	reverse bool
	nulls   string
}

func (f *orderingFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.keys, "key", "k", nil, "sort key, repeatable: natural, length, numeric, fold")
	cmd.Flags().BoolVarP(&f.reverse, "reverse", "r", false, "reverse the order of the keys")
	cmd.Flags().StringVar(&f.nulls, "nulls", "", "where empty lines go: first, last or none (default last)")
}

// options merges the flags over the configuration.
func (f *orderingFlags) options(cmd *cobra.Command, cfg Config) orderingOptions {
	opts := orderingOptions{Keys: cfg.Keys, Reverse: cfg.Reverse, Nulls: cfg.Nulls}
	if cmd.Flags().Changed("key") {
		opts.Keys = f.keys
	}
	if cmd.Flags().Changed("reverse") {
		opts.Reverse = f.reverse
	}
	if cmd.Flags().Changed("nulls") {
		opts.Nulls = f.nulls
	}
	return opts
}
