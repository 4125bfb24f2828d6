package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ytget/chemviz/internal/logging"
	"github.com/ytget/chemviz/internal/persist"
	"github.com/ytget/chemviz/internal/platform"
	"github.com/ytget/chemviz/internal/render"
	"github.com/ytget/chemviz/internal/store"
)

// Layout backends available from the command line
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type globalOptions struct {
	storePath string
	backend   string
	logLevel  string
	width     int
	height    int
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "chemviz",
		Short: "Manage dashboard widgets and render equipment charts",
		Long: `chemviz manages the chart widget layout shared with the desktop dashboard
and renders the configured charts for an equipment dataset (JSON, CSV or XLSX).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !logging.SetLevel(opts.logLevel) {
				return fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", opts.logLevel)
			}
			logging.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.storePath, "store", "", "Widget layout file or database (default: app data directory)")
	rootCmd.PersistentFlags().StringVar(&opts.backend, "backend", BackendFile, "Layout backend: file, sqlite")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", render.DefaultWidth, "Chart width in pixels")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", render.DefaultHeight, "Chart height in pixels")

	rootCmd.AddCommand(
		newWidgetsCmd(opts),
		newRenderCmd(opts),
		newSummaryCmd(),
		newConfigsCmd(opts),
		newMetricsCmd(),
	)
	return rootCmd
}

// openStore opens the configured backend and restores the widget store from it
func (o *globalOptions) openStore() (*store.Store, func() error, error) {
	noop := func() error { return nil }

	path := o.storePath
	if path == "" {
		dir, err := platform.GetAppDataDir()
		if err != nil {
			return nil, noop, err
		}
		name := platform.LayoutFileName
		if o.backend == BackendSQLite {
			name = platform.LayoutDBFileName
		}
		path = filepath.Join(dir, name)
	}

	switch o.backend {
	case BackendFile:
		return store.New(persist.NewFile(path)), noop, nil
	case BackendSQLite:
		db, err := persist.OpenSQLite(path, persist.DefaultLayoutKey)
		if err != nil {
			return nil, noop, err
		}
		return store.New(db), db.Close, nil
	default:
		return nil, noop, fmt.Errorf("invalid backend: %s (must be file or sqlite)", o.backend)
	}
}

func (o *globalOptions) renderOptions() []render.Option {
	return []render.Option{render.WithSize(o.width, o.height)}
}
