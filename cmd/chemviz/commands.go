package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/chemviz/internal/dataset"
	"github.com/ytget/chemviz/internal/model"
	"github.com/ytget/chemviz/internal/platform"
	"github.com/ytget/chemviz/internal/registry"
	"github.com/ytget/chemviz/internal/render"
	"github.com/ytget/chemviz/internal/store"
)

func newRenderCmd(opts *globalOptions) *cobra.Command {
	var outDir string
	var open, view bool

	cmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "Render every widget to PNG files",
		Long: `Render every configured widget for the given dataset. Without a dataset the
charts are written as empty placeholders.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ds *model.Dataset
			if len(args) == 1 {
				var err error
				if ds, err = dataset.Load(args[0]); err != nil {
					return err
				}
			}

			if outDir == "" {
				dir, err := platform.DefaultExportDir()
				if err != nil {
					return err
				}
				outDir = dir
			}

			return withStore(opts, func(s *store.Store) error {
				paths, err := render.ExportAll(outDir, ds, s.List(), opts.renderOptions()...)
				for _, p := range paths {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				if err != nil {
					return err
				}
				if len(paths) == 0 {
					return nil
				}
				if view {
					if err := platform.OpenFileWithDefaultApp(paths[0]); err != nil {
						return err
					}
				}
				if open {
					return platform.OpenFileInManager(paths[0])
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "", "Output directory (default: app export directory)")
	cmd.Flags().BoolVar(&open, "open", false, "Reveal the output directory when done")
	cmd.Flags().BoolVar(&view, "view", false, "Open the first chart in the default image viewer")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "summary dataset",
		Short: "Print headline statistics for a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, dataset.Summarize(ds), pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newConfigsCmd(opts *globalOptions) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "configs",
		Short: "Print the normalized widget configurations used by report generators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(s *store.Store) error {
				return writeJSON(cmd, s.Normalized(), pretty)
			})
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newMetricsCmd() *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "List metrics, optionally only those a chart type can show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var metrics []model.Metric
			if typ == "" {
				for _, c := range model.Categories {
					metrics = append(metrics, registry.MetricsOf(c)...)
				}
			} else {
				ct, ok := model.ParseChartType(typ)
				if !ok {
					return fmt.Errorf("invalid chart type: %s", typ)
				}
				metrics = registry.CompatibleMetrics(ct)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY")
			for _, m := range metrics {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", m.ID, m.Name, m.Category)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&typ, "type", "", "Only metrics compatible with this chart type")
	return cmd
}

func writeJSON(cmd *cobra.Command, v interface{}, pretty bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return nil
}
