package main

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/chemviz/internal/editor"
	"github.com/ytget/chemviz/internal/model"
	"github.com/ytget/chemviz/internal/registry"
	"github.com/ytget/chemviz/internal/store"
)

// draftFlags are the editor fields settable from the command line
type draftFlags struct {
	title  string
	typ    string
	metric string
	x      string
	y      string
	theme  string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Widget title")
	cmd.Flags().StringVar(&f.typ, "type", "", "Chart type: bar, line, pie, doughnut, radar, polarArea, scatter")
	cmd.Flags().StringVar(&f.metric, "metric", "", "Metric id (see 'chemviz metrics')")
	cmd.Flags().StringVar(&f.x, "x", "", "Scatter x-axis metric")
	cmd.Flags().StringVar(&f.y, "y", "", "Scatter y-axis metric")
	cmd.Flags().StringVar(&f.theme, "theme", "", "Color theme: blue, green, red, purple, dark")
}

// apply stages the changed flags on e in the order the editor dialog would:
// chart type first so metric normalization sees the final type
func (f *draftFlags) apply(cmd *cobra.Command, e *editor.Editor) error {
	changed := cmd.Flags().Changed

	if changed("type") {
		ct, ok := model.ParseChartType(f.typ)
		if !ok {
			return fmt.Errorf("invalid chart type: %s", f.typ)
		}
		e.SetChartType(ct)
	}
	if changed("metric") {
		ct := e.Draft().Type
		if !registry.Accepts(ct, registry.CategoryOf(f.metric)) {
			return fmt.Errorf("metric %s cannot be shown as a %s chart", f.metric, ct)
		}
		if x, y, ok := registry.SplitScatterMetric(f.metric); ok {
			if err := e.SetXMetric(x); err != nil {
				return err
			}
			if err := e.SetYMetric(y); err != nil {
				return err
			}
		} else {
			e.SetMetric(f.metric)
		}
	}
	if changed("x") {
		if err := checkAxisFlag("x", f.x); err != nil {
			return err
		}
		if err := e.SetXMetric(f.x); err != nil {
			return err
		}
	}
	if changed("y") {
		if err := checkAxisFlag("y", f.y); err != nil {
			return err
		}
		if err := e.SetYMetric(f.y); err != nil {
			return err
		}
	}
	if changed("theme") {
		if _, ok := model.LookupTheme(f.theme); !ok {
			return fmt.Errorf("unknown theme: %s", f.theme)
		}
		e.SetTheme(f.theme)
	}
	if changed("title") {
		e.SetTitle(f.title)
	} else if e.Mode() == editor.ModeCreate {
		e.SetTitle(e.SuggestedTitle())
	}
	return nil
}

// checkAxisFlag accepts only the continuous metrics as scatter axes
func checkAxisFlag(name, metric string) error {
	for _, m := range registry.MetricsOf(model.CategoryContinuous) {
		if m.ID == metric {
			return nil
		}
	}
	return fmt.Errorf("invalid --%s metric: %s (must be a continuous metric, see 'chemviz metrics --type line')", name, metric)
}

func newWidgetsCmd(opts *globalOptions) *cobra.Command {
	widgetsCmd := &cobra.Command{
		Use:   "widgets",
		Short: "List and edit the dashboard widget layout",
	}

	widgetsCmd.AddCommand(
		newWidgetsListCmd(opts),
		newWidgetsAddCmd(opts),
		newWidgetsEditCmd(opts),
		newWidgetsRemoveCmd(opts),
		newWidgetsResetCmd(opts),
	)
	return widgetsCmd
}

// withStore runs fn against the opened store and closes it afterwards
func withStore(opts *globalOptions, fn func(*store.Store) error) error {
	s, closeFn, err := opts.openStore()
	if err != nil {
		return err
	}
	runErr := fn(s)
	if err := closeFn(); err != nil && runErr == nil {
		return err
	}
	return runErr
}

func newWidgetsListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List widgets in render order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(s *store.Store) error {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tMETRIC\tTHEME")
				for _, w := range s.List() {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", w.ID, w.Title, w.Type, w.Metric, w.Theme)
				}
				return tw.Flush()
			})
		},
	}
}

func newWidgetsAddCmd(opts *globalOptions) *cobra.Command {
	flags := &draftFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a widget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(s *store.Store) error {
				e := editor.NewCreate(s)
				if err := flags.apply(cmd, e); err != nil {
					return err
				}
				w, err := e.Commit()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added widget %d: %s\n", w.ID, w.Title)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newWidgetsEditCmd(opts *globalOptions) *cobra.Command {
	flags := &draftFlags{}
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a widget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(opts, func(s *store.Store) error {
				e, err := editor.NewEdit(s, id)
				if err != nil {
					return fmt.Errorf("widget %d: %w", id, err)
				}
				if err := flags.apply(cmd, e); err != nil {
					return err
				}
				w, err := e.Commit()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated widget %d: %s\n", w.ID, w.Title)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newWidgetsRemoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a widget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(opts, func(s *store.Store) error {
				if err := s.Remove(id); err != nil {
					if errors.Is(err, store.ErrLastWidget) {
						return fmt.Errorf("cannot remove widget %d: %w", id, err)
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed widget %d\n", id)
				return nil
			})
		},
	}
}

func newWidgetsResetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the layout with the default widgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(s *store.Store) error {
				if err := s.Reset(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "restored %d default widgets\n", s.Len())
				return nil
			})
		},
	}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid widget id: %s", arg)
	}
	return id, nil
}
