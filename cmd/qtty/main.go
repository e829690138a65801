// Command qtty is a unit-conversion tool over the qtty registry.
//
//	qtty convert 5 km m        # one-shot conversion
//	qtty units                 # list the registered units
//	qtty tui                   # interactive converter
//
// Configuration is read from QTTY_* environment variables (QTTY_PRECISION,
// QTTY_NO_COLOR) and overridden by flags.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/qttylib/qtty"
	"github.com/qttylib/qtty/errors"
	"github.com/qttylib/qtty/registry"
)

var (
	flagJSON      bool
	flagVerbose   bool
	flagPrecision int
)

func main() {
	viper.SetEnvPrefix("QTTY")
	viper.AutomaticEnv()
	viper.SetDefault("precision", -1)

	root := &cobra.Command{
		Use:           "qtty",
		Short:         "Convert physical quantities between units",
		Version:       qtty.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !cmd.Root().PersistentFlags().Changed("precision") {
				flagPrecision = viper.GetInt("precision")
			}
			if flagVerbose {
				logger, err := zap.NewDevelopment()
				if err == nil {
					registry.SetLogger(logger)
				}
			}
		},
	}
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON output")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().IntVarP(&flagPrecision, "precision", "p", -1, "digits after the decimal point (-1 for shortest)")

	root.AddCommand(convertCmd(), unitsCmd(), tuiCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between two units of the same dimension",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.InvalidInput(errors.PhaseParse, fmt.Sprintf("%q is not a number", args[0]))
			}
			src, ok := registry.Parse(args[1])
			if !ok {
				return errors.New(errors.PhaseParse, errors.KindUnknownUnit).Src(args[1]).Build()
			}
			dst, ok := registry.Parse(args[2])
			if !ok {
				return errors.New(errors.PhaseParse, errors.KindUnknownUnit).Dst(args[2]).Build()
			}

			converted, err := registry.ConvertValue(value, src, dst)
			if err != nil {
				return err
			}

			if flagJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"value": converted,
					"unit":  registry.Name(dst),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatValue(converted), registry.Name(dst))
			return nil
		},
	}
}

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the registered units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagJSON {
				type row struct {
					ID        int32   `json:"id"`
					Name      string  `json:"name"`
					Dimension string  `json:"dimension"`
					Scale     float64 `json:"scale"`
				}
				var rows []row
				for _, id := range registry.Units() {
					meta, _ := registry.Lookup(id)
					rows = append(rows, row{
						ID:        int32(id),
						Name:      meta.Name,
						Dimension: meta.Dim.String(),
						Scale:     meta.Scale,
					})
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(rows)
			}

			header := headerStyle()
			fmt.Fprintln(cmd.OutOrStdout(), header.Render(fmt.Sprintf("%4s  %-8s %-14s %s", "ID", "NAME", "DIMENSION", "SCALE")))
			for _, id := range registry.Units() {
				meta, _ := registry.Lookup(id)
				name := meta.Name
				if name == "" {
					name = "(unitless)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-8s %-14s %g\n", int32(id), name, meta.Dim, meta.Scale)
			}
			return nil
		},
	}
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive unit converter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive()
		},
	}
}

// headerStyle styles table headers, falling back to plain text when stdout is
// not a terminal or QTTY_NO_COLOR is set.
func headerStyle() lipgloss.Style {
	if viper.GetBool("no_color") || !term.IsTerminal(int(os.Stdout.Fd())) {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
}

func formatValue(v float64) string {
	if flagPrecision >= 0 {
		return strconv.FormatFloat(v, 'f', flagPrecision, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
