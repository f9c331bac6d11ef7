package main

import (
	"fmt"

	"github.com/SalahEddineGhamri/gopractice/internal/grid"
	"github.com/SalahEddineGhamri/gopractice/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var gridDelimiter string

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "CSV grid exercises",
}

var gridFilterCmd = &cobra.Command{
	Use:   "filter <input> <output>",
	Short: "Replace zero cells with the median of their neighborhood",
	Long: `Reads a delimiter-separated numeric grid, replaces each zero cell with
the median of its surrounding window (up to 3x3, clamped at the edges), and
writes the filtered grid to the output path.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delim := cfg.Delimiter()
		if gridDelimiter != "" {
			runes := []rune(gridDelimiter)
			if len(runes) != 1 {
				return fmt.Errorf("--delimiter must be a single character, got %q", gridDelimiter)
			}
			delim = runes[0]
		}

		g, err := grid.Read(args[0], delim)
		if err != nil {
			return err
		}
		filtered := grid.Filter(g)
		if err := grid.Write(filtered, args[1], delim); err != nil {
			return err
		}

		logging.Named(logger, "grid").Info("grid filtered",
			zap.String("input", args[0]),
			zap.String("output", args[1]),
			zap.Int("rows", len(filtered)))
		return nil
	},
}

func init() {
	gridFilterCmd.Flags().StringVar(&gridDelimiter, "delimiter", "", "cell delimiter (overrides config)")
	gridCmd.AddCommand(gridFilterCmd)
}
