package main

import (
	"fmt"

	"github.com/SalahEddineGhamri/gopractice/internal/fileop"
	"github.com/SalahEddineGhamri/gopractice/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fileopCmd = &cobra.Command{
	Use:   "fileop",
	Short: "Line-oriented file exercises",
}

var fileopMultiplyCmd = &cobra.Command{
	Use:   "multiply [file]",
	Short: "Multiply the integers on lines 1 and 3, append the product",
	Long: `Reads the file, parses the integers at zero-based line indices 1 and 3,
appends their product as a new final line, and rewrites the file.

Without an argument the configured default file is used. Running the command
twice appends twice; the routine always parses the file as it currently is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Fileop.DefaultFile
		if len(args) == 1 {
			path = args[0]
		}

		log := logging.Named(logger, "fileop")
		product, err := fileop.MultiplyLines(path)
		if err != nil {
			return err
		}
		log.Info("product appended", zap.String("file", path), zap.Int("product", product))
		fmt.Fprintln(cmd.OutOrStdout(), product)
		return nil
	},
}

var fileopAppendCmd = &cobra.Command{
	Use:   "append <file> <line>",
	Short: "Append a line to a file (true append)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := fileop.AppendLine(args[0], args[1]); err != nil {
			return err
		}
		logging.Named(logger, "fileop").Debug("line appended", zap.String("file", args[0]))
		return nil
	},
}

var fileopCatCmd = &cobra.Command{
	Use:   "cat <file>",
	Short: "Print a file's lines with their indices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := fileop.ReadLines(args[0])
		if err != nil {
			return err
		}
		for i, line := range lines {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i, line)
		}
		return nil
	},
}

func init() {
	fileopCmd.AddCommand(fileopMultiplyCmd)
	fileopCmd.AddCommand(fileopAppendCmd)
	fileopCmd.AddCommand(fileopCatCmd)
}
