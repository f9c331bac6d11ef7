package main

import (
	"fmt"

	"github.com/SalahEddineGhamri/gopractice/cmd/gopractice/ui"
	"github.com/SalahEddineGhamri/gopractice/internal/logging"
	"github.com/SalahEddineGhamri/gopractice/internal/wordfreq"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var wordsTopN int

var wordsCmd = &cobra.Command{
	Use:   "words <file>",
	Short: "Count word frequencies in a text file",
	Long: `Counts how often each word appears in the file, ignoring case and
punctuation, and prints a ranked table (highest count first, ties broken
alphabetically).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		counts, err := wordfreq.CountFile(args[0])
		if err != nil {
			return err
		}

		n := cfg.Words.TopN
		if cmd.Flags().Changed("top") {
			n = wordsTopN
		}
		entries := wordfreq.Top(counts, n)

		logging.Named(logger, "words").Debug("text counted",
			zap.String("file", args[0]),
			zap.Int("vocabulary", len(counts)))

		rows := make([][2]string, len(entries))
		for i, e := range entries {
			rows[i] = [2]string{e.Word, fmt.Sprintf("%d", e.Count)}
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderFrequencyTable(rows))
		return nil
	},
}

func init() {
	wordsCmd.Flags().IntVar(&wordsTopN, "top", 0, "show only the N most frequent words (0 = all)")
}
