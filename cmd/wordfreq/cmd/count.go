package cmd

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/outofforest/wordtree"
	"github.com/outofforest/wordtree/tree"
)

const stdinName = "-"

func newCountCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count [file...]",
		Short: "Prints every word with the number of its occurrences",
		Long:  "Prints \"word: count\" line for every word read from the files, in alphabetical order. Standard input is read if no file is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			counter := a.newCounter()
			if err := countFiles(cmd.Context(), counter, cmd.InOrStdin(), args); err != nil {
				return err
			}
			return counter.WriteReport(cmd.OutOrStdout())
		},
	}
}

// countFiles feeds words from files into the counter. When the counter is full, warning is logged
// and remaining input is skipped.
func countFiles(ctx context.Context, counter *wordtree.Counter, stdin io.Reader, files []string) error {
	log := zerolog.Ctx(ctx)

	for _, file := range lo.Ternary(len(files) == 0, []string{stdinName}, files) {
		n, err := countFile(counter, stdin, file)
		log.Debug().Str("file", file).Int64("words", n).Msg("File processed")

		if errors.Is(err, tree.ErrFull) {
			log.Warn().Err(err).Str("file", file).Int("distinct", counter.Len()).
				Msg("Word limit reached, remaining input is ignored")
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func countFile(counter *wordtree.Counter, stdin io.Reader, file string) (int64, error) {
	if file == stdinName {
		return counter.ReadWords(stdin)
	}

	f, err := os.Open(file)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer f.Close()

	n, err := counter.ReadWords(f)
	return n, errors.WithMessagef(err, "counting words in %s failed", file)
}
