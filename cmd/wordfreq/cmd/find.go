package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/outofforest/wordtree/tokenize"
)

func newFindCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find word [file...]",
		Short: "Prints the number of occurrences of the word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := tokenize.Normalize(args[0])
			if word == "" {
				return errors.Errorf("%q is not a word", args[0])
			}

			counter := a.newCounter()
			if err := countFiles(cmd.Context(), counter, cmd.InOrStdin(), args[1:]); err != nil {
				return err
			}

			count := counter.Count(word)
			if count == 0 {
				return errors.Errorf("word %q not found", word)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", word, count)
			return errors.WithStack(err)
		},
	}
}
