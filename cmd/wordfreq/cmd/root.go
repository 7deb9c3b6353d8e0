package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/outofforest/wordtree"
	"github.com/outofforest/wordtree/internal/config"
	"github.com/outofforest/wordtree/internal/logging"
)

// Version is set at build time.
var Version = "master" //nolint:gochecknoglobals

// Flags overriding configuration keys.
var flagKeys = map[string]string{ //nolint:gochecknoglobals
	"max-items":  "tree.max_items",
	"log-level":  "log.level",
	"log-format": "log.format",
}

type app struct {
	conf config.Configuration
	log  zerolog.Logger
}

func (a *app) newCounter() *wordtree.Counter {
	return wordtree.New(a.conf.TreeOptions()...)
}

// NewRootCommand creates the wordfreq command with all its subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "wordfreq",
		Short:         "Counts words in text files and prints them in alphabetical order",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configFile, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			overrides := map[string]any{}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if key, exists := flagKeys[f.Name]; exists {
					overrides[key] = f.Value.String()
				}
			})

			a.conf, err = config.Load(configFile, overrides)
			if err != nil {
				return err
			}
			a.log = logging.New(cmd.ErrOrStderr(), a.conf.Log)
			cmd.SetContext(a.log.WithContext(cmd.Context()))

			a.log.Debug().Int("maxItems", a.conf.Tree.MaxItems).Msg("Configuration loaded")
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "Config file")
	flags.Int("max-items", 0, "Maximum number of distinct words")
	flags.String("log-level", "", "Log level")
	flags.String("log-format", "", "Log format, text or json")

	root.AddCommand(newCountCommand(a), newFindCommand(a))
	return root
}
