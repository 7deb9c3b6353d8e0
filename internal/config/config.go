package config

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/outofforest/wordtree/tree"
)

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Configuration is the configuration of wordfreq.
type Configuration struct {
	Tree TreeConfig    `koanf:"tree"`
	Log  LoggingConfig `koanf:"log"`
}

// TreeConfig configures the word tree.
type TreeConfig struct {
	// MaxItems is the maximum number of distinct words, 0 means tree.DefaultMaxItems.
	MaxItems int `koanf:"max_items"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  zerolog.Level `koanf:"level"`
	Format string        `koanf:"format"`
}

// Default returns the default configuration.
func Default() Configuration {
	return Configuration{
		Tree: TreeConfig{
			MaxItems: tree.DefaultMaxItems,
		},
		Log: LoggingConfig{
			Level:  zerolog.InfoLevel,
			Format: LogFormatText,
		},
	}
}

// Validate validates the configuration.
func (c Configuration) Validate() error {
	if c.Tree.MaxItems < 0 {
		return errors.Errorf("tree.max_items must not be negative, got %d", c.Tree.MaxItems)
	}

	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.Errorf("unsupported log format %q", c.Log.Format)
	}
	return nil
}

// TreeOptions returns options of the tree.
func (c Configuration) TreeOptions() []tree.Option {
	return []tree.Option{tree.WithMaxItems(c.Tree.MaxItems)}
}
