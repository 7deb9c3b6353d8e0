package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix of environment variables overriding the configuration.
// "_" separates levels of the configuration, "__" stands for literal "_", so
// WORDFREQ_TREE_MAX__ITEMS sets tree.max_items.
const EnvPrefix = "WORDFREQ_"

// Load builds the configuration. Sources are applied in order, later ones override earlier ones:
// defaults, YAML file (if configFile is not empty), environment variables, overrides.
// Keys of overrides are dot-separated paths, e.g. "tree.max_items".
func Load(configFile string, overrides map[string]any) (Configuration, error) {
	conf := Default()

	parser := koanf.New(".")
	if err := parser.Load(structs.Provider(conf, "koanf"), nil); err != nil {
		return Configuration{}, errors.Wrap(err, "loading defaults failed")
	}

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return Configuration{}, errors.Wrapf(err, "reading config file %s failed", configFile)
		}
		if err := parser.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
			return Configuration{}, errors.Wrapf(err, "parsing config file %s failed", configFile)
		}
	}

	if err := parser.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKey,
	}), nil); err != nil {
		return Configuration{}, errors.Wrap(err, "loading environment variables failed")
	}

	if len(overrides) > 0 {
		if err := parser.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Configuration{}, errors.Wrap(err, "applying overrides failed")
		}
	}

	if err := parser.UnmarshalWithConf("", &conf, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(logLevelDecodeHook),
			Result:           &conf,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return Configuration{}, errors.Wrap(err, "decoding configuration failed")
	}

	if err := conf.Validate(); err != nil {
		return Configuration{}, err
	}
	return conf, nil
}

func envKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "__", `\:\`)
	key = strings.ReplaceAll(key, "_", ".")
	return strings.ReplaceAll(key, `\:\`, "_"), value
}

func logLevelDecodeHook(from reflect.Type, to reflect.Type, val any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(zerolog.Level(0)) {
		return val, nil
	}

	if val == "" {
		return nil, errors.New("log level must not be empty")
	}

	level, err := zerolog.ParseLevel(val.(string))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", val)
	}
	return level, nil
}
