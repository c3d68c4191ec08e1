package main

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "NUMTHEORY"

// Config is the CLI configuration.
// Values are read from flags, NUMTHEORY_* environment variables and an optional YAML file,
// in that order of precedence.
type Config struct {
	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// newFlagSet returns the global flags of the CLI.
func newFlagSet(output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("numtheory", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SetInterspersed(false)

	fs.StringP("config", "c", "", "path to a YAML config file")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.String("log-format", "text", "log format (text, json)")
	return fs
}

// readConfig parses args into fs and resolves the configuration.
// It returns the positional arguments left after the flags.
func readConfig(fs *pflag.FlagSet, args []string) (Config, []string, error) {
	var cfg Config
	if err := fs.Parse(args); err != nil {
		return cfg, nil, errors.Wrap(err, "parse flags")
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if err := v.BindPFlag("config", fs.Lookup("config")); err != nil {
		return cfg, nil, errors.Wrap(err, "bind config flag")
	}
	if err := v.BindPFlag("log.level", fs.Lookup("log-level")); err != nil {
		return cfg, nil, errors.Wrap(err, "bind log-level flag")
	}
	if err := v.BindPFlag("log.format", fs.Lookup("log-format")); err != nil {
		return cfg, nil, errors.Wrap(err, "bind log-format flag")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return cfg, nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, nil, errors.Wrap(err, "parse config")
	}
	return cfg, fs.Args(), nil
}

// newLogger creates a logger writing to output.
func newLogger(cfg LogConfig, output io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(output)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", cfg.Level)
	}
	log.SetLevel(level)

	switch cfg.Format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Newf("unknown log format %q", cfg.Format)
	}
	return log, nil
}
