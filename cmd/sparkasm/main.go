package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xyproto/env/v2"
	"golang.org/x/term"
)

var (
	flagLogLevel     string
	flagConfig       string
	flagIncludePaths []string
	flagColor        string

	runtimeConfig *config
)

var rootCmd = &cobra.Command{
	Use:   "sparkasm",
	Short: "Assemble and disassemble SPARK machine code",
	Long: `sparkasm translates between SPARK assembly source and the instruction
set's 32-bit big-endian machine words, in both directions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return before()
	},
}

func init() {
	fs := rootCmd.PersistentFlags()
	fs.StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&flagConfig, "config", "", "path to sparkasm.toml")
	fs.StringSliceVar(&flagIncludePaths, "include-path", nil, "directory searched for includes before #includePath directives (repeatable)")
	fs.StringVar(&flagColor, "color", "", "colorize logs (auto, always, never)")
}

// before merges the configuration sources and configures logging. Flags win
// over SPARKASM_* variables, which win over the config file.
func before() error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	fs := rootCmd.PersistentFlags()
	stringOverride(fs, "log-level", flagLogLevel, &cfg.LogLevel)
	stringOverride(fs, "color", flagColor, &cfg.Color)
	if len(flagIncludePaths) > 0 {
		cfg.IncludePaths = append(flagIncludePaths, cfg.IncludePaths...)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(formatterFor(cfg.Color))
	runtimeConfig = cfg
	return nil
}

func stringOverride(fs *pflag.FlagSet, name, value string, dst *string) {
	if fs.Changed(name) {
		*dst = value
	}
}

func formatterFor(mode string) *logrus.TextFormatter {
	f := &logrus.TextFormatter{}
	switch mode {
	case "always":
		f.ForceColors = true
	case "never":
		f.DisableColors = true
	default:
		if env.Str("NO_COLOR") != "" || !term.IsTerminal(int(os.Stderr.Fd())) {
			f.DisableColors = true
		}
	}
	return f
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
