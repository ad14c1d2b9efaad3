package commands

import (
	"context"
	"os"

	"github.com/Dynom/speedtest/cmd/speedtest/config"
	"github.com/Dynom/speedtest/runtimer"
	"github.com/Dynom/speedtest/timer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// exitInterrupted follows the shell convention of 128 + SIGINT
const exitInterrupted = 130

type RootSettings struct {
	ConfigFile string
	LogLevel   string
	LogFormat  config.LogFormat
}

var rootSettings = &RootSettings{
	LogFormat: config.LFText,
}

var rootCmd = &cobra.Command{
	Use:   "speedtest",
	Short: "Time vectorized against element-by-element vector addition",
	Long: `Adds two vectors of 100000 elements and two of 100000000 elements, using gonum
and a plain loop, and prints how long every addition took.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig(cmd, rootSettings)
		if err != nil {
			return err
		}

		logger, err := newLogger(conf, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		sh := runtimer.New()
		sh.RegisterCallback(func(s os.Signal) {
			logger.WithField("signal", s.String()).Warn("Interrupted, aborting")
			os.Exit(exitInterrupted)
		})
		defer sh.Stop()

		logger.WithFields(logrus.Fields{
			"version": version,
		}).Debug("Starting")

		t := timer.New(timer.WithOutput(cmd.OutOrStdout()), timer.WithLogger(logger))

		return runPlan(cmd.OutOrStdout(), t, logger, defaultPlan)
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file, when given, and applies explicitly set flags on top
func loadConfig(cmd *cobra.Command, settings *RootSettings) (config.Config, error) {
	conf := config.Default()
	if settings.ConfigFile != "" {
		var err error
		conf, err = config.NewConfig(settings.ConfigFile)
		if err != nil {
			return conf, err
		}
	}

	if cmd.Flags().Changed("log-level") {
		conf.Log.Level = settings.LogLevel
	}

	if cmd.Flags().Changed("log-format") {
		conf.Log.Format = settings.LogFormat
	}

	return conf, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootSettings.ConfigFile, "config", "c", "", "Path to a TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&rootSettings.LogLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().Var(&rootSettings.LogFormat, "log-format", "Log output format, \"json\" or \"text\"")
}
