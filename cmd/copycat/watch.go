package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/copycat-sync/copycat/pkg/configuration"
	"github.com/copycat-sync/copycat/pkg/copycat"
	"github.com/copycat-sync/copycat/pkg/logging"
)

var watchFlagValues syncFlags
var watchInterval time.Duration

var watchCommand = &cobra.Command{
	Use:   "watch <source> <target>",
	Short: "Re-run sync on a fixed interval",
	Args:  cobra.ExactArgs(2),
	Run:   mainify(watchMain),
}

func init() {
	flags := watchCommand.Flags()
	registerSyncFlags(flags, &watchFlagValues)
	flags.DurationVar(&watchInterval, "interval", 10*time.Second, "Time to wait between sync runs")
}

// watchMain implements "watch" subcommand as a thin wrapper:
// it has no filesystem-event backend of its own and simply re-invokes the
// same configuration/engine entry points sync uses, on a fixed interval,
// stopping at the first fatal error (cancellation, stall, or a
// --fail-fast sync error).
func watchMain(command *cobra.Command, arguments []string) error {
	logger := logging.DefaultLogger()

	cliLayer := toLayer(command.Flags(), &watchFlagValues)
	if err := parseTimestampFlags(&watchFlagValues, &cliLayer); err != nil {
		return copycat.NewValidationError("invalid timestamp: %s", err)
	}
	cliLayer.SourceRoot = arguments[0]
	cliLayer.TargetRoot = arguments[1]

	fileLayer, err := loadFileLayer(watchFlagValues.configPath, logger)
	if err != nil {
		return err
	}

	for {
		if err := runOneSync(logger, fileLayer, cliLayer); err != nil {
			return err
		}
		logger.Infof("sleeping %s before next run", watchInterval)
		time.Sleep(watchInterval)
	}
}

// loadFileLayer resolves --config into its defaults layer, or a zero
// Layer if no config file was given.
func loadFileLayer(path string, logger *logging.Logger) (configuration.Layer, error) {
	if path == "" {
		return configuration.Layer{}, nil
	}
	file, err := loadConfigFile(path)
	if err != nil {
		return configuration.Layer{}, copycat.NewValidationError("%s", err)
	}
	for _, warning := range file.DefaultsWarnings {
		logger.Warnf("config file: %s", warning)
	}
	return file.Defaults, nil
}
