package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/copycat-sync/copycat/pkg/configuration"
	"github.com/copycat-sync/copycat/pkg/copycat"
	"github.com/copycat-sync/copycat/pkg/engine"
	"github.com/copycat-sync/copycat/pkg/logging"
	"github.com/copycat-sync/copycat/pkg/progress"
)

var syncFlagValues syncFlags

var syncCommand = &cobra.Command{
	Use:   "sync <source> <target>",
	Short: "Mirror a source directory tree onto a target directory tree",
	Args:  cobra.MaximumNArgs(2),
	Run:   mainify(syncMain),
}

func init() {
	registerSyncFlags(syncCommand.Flags(), &syncFlagValues)
}

func syncMain(command *cobra.Command, arguments []string) error {
	logger := logging.DefaultLogger()

	cliLayer := toLayer(command.Flags(), &syncFlagValues)
	if err := parseTimestampFlags(&syncFlagValues, &cliLayer); err != nil {
		return copycat.NewValidationError("invalid timestamp: %s", err)
	}

	var fileLayer configuration.Layer
	var fileTasks []configuration.Task
	if syncFlagValues.configPath != "" {
		file, err := loadConfigFile(syncFlagValues.configPath)
		if err != nil {
			return copycat.NewValidationError("%s", err)
		}
		for _, warning := range file.DefaultsWarnings {
			logger.Warnf("config file: %s", warning)
		}
		fileLayer = file.Defaults
		fileTasks = file.Tasks
	}

	switch {
	case len(arguments) == 2:
		cliLayer.SourceRoot = arguments[0]
		cliLayer.TargetRoot = arguments[1]
		return runOneSync(logger, fileLayer, cliLayer)
	case len(arguments) == 0 && len(fileTasks) > 0:
		return runConfiguredTasks(logger, fileLayer, cliLayer, fileTasks)
	default:
		return copycat.NewValidationError("sync requires <source> <target> arguments, or --config with at least one sync: task")
	}
}

func runConfiguredTasks(logger *logging.Logger, fileLayer, cliLayer configuration.Layer, tasks []configuration.Task) error {
	for _, task := range tasks {
		for _, warning := range task.Warnings {
			logger.Warnf("config file: task %q: %s", task.Name, warning)
		}
		taskLogger := logger.Sublogger(task.Name)
		if err := runOneSync(taskLogger, fileLayer, configuration.Merge(task.Layer, cliLayer)); err != nil {
			return err
		}
	}
	return nil
}

func runOneSync(logger *logging.Logger, fileLayer, cliLayer configuration.Layer) error {
	cfg, err := configuration.Compute(configuration.Defaults(), fileLayer, cliLayer)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cancelSignal := notifyCancellation()
	reasonCh := make(chan string, 1)
	go func() {
		select {
		case <-ctx.Done():
		case sig := <-cancelSignal:
			logger.Warnf("received SIG%s, cancelling...", sig)
			reasonCh <- sig
			cancel()
		}
	}()

	var stats progress.Stats
	tracker, err := progress.NewTracker(&stats, cfg.StallTimeout, 0, logger)
	if err != nil {
		return copycat.NewInvariantViolation("unable to construct progress tracker: %s", err)
	}

	trackerDone := make(chan error, 1)
	go func() {
		trackerDone <- tracker.Run(ctx)
	}()

	eng := engine.New(cfg, &stats, tracker, logger)
	engineDone := make(chan error, 1)
	go func() {
		engineDone <- eng.Run(ctx)
	}()

	var runErr, stallErr error
	select {
	case runErr = <-engineDone:
		cancel()
		stallErr = <-trackerDone
	case stallErr = <-trackerDone:
		cancel()
		runErr = <-engineDone
	}
	if stallErr != nil && runErr == nil {
		runErr = stallErr
	}

	logger.Infof("%s", tracker.Summary())

	if runErr != nil {
		select {
		case signalName := <-reasonCh:
			return &copycat.CancelledError{Signal: signalName}
		default:
		}
	}

	return runErr
}
