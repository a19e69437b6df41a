package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/copycat-sync/copycat/pkg/copycat"
)

// terminationSignals are the signals copycat treats as a cancellation
// request. Both are emulated on Windows by the Go runtime (SIGINT on
// Ctrl-C, SIGTERM on console close/logoff/shutdown events), so no
// build-tag split is needed here, unlike pkg/filesystem.
var terminationSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// mainify wraps a Cobra entry point that returns an error into the
// standard void-returning signature Cobra expects, translating the error
// into a process exit code.
func mainify(entry func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(command *cobra.Command, arguments []string) {
		if err := entry(command, arguments); err != nil {
			fail(err)
		}
	}
}

// fail prints err and terminates the process with the exit code
// matching its error category.
func fail(err error) {
	switch e := err.(type) {
	case *copycat.CancelledError:
		// Cancellation is not an error condition; nothing is printed.
		os.Exit(e.ExitCode())
	case *copycat.ValidationError:
		printError(e)
		os.Exit(1)
	case *copycat.StallError:
		printError(e)
		os.Exit(3)
	case *copycat.ErrorsEncountered:
		printError(e)
		os.Exit(2)
	case *copycat.InvariantViolation:
		printError(e)
		fmt.Fprintln(os.Stderr, e.StackTrace())
		os.Exit(70)
	default:
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	fmt.Fprintln(color.Error, color.RedString("Error:"), err.Error())
}

// notifyCancellation returns a channel that receives the signal name
// ("INT" or "TERM") the first time one of terminationSignals arrives.
func notifyCancellation() <-chan string {
	raw := make(chan os.Signal, 1)
	signal.Notify(raw, terminationSignals...)

	named := make(chan string, 1)
	go func() {
		sig := <-raw
		if sig == syscall.SIGTERM {
			named <- "TERM"
		} else {
			named <- "INT"
		}
	}()
	return named
}
