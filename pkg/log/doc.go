/*
Package log provides structured logging for the scheduler using zerolog.

The log package wraps zerolog to provide JSON-structured logging with
component-specific loggers and a configurable level. All logs include
timestamps and support filtering by severity for production debugging.

# Usage

Initializing the logger:

	import "github.com/cuemby/nimbus/pkg/log"

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     os.Stdout,
	})

Simple logging:

	log.Info("scheduler starting")
	log.Debug("registry scan")
	log.Warn("worker missed liveness deadline")
	log.Error("dispatch failed")
	log.Fatal("cannot bind worker listener") // exits process

Structured logging:

	log.Logger.Info().
		Str("hostname", "worker-1").
		Int("replicas", 3).
		Msg("workload scheduled")

Component loggers:

	schedLog := log.WithComponent("scheduling_loop")
	schedLog.Info().Msg("placement pass complete")

# Verbosity

CLI verbosity (repeated -v flags) maps to a level via VerbosityLevel:
zero occurrences is Info, one is Debug, two or more is Trace. The count
is unbounded on the high end and always clamps to Trace.

# See Also

  - Zerolog documentation: https://github.com/rs/zerolog
*/
package log
