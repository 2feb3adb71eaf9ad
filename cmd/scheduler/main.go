package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/cuemby/nimbus/api/proto"
	"github.com/cuemby/nimbus/pkg/event"
	"github.com/cuemby/nimbus/pkg/gateway"
	"github.com/cuemby/nimbus/pkg/instance"
	"github.com/cuemby/nimbus/pkg/log"
	"github.com/cuemby/nimbus/pkg/metrics"
	"github.com/cuemby/nimbus/pkg/registry"
	"github.com/cuemby/nimbus/pkg/scheduler"
	"github.com/cuemby/nimbus/pkg/workload"
)

// Version information (set via ldflags during build).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// eventQueueCapacity bounds the shared channel between the Gateway and the
// Scheduling Loop; SPEC_FULL.md §4.E calls for at least 1024 so a burst of
// up to that many worker metric reports does not block an RPC handler.
const eventQueueCapacity = 1024

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nimbus-scheduler",
	Short: "Nimbus scheduler - in-memory state manager and gRPC planes for worker nodes and a controller",
	Long: `The nimbus scheduler holds the Worker Registry, Workload Table, and
Instance Table in memory and drives workers over a bidirectional gRPC
stream while fanning out status to a single controller subscriber.

It runs as a single binary with no persistence: on restart every worker
must re-register and every workload must be resubmitted.`,
	Version: Version,
	RunE:    run,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"nimbus-scheduler version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v debug, -vv trace); overrides --log-level")

	rootCmd.Flags().String("workers-addr", "0.0.0.0:4995", "Address the worker plane (Register/SendStatusUpdates) listens on")
	rootCmd.Flags().String("controllers-addr", "0.0.0.0:4996", "Address the controller plane (ScheduleInstance/GetStatusUpdates) listens on")
	rootCmd.Flags().String("metrics-addr", "0.0.0.0:9095", "Address the Prometheus metrics and health endpoints listen on")

	cobra.OnInitialize(initLogging)
}

func initLogging() {
	logLevel, _ := rootCmd.PersistentFlags().GetString("log-level")
	logJSON, _ := rootCmd.PersistentFlags().GetBool("log-json")
	verbosity, _ := rootCmd.PersistentFlags().GetCount("verbose")

	level := log.Level(logLevel)
	if verbosity > 0 {
		level = log.VerbosityLevel(verbosity)
	}

	log.Init(log.Config{
		Level:      level,
		JSONOutput: logJSON,
	})
}

func run(cmd *cobra.Command, args []string) error {
	workersAddr, _ := cmd.Flags().GetString("workers-addr")
	controllersAddr, _ := cmd.Flags().GetString("controllers-addr")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	logger := log.WithComponent("main")

	workersLis, err := net.Listen("tcp", workersAddr)
	if err != nil {
		return fmt.Errorf("failed to bind worker plane: %w", err)
	}
	controllersLis, err := net.Listen("tcp", controllersAddr)
	if err != nil {
		return fmt.Errorf("failed to bind controller plane: %w", err)
	}

	events := make(chan event.Event, eventQueueCapacity)

	reg := registry.NewRegistry()
	workloads := workload.NewTable()
	instances := instance.NewTable(workloads)

	loop := scheduler.New(events, reg, workloads, instances)
	loopCtx, cancelLoop := context.WithCancel(context.Background())
	defer cancelLoop()

	loopErrCh := make(chan error, 1)
	go func() { loopErrCh <- loop.Run(loopCtx) }()

	workersSrv := grpc.NewServer()
	proto.RegisterWorkerServer(workersSrv, gateway.NewWorkerService(events))

	controllersSrv := grpc.NewServer()
	proto.RegisterControllerServer(controllersSrv, gateway.NewControllerService(events))

	go func() {
		logger.Info().Str("addr", workersAddr).Msg("worker plane listening")
		if err := workersSrv.Serve(workersLis); err != nil {
			logger.Error().Err(err).Msg("worker plane server stopped")
		}
	}()

	go func() {
		logger.Info().Str("addr", controllersAddr).Msg("controller plane listening")
		if err := controllersSrv.Serve(controllersLis); err != nil {
			logger.Error().Err(err).Msg("controller plane server stopped")
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/healthz", metrics.HealthHandler())
	mux.Handle("/readyz", metrics.ReadyHandler())
	metricsSrv := &http.Server{Addr: metricsAddr, Handler: mux}

	go func() {
		logger.Info().Str("addr", metricsAddr).Msg("metrics endpoint listening")
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("metrics server stopped")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info().Msg("shutdown signal received")
	case err := <-loopErrCh:
		logger.Error().Err(err).Msg("scheduling loop exited")
	}

	cancelLoop()
	workersSrv.GracefulStop()
	controllersSrv.GracefulStop()
	_ = metricsSrv.Shutdown(context.Background())

	logger.Info().Msg("shutdown complete")
	return nil
}
