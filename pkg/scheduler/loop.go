// Package scheduler implements the Scheduling Loop (component D): the
// single goroutine that owns the Worker Registry, Workload Table, and
// Instance Table, serialising every mutation behind one event channel so
// the two gRPC planes (pkg/gateway) never touch scheduler state directly.
package scheduler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/cuemby/nimbus/api/proto"
	"github.com/cuemby/nimbus/pkg/event"
	"github.com/cuemby/nimbus/pkg/instance"
	"github.com/cuemby/nimbus/pkg/log"
	"github.com/cuemby/nimbus/pkg/metrics"
	"github.com/cuemby/nimbus/pkg/registry"
	"github.com/cuemby/nimbus/pkg/types"
	"github.com/cuemby/nimbus/pkg/workload"
)

// ErrAlreadySubscribed is returned when a Subscribe event arrives while a
// previous controller subscription's sink is still open. The original
// implementation only logs "Can only have one controller at a time" and
// drops the new connection silently; the gRPC boundary here needs an actual
// error to turn into a status code, so this loop reports one instead of
// swallowing it.
var ErrAlreadySubscribed = fmt.Errorf("a controller is already subscribed")

// Loop is the Scheduling Loop. It owns the only mutable references to the
// Worker Registry, Workload Table, and Instance Table; every other
// goroutine communicates with it exclusively through Events.
type Loop struct {
	Events <-chan event.Event

	registry  *registry.Registry
	workloads *workload.Table
	instances *instance.Table

	subscription event.StatusSink
	rrCursor     int
}

// New constructs a Scheduling Loop over the given event channel and state
// tables.
func New(events <-chan event.Event, reg *registry.Registry, workloads *workload.Table, instances *instance.Table) *Loop {
	return &Loop{
		Events:    events,
		registry:  reg,
		workloads: workloads,
		instances: instances,
	}
}

// Run drains Events until the channel closes or ctx is cancelled. A closed
// channel is treated as ErrStateManagerFailed: the event bus going away is
// the one fatal condition in this system, per SPEC_FULL.md's error
// taxonomy.
func (l *Loop) Run(ctx context.Context) error {
	logger := log.WithComponent("scheduling_loop")
	metrics.RegisterComponent("scheduling_loop", true, "")
	defer metrics.RegisterComponent("scheduling_loop", false, "loop stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-l.Events:
			if !ok {
				logger.Error().Msg("event channel closed")
				return event.ErrStateManagerFailed
			}

			metrics.EventQueueDepth.Set(float64(len(l.Events)))
			timer := metrics.NewTimer()
			l.handle(ev)
			l.scanLiveness()
			l.place()
			l.workloads.RemoveIfEmpty()
			timer.ObserveDurationVec(metrics.EventProcessingDuration, eventTypeName(ev))
		}
	}
}

func eventTypeName(ev event.Event) string {
	switch ev.(type) {
	case *event.Register:
		return "register"
	case *event.ScheduleRequest:
		return "schedule_request"
	case *event.Subscribe:
		return "subscribe"
	case *event.WorkerMetricsUpdate:
		return "worker_metrics_update"
	case *event.InstanceMetricsUpdate:
		return "instance_metrics_update"
	default:
		return "unknown"
	}
}

// handle dispatches a single dequeued event to its mutation.
func (l *Loop) handle(ev event.Event) {
	logger := log.WithComponent("scheduling_loop")

	switch e := ev.(type) {
	case *event.Register:
		l.handleRegister(e)

	case *event.ScheduleRequest:
		l.handleScheduleRequest(e)

	case *event.Subscribe:
		l.handleSubscribe(e)

	case *event.WorkerMetricsUpdate:
		if !l.registry.SetMetrics(e.Hostname, e.Metric) {
			logger.Warn().Str("worker", e.Hostname).Msg("metrics for unknown worker, dropping")
		}

	case *event.InstanceMetricsUpdate:
		status := types.Status(e.Metric.Status)
		if err := l.instances.UpdateStatus(e.InstanceID, status); err != nil {
			logger.Warn().Str("instance", e.InstanceID).Err(err).Msg("status for unknown instance, dropping")
			break
		}
		if l.subscription != nil {
			msg := &proto.WorkerStatus{Identifier: e.InstanceID, Instance: e.Metric}
			if err := l.subscription.Send(msg); err != nil {
				logger.Warn().Str("instance", e.InstanceID).Err(err).Msg("controller fanout failed")
			}
		}

	default:
		logger.Error().Msg("unrecognised event type, dropping")
	}
}

func (l *Loop) handleRegister(e *event.Register) {
	logger := log.WithComponent("scheduling_loop")
	_, err := l.registry.Register(e.Hostname, e.Addr, e.Sink)
	if err != nil {
		reason := "unknown"
		switch err {
		case registry.ErrAlreadyRegistered:
			reason = "already_registered"
		case registry.ErrClusterFull:
			reason = "cluster_full"
		}
		metrics.WorkersRejectedTotal.WithLabelValues(reason).Inc()
		logger.Warn().Str("worker", e.Hostname).Err(err).Msg("registration rejected")
		e.Result <- err
		return
	}

	metrics.WorkersRegisteredTotal.Inc()
	e.Result <- nil
}

func (l *Loop) handleScheduleRequest(e *event.ScheduleRequest) {
	logger := log.WithComponent("scheduling_loop")

	switch e.Action {
	case types.ActionDestroy:
		if err := l.workloads.MarkDestroying(e.WorkloadID, e.Definition); err != nil {
			logger.Warn().Str("workload", e.WorkloadID).Err(err).Msg("destroy rejected")
			e.Result <- event.Wrap(event.ErrWorkloadDontExists, err)
			return
		}
		l.tearDown(e.WorkloadID, e.Definition.ReplicaCount())
		e.Result <- nil

	default: // types.ActionCreate
		instanceID := e.InstanceID
		if instanceID == "" {
			instanceID = uuid.NewString()
		}
		if _, err := l.workloads.Upsert(e.WorkloadID, e.Definition, instanceID); err != nil {
			logger.Warn().Str("workload", e.WorkloadID).Err(err).Msg("create rejected")
			e.Result <- event.Wrap(event.ErrCannotDoubleReplicas, err)
			return
		}
		e.Result <- nil
	}
}

func (l *Loop) handleSubscribe(e *event.Subscribe) {
	if l.subscription != nil {
		select {
		case <-l.subscription.Done():
			// previous subscriber disconnected, falls through to replace it
		default:
			e.Result <- ErrAlreadySubscribed
			return
		}
	}
	l.subscription = e.Sink
	e.Result <- nil
}

// tearDown picks up to n already-dispatched instances belonging to
// workloadID and sends each their worker a Destroy frame. Instances still
// Pending (never assigned a worker) are dropped locally instead, since
// there is nothing running on a worker to tear down yet.
func (l *Loop) tearDown(workloadID string, n int) {
	w := l.workloads.Get(workloadID)
	if w == nil {
		return
	}
	logger := log.WithComponent("scheduling_loop")

	removed := 0
	for id, inst := range w.Instances {
		if removed >= n {
			break
		}

		if inst.Status == types.StatusPending || inst.WorkerID == "" {
			l.instances.Remove(id)
			removed++
			continue
		}

		worker := l.registry.Get(inst.WorkerID)
		if worker == nil {
			l.instances.Remove(id)
			removed++
			continue
		}

		frame := &proto.InstanceScheduling{
			InstanceId: id,
			Action:     int32(types.ActionDestroy),
			WorkloadId: workloadID,
		}
		if err := worker.Send(frame); err != nil {
			logger.Warn().Str("worker", worker.Hostname).Str("instance", id).Err(err).Msg("destroy dispatch failed")
			continue
		}
		inst.Status = types.StatusDestroying
		removed++
	}
}

// scanLiveness demotes workers whose dispatch stream has closed and erases
// their in-flight instances, leaving the gap for the next placement pass.
func (l *Loop) scanLiveness() {
	flipped := l.registry.ScanLiveness()
	for _, hostname := range flipped {
		log.WithComponent("scheduling_loop").Info().Str("worker", hostname).Msg("worker went NotReady, reclaiming instances")
		l.instances.RemoveByWorker(hostname)
	}
}

// place assigns every Pending instance to a Ready worker, round-robin, and
// emits the dispatch frame plus a controller status update for each
// assignment. No bin-packing: Ready workers are cycled in registration
// order regardless of current load.
func (l *Loop) place() {
	pending := l.instances.Pending()
	if len(pending) == 0 {
		return
	}

	ready := l.registry.IterReady()
	if len(ready) == 0 {
		return
	}

	logger := log.WithComponent("scheduling_loop")

	for _, inst := range pending {
		w := ready[l.rrCursor%len(ready)]
		l.rrCursor++

		if err := l.instances.Assign(inst.ID, w.Hostname); err != nil {
			logger.Error().Str("instance", inst.ID).Err(err).Msg("assign failed")
			continue
		}

		defJSON, err := json.Marshal(inst.Definition)
		if err != nil {
			logger.Error().Str("instance", inst.ID).Err(err).Msg("failed to encode definition")
			continue
		}

		frame := &proto.InstanceScheduling{
			InstanceId: inst.ID,
			Definition: string(defJSON),
			Action:     int32(types.ActionCreate),
			WorkloadId: inst.WorkloadID,
		}

		if err := w.Send(frame); err != nil {
			metrics.DispatchFailuresTotal.Inc()
			logger.Warn().Str("worker", w.Hostname).Str("instance", inst.ID).Err(err).Msg("dispatch failed")
			continue
		}
		metrics.DispatchesTotal.Inc()

		l.notifyController(inst.ID, w.Hostname, types.StatusCreating)
	}
}

// notifyController fans out a single instance status frame to the one
// subscribed controller, if any. Per invariant 6, there is never more than
// one live subscription to fan out to.
func (l *Loop) notifyController(instanceID, hostname string, status types.Status) {
	if l.subscription == nil {
		return
	}
	select {
	case <-l.subscription.Done():
		l.subscription = nil
		return
	default:
	}

	msg := &proto.WorkerStatus{
		Identifier: instanceID,
		Instance: &proto.InstanceMetric{
			InstanceId: instanceID,
			Status:     int32(status),
		},
	}
	if err := l.subscription.Send(msg); err != nil {
		log.WithComponent("scheduling_loop").Warn().Str("instance", instanceID).Err(err).Msg("controller fanout failed")
	}
}
