// Package event defines the Scheduling Loop's event taxonomy. Per the
// redesign flag in SPEC_FULL.md §9 (the source mixes request and notify
// events in one enum), the taxonomy is split at the type level into
// InboundRequest (expects synchronous accept/reject feedback over Result)
// and InboundNotify (fire-and-forget telemetry).
package event

import (
	"github.com/cuemby/nimbus/api/proto"
	"github.com/cuemby/nimbus/pkg/registry"
	"github.com/cuemby/nimbus/pkg/types"
)

// Event is anything the Scheduling Loop can dequeue: either an
// InboundRequest or an InboundNotify.
type Event interface {
	isEvent()
}

// InboundRequest is an event originating from an RPC that blocks on a
// synchronous result.
type InboundRequest interface {
	Event
	isInboundRequest()
}

// InboundNotify is a fire-and-forget telemetry event with no RPC-level
// feedback beyond stream health.
type InboundNotify interface {
	Event
	isInboundNotify()
}

// Register is emitted by the worker plane's Register RPC. Result carries
// back ErrAlreadyRegistered/ErrClusterFull or nil.
type Register struct {
	Hostname string
	Addr     string
	Sink     registry.DispatchSink
	Result   chan<- error
}

func (*Register) isEvent()          {}
func (*Register) isInboundRequest() {}

// ScheduleRequest is emitted by the controller plane's ScheduleInstance
// RPC. Result carries back CannotDoubleReplicas/WorkloadDontExists or nil.
type ScheduleRequest struct {
	WorkloadID string
	InstanceID string
	Definition types.WorkloadDefinition
	Action     types.Action
	Result     chan<- error
}

func (*ScheduleRequest) isEvent()          {}
func (*ScheduleRequest) isInboundRequest() {}

// StatusSink is the Gateway's handle on the controller's open
// GetStatusUpdates stream, mirroring registry.DispatchSink for the single
// controller subscription.
type StatusSink interface {
	Send(*proto.WorkerStatus) error
	Done() <-chan struct{}
}

// Subscribe is emitted by the controller plane's GetStatusUpdates RPC.
type Subscribe struct {
	Addr   string
	Sink   StatusSink
	Result chan<- error
}

func (*Subscribe) isEvent()          {}
func (*Subscribe) isInboundRequest() {}

// WorkerMetricsUpdate is emitted by the worker plane's SendStatusUpdates
// RPC for a WorkerStatus carrying a WorkerMetric.
type WorkerMetricsUpdate struct {
	Hostname string
	Metric   *proto.WorkerMetric
}

func (*WorkerMetricsUpdate) isEvent()        {}
func (*WorkerMetricsUpdate) isInboundNotify() {}

// InstanceMetricsUpdate is emitted by the worker plane's SendStatusUpdates
// RPC for a WorkerStatus carrying an InstanceMetric. InstanceID is the
// WorkerStatus identifier field, which for this variant names the instance
// rather than the reporting worker.
type InstanceMetricsUpdate struct {
	InstanceID string
	Metric     *proto.InstanceMetric
}

func (*InstanceMetricsUpdate) isEvent()         {}
func (*InstanceMetricsUpdate) isInboundNotify() {}
