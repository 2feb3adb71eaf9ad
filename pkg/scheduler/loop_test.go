package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/nimbus/api/proto"
	"github.com/cuemby/nimbus/pkg/event"
	"github.com/cuemby/nimbus/pkg/instance"
	"github.com/cuemby/nimbus/pkg/registry"
	"github.com/cuemby/nimbus/pkg/types"
	"github.com/cuemby/nimbus/pkg/workload"
)

type fakeDispatchSink struct {
	sent []*proto.InstanceScheduling
	done chan struct{}
}

func newFakeDispatchSink() *fakeDispatchSink {
	return &fakeDispatchSink{done: make(chan struct{})}
}

func (f *fakeDispatchSink) Send(frame *proto.InstanceScheduling) error {
	f.sent = append(f.sent, frame)
	return nil
}

func (f *fakeDispatchSink) Done() <-chan struct{} { return f.done }

type fakeStatusSink struct {
	sent []*proto.WorkerStatus
	done chan struct{}
}

func newFakeStatusSink() *fakeStatusSink {
	return &fakeStatusSink{done: make(chan struct{})}
}

func (f *fakeStatusSink) Send(msg *proto.WorkerStatus) error {
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeStatusSink) Done() <-chan struct{} { return f.done }

func newTestHarness() (*Loop, chan event.Event, *registry.Registry, *workload.Table, *instance.Table) {
	events := make(chan event.Event, 16)
	reg := registry.NewRegistry()
	workloads := workload.NewTable()
	instances := instance.NewTable(workloads)
	loop := New(events, reg, workloads, instances)
	return loop, events, reg, workloads, instances
}

func TestRegisterThenPlacementDispatchesToReadyWorker(t *testing.T) {
	loop, events, reg, _, _ := newTestHarness()

	sink := newFakeDispatchSink()
	result := make(chan error, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	done := make(chan struct{})
	go func() { _ = loop.Run(ctx); close(done) }()

	events <- &event.Register{Hostname: "worker-1", Addr: "a", Sink: sink, Result: result}
	require.NoError(t, <-result)

	reg.SetMetrics("worker-1", &proto.WorkerMetric{Status: 2}) // Running -> Ready

	replicas := 1
	def := types.WorkloadDefinition{Name: "web", Kind: types.KindPod, Replicas: &replicas}
	schedResult := make(chan error, 1)
	events <- &event.ScheduleRequest{WorkloadID: "wl-1", Definition: def, Action: types.ActionCreate, Result: schedResult}
	require.NoError(t, <-schedResult)

	events <- &event.WorkerMetricsUpdate{Hostname: "worker-1", Metric: &proto.WorkerMetric{Status: 2}}

	time.Sleep(30 * time.Millisecond)
	cancel()
	<-done

	require.Len(t, sink.sent, 1)
	assert.Equal(t, "wl-1", sink.sent[0].WorkloadId)
}

func TestScheduleRequestRejectedWhenWorkloadDestroying(t *testing.T) {
	loop, events, reg, workloads, _ := newTestHarness()
	replicas := 1
	def := types.WorkloadDefinition{Name: "web", Kind: types.KindPod, Replicas: &replicas}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	done := make(chan struct{})
	go func() { _ = loop.Run(ctx); close(done) }()

	// A Ready worker takes the instance, so Destroy leaves it in teardown
	// (awaiting Terminated) and the workload stays Destroying.
	regResult := make(chan error, 1)
	events <- &event.Register{Hostname: "worker-1", Addr: "a", Sink: newFakeDispatchSink(), Result: regResult}
	require.NoError(t, <-regResult)
	reg.SetMetrics("worker-1", &proto.WorkerMetric{Status: 2})

	createResult := make(chan error, 1)
	events <- &event.ScheduleRequest{WorkloadID: "wl-1", Definition: def, Action: types.ActionCreate, Result: createResult}
	require.NoError(t, <-createResult)

	destroyResult := make(chan error, 1)
	events <- &event.ScheduleRequest{WorkloadID: "wl-1", Definition: def, Action: types.ActionDestroy, Result: destroyResult}
	require.NoError(t, <-destroyResult)

	secondCreate := make(chan error, 1)
	events <- &event.ScheduleRequest{WorkloadID: "wl-1", Definition: def, Action: types.ActionCreate, Result: secondCreate}
	err := <-secondCreate
	assert.ErrorIs(t, err, event.ErrCannotDoubleReplicas)

	cancel()
	<-done
	_ = workloads
}

func TestSubscribeRejectsSecondWhileFirstOpen(t *testing.T) {
	loop, events, _, _, _ := newTestHarness()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	done := make(chan struct{})
	go func() { _ = loop.Run(ctx); close(done) }()

	first := newFakeStatusSink()
	firstResult := make(chan error, 1)
	events <- &event.Subscribe{Sink: first, Result: firstResult}
	require.NoError(t, <-firstResult)

	second := newFakeStatusSink()
	secondResult := make(chan error, 1)
	events <- &event.Subscribe{Sink: second, Result: secondResult}
	assert.ErrorIs(t, <-secondResult, ErrAlreadySubscribed)

	close(first.done)
	thirdResult := make(chan error, 1)
	events <- &event.Subscribe{Sink: second, Result: thirdResult}
	assert.NoError(t, <-thirdResult)

	cancel()
	<-done
}

func TestWorkerGoingNotReadyReclaimsItsInstances(t *testing.T) {
	loop, events, reg, _, instances := newTestHarness()

	sink := newFakeDispatchSink()
	result := make(chan error, 1)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	done := make(chan struct{})
	go func() { _ = loop.Run(ctx); close(done) }()

	events <- &event.Register{Hostname: "worker-1", Addr: "a", Sink: sink, Result: result}
	require.NoError(t, <-result)
	reg.SetMetrics("worker-1", &proto.WorkerMetric{Status: 2})

	replicas := 1
	def := types.WorkloadDefinition{Name: "web", Kind: types.KindPod, Replicas: &replicas}
	schedResult := make(chan error, 1)
	events <- &event.ScheduleRequest{WorkloadID: "wl-1", Definition: def, Action: types.ActionCreate, Result: schedResult}
	require.NoError(t, <-schedResult)

	events <- &event.WorkerMetricsUpdate{Hostname: "worker-1", Metric: &proto.WorkerMetric{Status: 2}}
	time.Sleep(20 * time.Millisecond)
	require.Len(t, sink.sent, 1)
	instID := sink.sent[0].InstanceId

	close(sink.done)
	// Nudge the loop with a harmless event so it runs another scanLiveness pass.
	events <- &event.WorkerMetricsUpdate{Hostname: "unknown", Metric: &proto.WorkerMetric{Status: 2}}
	time.Sleep(20 * time.Millisecond)

	assert.Nil(t, instances.Get(instID))

	cancel()
	<-done
}
