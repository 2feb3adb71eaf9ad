package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/nimbus/api/proto"
)

type fakeSink struct {
	sent []*proto.InstanceScheduling
	done chan struct{}
	err  error
}

func newFakeSink() *fakeSink {
	return &fakeSink{done: make(chan struct{})}
}

func (f *fakeSink) Send(frame *proto.InstanceScheduling) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, frame)
	return nil
}

func (f *fakeSink) Done() <-chan struct{} { return f.done }

func TestRegisterNewWorker(t *testing.T) {
	r := NewRegistry()
	sink := newFakeSink()

	w, err := r.Register("worker-1", "10.0.0.1:4995", sink)
	require.NoError(t, err)
	assert.Equal(t, StateNotReady, w.State())
	assert.Equal(t, 1, r.Count())
}

func TestRegisterDuplicateHostnameWhileOpenIsRejected(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register("worker-1", "10.0.0.1:4995", newFakeSink())
	require.NoError(t, err)

	_, err = r.Register("worker-1", "10.0.0.2:4995", newFakeSink())
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegisterReattachAfterSinkCloses(t *testing.T) {
	r := NewRegistry()
	sink := newFakeSink()
	_, err := r.Register("worker-1", "10.0.0.1:4995", sink)
	require.NoError(t, err)
	close(sink.done)

	newSink := newFakeSink()
	w, err := r.Register("worker-1", "10.0.0.2:4995", newSink)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2:4995", w.Addr)
	assert.Equal(t, 1, r.Count())
}

func TestRegisterClusterFull(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < maxWorkers; i++ {
		_, err := r.Register(hostnameFor(i), "addr", newFakeSink())
		require.NoError(t, err)
	}

	_, err := r.Register("one-too-many", "addr", newFakeSink())
	assert.ErrorIs(t, err, ErrClusterFull)
}

func hostnameFor(i int) string {
	return "worker-" + string(rune('a'+i%26)) + string(rune('0'+i/26))
}

func TestWorkerBecomesReadyOnlyWithOpenSinkAndRunningMetric(t *testing.T) {
	r := NewRegistry()
	sink := newFakeSink()
	w, err := r.Register("worker-1", "addr", sink)
	require.NoError(t, err)
	assert.Equal(t, StateNotReady, w.State())

	r.SetMetrics("worker-1", &proto.WorkerMetric{Status: 1}) // Pending, not Running
	assert.Equal(t, StateNotReady, w.State())

	r.SetMetrics("worker-1", &proto.WorkerMetric{Status: 2}) // Running
	assert.Equal(t, StateReady, w.State())

	close(sink.done)
	assert.True(t, w.Closed())
}

func TestScanLivenessReportsOnlyFreshFlips(t *testing.T) {
	r := NewRegistry()
	sink := newFakeSink()
	_, err := r.Register("worker-1", "addr", sink)
	require.NoError(t, err)
	r.SetMetrics("worker-1", &proto.WorkerMetric{Status: 2})

	close(sink.done)
	flipped := r.ScanLiveness()
	assert.Equal(t, []string{"worker-1"}, flipped)

	// Already NotReady: a second scan reports nothing new.
	flipped = r.ScanLiveness()
	assert.Empty(t, flipped)
}

func TestIterReadyIsStableRoundRobinOrder(t *testing.T) {
	r := NewRegistry()
	for _, h := range []string{"worker-1", "worker-2", "worker-3"} {
		sink := newFakeSink()
		_, err := r.Register(h, "addr", sink)
		require.NoError(t, err)
		r.SetMetrics(h, &proto.WorkerMetric{Status: 2})
	}

	first := r.IterReady()
	second := r.IterReady()
	require.Len(t, first, 3)
	assert.Equal(t, first, second)
}
