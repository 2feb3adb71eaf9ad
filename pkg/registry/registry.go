// Package registry implements the Worker Registry (component A): tracks
// each worker's identity, liveness, stream handle, and latest node metrics.
package registry

import (
	"fmt"
	"sync"

	"github.com/cuemby/nimbus/api/proto"
	"github.com/cuemby/nimbus/pkg/log"
)

// maxWorkers is the worker-enumeration ceiling recovered from the original
// implementation's u8 worker counter (see SPEC_FULL.md, Supplementary
// Features #1).
const maxWorkers = 256

// State is a worker's liveness state.
type State string

const (
	StateNotReady State = "NotReady"
	StateReady    State = "Ready"
)

// ErrAlreadyRegistered is returned when a hostname is re-registered while
// its existing dispatch channel is still open.
var ErrAlreadyRegistered = fmt.Errorf("worker with this hostname is already registered")

// ErrClusterFull is returned once maxWorkers registered workers have an open
// dispatch sink and a genuinely new hostname attempts to register.
var ErrClusterFull = fmt.Errorf("cluster is full")

// DispatchSink is the Gateway's handle on a worker's open Register stream.
// Implemented by a thin wrapper around the gRPC server stream so this
// package never depends on transport details beyond the wire message type.
type DispatchSink interface {
	Send(*proto.InstanceScheduling) error
	Done() <-chan struct{}
}

// Worker is one registry record. Hostname is its unique key. Records are
// created once and retained forever; only Addr, State, Metric, and the sink
// are ever replaced.
type Worker struct {
	Hostname string
	Addr     string

	mu     sync.Mutex
	state  State
	metric *proto.WorkerMetric
	sink   DispatchSink
}

// State returns the worker's current liveness state.
func (w *Worker) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Metric returns the worker's most recent metric report, or nil.
func (w *Worker) Metric() *proto.WorkerMetric {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metric
}

// Closed reports whether the worker's current dispatch sink has gone away.
func (w *Worker) Closed() bool {
	w.mu.Lock()
	sink := w.sink
	w.mu.Unlock()
	if sink == nil {
		return true
	}
	select {
	case <-sink.Done():
		return true
	default:
		return false
	}
}

// Send delivers a dispatch frame to the worker. Returns an error if the
// sink has closed between the readiness check and the send.
func (w *Worker) Send(frame *proto.InstanceScheduling) error {
	w.mu.Lock()
	sink := w.sink
	w.mu.Unlock()
	if sink == nil {
		return fmt.Errorf("worker %s has no open dispatch channel", w.Hostname)
	}
	return sink.Send(frame)
}

// recompute flips state based on sink liveness and the latest metric. Must
// be called with mu held.
func (w *Worker) recomputeLocked() {
	closed := w.sink == nil
	if !closed {
		select {
		case <-w.sink.Done():
			closed = true
		default:
		}
	}

	running := w.metric != nil && w.metric.Status == 2 // 2 = Running, see types.StatusRunning
	if !closed && running {
		w.state = StateReady
	} else {
		w.state = StateNotReady
	}
}

// Registry owns every Worker record.
type Registry struct {
	mu    sync.RWMutex
	byID  map[string]*Worker
	order []string // registration order, for a stable round-robin cursor
}

// NewRegistry constructs an empty Worker Registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Worker)}
}

// Register attaches sink to the record for hostname, creating it on first
// sight. Idempotent by hostname: if a live record already exists with an
// open sink, registration fails with ErrAlreadyRegistered. If the prior
// sink has closed, the new sink replaces it on the same record.
func (r *Registry) Register(hostname, addr string, sink DispatchSink) (*Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w, ok := r.byID[hostname]; ok {
		if !w.Closed() {
			return nil, ErrAlreadyRegistered
		}
		w.mu.Lock()
		w.Addr = addr
		w.sink = sink
		w.recomputeLocked()
		w.mu.Unlock()
		log.WithComponent("registry").Info().Str("worker", hostname).Msg("worker reattached")
		return w, nil
	}

	live := 0
	for _, other := range r.byID {
		if !other.Closed() {
			live++
		}
	}
	if live >= maxWorkers {
		return nil, ErrClusterFull
	}

	w := &Worker{Hostname: hostname, Addr: addr, state: StateNotReady, sink: sink}
	r.byID[hostname] = w
	r.order = append(r.order, hostname)
	log.WithComponent("registry").Info().Str("worker", hostname).Msg("worker registered")
	return w, nil
}

// Get returns the worker record for hostname, or nil.
func (r *Registry) Get(hostname string) *Worker {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[hostname]
}

// SetMetrics records a worker-level metric report and re-evaluates
// readiness. Returns false if hostname is unknown.
func (r *Registry) SetMetrics(hostname string, metric *proto.WorkerMetric) bool {
	r.mu.RLock()
	w, ok := r.byID[hostname]
	r.mu.RUnlock()
	if !ok {
		return false
	}

	w.mu.Lock()
	w.metric = metric
	w.recomputeLocked()
	w.mu.Unlock()
	return true
}

// IterReady returns every worker currently in the Ready state, in
// registration order, so a round-robin cursor held across calls sees a
// consistent cycle.
func (r *Registry) IterReady() []*Worker {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Worker
	for _, hostname := range r.order {
		w := r.byID[hostname]
		if w.State() == StateReady {
			out = append(out, w)
		}
	}
	return out
}

// ScanLiveness flips every worker whose sink has closed from Ready to
// NotReady and returns the hostnames that were freshly flipped this scan.
// Workers already NotReady are left alone (nothing new happened to them).
func (r *Registry) ScanLiveness() []string {
	r.mu.RLock()
	workers := make([]*Worker, 0, len(r.byID))
	for _, w := range r.byID {
		workers = append(workers, w)
	}
	r.mu.RUnlock()

	var flipped []string
	for _, w := range workers {
		w.mu.Lock()
		was := w.state
		w.recomputeLocked()
		now := w.state
		w.mu.Unlock()

		if was == StateReady && now == StateNotReady {
			flipped = append(flipped, w.Hostname)
		}
	}
	return flipped
}

// Count returns the number of distinct hostnames ever registered.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
