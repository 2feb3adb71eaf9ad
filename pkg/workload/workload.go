// Package workload implements the Workload Table (component B): the
// scheduler's desired-state record of every declared workload, its target
// replica count, and the instances created to satisfy it.
package workload

import (
	"fmt"

	"github.com/cuemby/nimbus/pkg/types"
)

// Status is the lifecycle status of a Workload record.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusCreating   Status = "Creating"
	StatusRunning    Status = "Running"
	StatusFailed     Status = "Failed"
	StatusTerminated Status = "Terminated"
	StatusDestroying Status = "Destroying"
	StatusUnknown    Status = "Unknown"
)

// Instance is a single realisation of a Workload on a worker. It is kept
// here, not in a separate map, because the Instance Table (component C)
// indexes instances by scanning the Workload Table they belong to — the
// two components share this backing store by design (see pkg/instance).
type Instance struct {
	ID         string
	WorkloadID string
	Status     types.Status
	WorkerID   string // empty until the first dispatch is emitted
	Definition types.WorkloadDefinition
}

// Workload is the runtime record for one declared workload.
type Workload struct {
	ID         string
	Definition types.WorkloadDefinition
	Replicas   int
	Status     Status
	Instances  map[string]*Instance
}

// ErrCannotDoubleReplicas is returned by Upsert when a Create arrives for a
// workload that is already Destroying.
var ErrCannotDoubleReplicas = fmt.Errorf("workload is destroying, cannot accept a new create")

// ErrWorkloadNotFound is returned by operations addressed to an unknown
// workload id.
var ErrWorkloadNotFound = fmt.Errorf("workload does not exist")

// Table owns every Workload record. It is mutated exclusively by the
// Scheduling Loop; see pkg/scheduler.
type Table struct {
	byID map[string]*Workload
}

// NewTable constructs an empty Workload Table.
func NewTable() *Table {
	return &Table{byID: make(map[string]*Workload)}
}

// Get returns the workload with the given id, or nil.
func (t *Table) Get(id string) *Workload {
	return t.byID[id]
}

// All returns every workload record. The returned slice aliases internal
// state; callers in the loop only ever read it within the same goroutine.
func (t *Table) All() []*Workload {
	out := make([]*Workload, 0, len(t.byID))
	for _, w := range t.byID {
		out = append(out, w)
	}
	return out
}

// Upsert creates the workload record if absent, or merges a new instance
// into an existing one and increments its declared replica count. Fails
// with ErrCannotDoubleReplicas if the existing workload is Destroying.
func (t *Table) Upsert(id string, def types.WorkloadDefinition, instanceID string) (*Instance, error) {
	w, ok := t.byID[id]
	if !ok {
		w = &Workload{
			ID:         id,
			Definition: def,
			Status:     StatusPending,
			Instances:  make(map[string]*Instance),
		}
		t.byID[id] = w
	} else if w.Status == StatusDestroying {
		return nil, ErrCannotDoubleReplicas
	}

	w.Replicas += def.ReplicaCount()

	inst := &Instance{
		ID:         instanceID,
		WorkloadID: id,
		Status:     types.StatusPending,
		Definition: def,
	}
	w.Instances[instanceID] = inst
	return inst, nil
}

// MarkDestroying decrements the workload's declared replicas by the
// definition's replica count; if the result is <= 0 the workload flips to
// Destroying and replicas is forced to 0. Returns ErrWorkloadNotFound for
// an unknown id.
func (t *Table) MarkDestroying(id string, def types.WorkloadDefinition) error {
	w, ok := t.byID[id]
	if !ok {
		return ErrWorkloadNotFound
	}

	w.Replicas -= def.ReplicaCount()
	if w.Replicas <= 0 {
		w.Replicas = 0
		w.Status = StatusDestroying
	}
	return nil
}

// AddReplicas increments the declared replica count directly.
func (t *Table) AddReplicas(id string, n int) error {
	w, ok := t.byID[id]
	if !ok {
		return ErrWorkloadNotFound
	}
	w.Replicas += n
	return nil
}

// SubReplicas decrements the declared replica count directly, floored at 0.
func (t *Table) SubReplicas(id string, n int) error {
	w, ok := t.byID[id]
	if !ok {
		return ErrWorkloadNotFound
	}
	w.Replicas -= n
	if w.Replicas < 0 {
		w.Replicas = 0
	}
	return nil
}

// RemoveIfEmpty deletes workloads that are Destroying with no remaining
// instances. Workloads that still have instances are never removed, even
// at zero replicas, so in-flight teardown can report Terminated.
func (t *Table) RemoveIfEmpty() {
	for id, w := range t.byID {
		if w.Status == StatusDestroying && len(w.Instances) == 0 {
			delete(t.byID, id)
		}
	}
}
