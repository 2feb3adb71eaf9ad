// Package instance implements the Instance Table (component C): observed
// per-instance state, indexed by scanning the Workload Table that owns
// each instance (acceptable because the table stays small and in-process).
package instance

import (
	"fmt"
	"sort"

	"github.com/cuemby/nimbus/pkg/types"
	"github.com/cuemby/nimbus/pkg/workload"
)

// ErrUnknownInstance is returned by operations addressed to an instance id
// absent from every workload's instance map. Callers must log and drop the
// triggering event rather than synthesise a new instance record.
var ErrUnknownInstance = fmt.Errorf("instance does not exist")

// Table is a thin, stateless view over a workload.Table: it has no storage
// of its own, it locates instances by scanning workload instance maps.
type Table struct {
	workloads *workload.Table
}

// NewTable builds an Instance Table backed by the given Workload Table.
func NewTable(workloads *workload.Table) *Table {
	return &Table{workloads: workloads}
}

// find returns the instance and its owning workload, or (nil, nil) if
// absent.
func (t *Table) find(instanceID string) (*workload.Instance, *workload.Workload) {
	for _, w := range t.workloads.All() {
		if inst, ok := w.Instances[instanceID]; ok {
			return inst, w
		}
	}
	return nil, nil
}

// Get returns the instance record, or nil if unknown.
func (t *Table) Get(instanceID string) *workload.Instance {
	inst, _ := t.find(instanceID)
	return inst
}

// UpdateStatus applies a status report to an instance. Terminated erases
// the instance from its owning workload's map; any other status
// overwrites in place. Returns ErrUnknownInstance for an unrecognised id
// — callers must log and drop, never create a new record here.
func (t *Table) UpdateStatus(instanceID string, status types.Status) error {
	inst, w := t.find(instanceID)
	if inst == nil {
		return ErrUnknownInstance
	}

	if status == types.StatusTerminated {
		delete(w.Instances, instanceID)
		return nil
	}

	inst.Status = status
	return nil
}

// Assign sets the worker id an instance has been dispatched to and
// transitions it to Creating. Per invariant 3, WorkerID is set at most
// once for the lifetime of an instance record.
func (t *Table) Assign(instanceID, workerID string) error {
	inst, _ := t.find(instanceID)
	if inst == nil {
		return ErrUnknownInstance
	}
	inst.WorkerID = workerID
	inst.Status = types.StatusCreating
	return nil
}

// Remove deletes an instance from its owning workload's map.
func (t *Table) Remove(instanceID string) {
	if inst, w := t.find(instanceID); inst != nil {
		delete(w.Instances, instanceID)
	}
}

// Pending returns every instance across every workload that is still
// StatusPending, in a stable order (workload id, then instance id) so the
// placement pass has a deterministic order to walk.
func (t *Table) Pending() []*workload.Instance {
	var out []*workload.Instance
	workloads := t.workloads.All()
	for _, w := range workloads {
		for _, inst := range w.Instances {
			if inst.Status == types.StatusPending {
				out = append(out, inst)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WorkloadID != out[j].WorkloadID {
			return out[i].WorkloadID < out[j].WorkloadID
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// RemoveByWorker erases every instance assigned to workerID, across every
// workload. Used by the worker-liveness scan when a worker goes NotReady;
// the gap it leaves is refilled by the next placement pass.
func (t *Table) RemoveByWorker(workerID string) {
	for _, w := range t.workloads.All() {
		for id, inst := range w.Instances {
			if inst.WorkerID == workerID {
				delete(w.Instances, id)
			}
		}
	}
}
