package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/nimbus/pkg/types"
	"github.com/cuemby/nimbus/pkg/workload"
)

func setup(t *testing.T) (*workload.Table, *Table, *workload.Instance) {
	t.Helper()
	replicas := 1
	def := types.WorkloadDefinition{Name: "web", Kind: types.KindPod, Replicas: &replicas}

	wt := workload.NewTable()
	inst, err := wt.Upsert("wl-1", def, "inst-1")
	require.NoError(t, err)

	return wt, NewTable(wt), inst
}

func TestPendingListsOnlyPendingInstances(t *testing.T) {
	_, it, _ := setup(t)
	pending := it.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "inst-1", pending[0].ID)
}

func TestAssignSetsWorkerAndCreating(t *testing.T) {
	_, it, _ := setup(t)
	require.NoError(t, it.Assign("inst-1", "worker-1"))

	inst := it.Get("inst-1")
	require.NotNil(t, inst)
	assert.Equal(t, "worker-1", inst.WorkerID)
	assert.Equal(t, types.StatusCreating, inst.Status)
	assert.Empty(t, it.Pending())
}

func TestAssignUnknownInstance(t *testing.T) {
	_, it, _ := setup(t)
	err := it.Assign("missing", "worker-1")
	assert.ErrorIs(t, err, ErrUnknownInstance)
}

func TestUpdateStatusTerminatedErasesInstance(t *testing.T) {
	_, it, _ := setup(t)
	require.NoError(t, it.UpdateStatus("inst-1", types.StatusTerminated))
	assert.Nil(t, it.Get("inst-1"))
}

func TestUpdateStatusUnknownInstanceNeverSynthesizesRecord(t *testing.T) {
	_, it, _ := setup(t)
	err := it.UpdateStatus("missing", types.StatusRunning)
	assert.ErrorIs(t, err, ErrUnknownInstance)
	assert.Nil(t, it.Get("missing"))
}

func TestRemoveByWorkerErasesAssignedInstances(t *testing.T) {
	_, it, _ := setup(t)
	require.NoError(t, it.Assign("inst-1", "worker-1"))

	it.RemoveByWorker("worker-1")
	assert.Nil(t, it.Get("inst-1"))
}

func TestRemoveByWorkerLeavesOtherWorkersAlone(t *testing.T) {
	wt, it, _ := setup(t)
	replicas := 1
	def := types.WorkloadDefinition{Name: "web", Kind: types.KindPod, Replicas: &replicas}
	_, err := wt.Upsert("wl-1", def, "inst-2")
	require.NoError(t, err)

	require.NoError(t, it.Assign("inst-1", "worker-1"))
	require.NoError(t, it.Assign("inst-2", "worker-2"))

	it.RemoveByWorker("worker-1")
	assert.Nil(t, it.Get("inst-1"))
	assert.NotNil(t, it.Get("inst-2"))
}
