package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/nimbus/pkg/types"
)

func podDef(name string, replicas int) types.WorkloadDefinition {
	return types.WorkloadDefinition{
		APIVersion: "v1",
		Kind:       types.KindPod,
		Name:       name,
		Replicas:   &replicas,
	}
}

func TestUpsertCreatesWorkloadAndInstance(t *testing.T) {
	tbl := NewTable()
	def := podDef("web", 1)

	inst, err := tbl.Upsert("wl-1", def, "inst-1")
	require.NoError(t, err)
	assert.Equal(t, types.StatusPending, inst.Status)

	w := tbl.Get("wl-1")
	require.NotNil(t, w)
	assert.Equal(t, 1, w.Replicas)
	assert.Len(t, w.Instances, 1)
}

func TestUpsertAccumulatesReplicas(t *testing.T) {
	tbl := NewTable()
	def := podDef("web", 2)

	_, err := tbl.Upsert("wl-1", def, "inst-1")
	require.NoError(t, err)
	_, err = tbl.Upsert("wl-1", def, "inst-2")
	require.NoError(t, err)

	w := tbl.Get("wl-1")
	assert.Equal(t, 4, w.Replicas)
	assert.Len(t, w.Instances, 2)
}

func TestUpsertRejectsCreateOnDestroyingWorkload(t *testing.T) {
	tbl := NewTable()
	def := podDef("web", 1)
	_, err := tbl.Upsert("wl-1", def, "inst-1")
	require.NoError(t, err)
	require.NoError(t, tbl.MarkDestroying("wl-1", def))

	_, err = tbl.Upsert("wl-1", def, "inst-2")
	assert.ErrorIs(t, err, ErrCannotDoubleReplicas)
}

func TestMarkDestroyingUnknownWorkload(t *testing.T) {
	tbl := NewTable()
	err := tbl.MarkDestroying("missing", podDef("web", 1))
	assert.ErrorIs(t, err, ErrWorkloadNotFound)
}

func TestMarkDestroyingFloorsReplicasAtZero(t *testing.T) {
	tbl := NewTable()
	def := podDef("web", 1)
	_, err := tbl.Upsert("wl-1", def, "inst-1")
	require.NoError(t, err)

	require.NoError(t, tbl.MarkDestroying("wl-1", podDef("web", 5)))
	w := tbl.Get("wl-1")
	assert.Equal(t, 0, w.Replicas)
	assert.Equal(t, StatusDestroying, w.Status)
}

func TestRemoveIfEmptyOnlyRemovesDestroyingWithNoInstances(t *testing.T) {
	tbl := NewTable()
	def := podDef("web", 1)
	inst, err := tbl.Upsert("wl-1", def, "inst-1")
	require.NoError(t, err)
	require.NoError(t, tbl.MarkDestroying("wl-1", def))

	// Still has an instance: must survive cleanup.
	tbl.RemoveIfEmpty()
	assert.NotNil(t, tbl.Get("wl-1"))

	delete(tbl.Get("wl-1").Instances, inst.ID)
	tbl.RemoveIfEmpty()
	assert.Nil(t, tbl.Get("wl-1"))
}
