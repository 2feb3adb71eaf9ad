package types

import "testing"

func TestReplicaCountDefaultsToOne(t *testing.T) {
	d := WorkloadDefinition{Name: "web"}
	if got := d.ReplicaCount(); got != 1 {
		t.Errorf("ReplicaCount() = %d, want 1", got)
	}
}

func TestReplicaCountFloorsNonPositiveToOne(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		n := n
		d := WorkloadDefinition{Name: "web", Replicas: &n}
		if got := d.ReplicaCount(); got != 1 {
			t.Errorf("ReplicaCount() with Replicas=%d = %d, want 1", n, got)
		}
	}
}

func TestReplicaCountHonorsExplicitValue(t *testing.T) {
	n := 5
	d := WorkloadDefinition{Name: "web", Replicas: &n}
	if got := d.ReplicaCount(); got != 5 {
		t.Errorf("ReplicaCount() = %d, want 5", got)
	}
}

func TestActionFromWireDefaultsToCreate(t *testing.T) {
	cases := map[int32]Action{
		0:  ActionCreate,
		1:  ActionDestroy,
		2:  ActionCreate,
		-1: ActionCreate,
	}
	for wire, want := range cases {
		if got := ActionFromWire(wire); got != want {
			t.Errorf("ActionFromWire(%d) = %v, want %v", wire, got, want)
		}
	}
}

func TestStatusStringMatchesWireEncoding(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusUnknown, "Unknown"},
		{StatusPending, "Pending"},
		{StatusRunning, "Running"},
		{StatusFailed, "Failed"},
		{StatusTerminated, "Terminated"},
		{StatusCreating, "Creating"},
		{StatusDestroying, "Destroying"},
	}
	for _, c := range cases {
		if got := c.status.String(); got != c.want {
			t.Errorf("Status(%d).String() = %q, want %q", c.status, got, c.want)
		}
	}
}
