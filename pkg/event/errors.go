package event

// SchedulerError is the typed error kind produced by the Scheduling Loop
// and the Gateway. It replaces the ad hoc string errors the original
// implementation returned at each call site with a single enum so RPC
// handlers can classify failures with errors.Is instead of string
// matching.
type SchedulerError struct {
	kind string
	err  error
}

func (e *SchedulerError) Error() string {
	if e.err != nil {
		return e.kind + ": " + e.err.Error()
	}
	return e.kind
}

func (e *SchedulerError) Unwrap() error { return e.err }

func newKind(kind string) error {
	return &SchedulerError{kind: kind}
}

// Wrap attaches kind to an underlying error, preserving errors.Is/As
// compatibility with the sentinel values below.
func Wrap(kind error, err error) error {
	se, ok := kind.(*SchedulerError)
	if !ok {
		return err
	}
	return &SchedulerError{kind: se.kind, err: err}
}

var (
	// ErrClusterFull: worker enumeration saturated (>= 256 distinct live
	// workers).
	ErrClusterFull = newKind("cluster_full")
	// ErrRegistrationFailed: duplicate live hostname.
	ErrRegistrationFailed = newKind("registration_failed")
	// ErrClientDisconnected: downstream channel closed between decide and
	// send.
	ErrClientDisconnected = newKind("client_disconnected")
	// ErrCannotDoubleReplicas: Create arrived while workload is Destroying.
	ErrCannotDoubleReplicas = newKind("cannot_double_replicas")
	// ErrWorkloadDontExists: Destroy or instance update for an unknown id.
	ErrWorkloadDontExists = newKind("workload_dont_exists")
	// ErrStateManagerFailed: event channel closed; fatal, terminates the
	// loop.
	ErrStateManagerFailed = newKind("state_manager_failed")
)

// Is supports errors.Is comparisons against the sentinel kinds above,
// ignoring any wrapped detail.
func (e *SchedulerError) Is(target error) bool {
	t, ok := target.(*SchedulerError)
	if !ok {
		return false
	}
	return e.kind == t.kind
}
