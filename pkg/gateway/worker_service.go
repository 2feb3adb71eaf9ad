package gateway

import (
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cuemby/nimbus/api/proto"
	"github.com/cuemby/nimbus/pkg/event"
	"github.com/cuemby/nimbus/pkg/log"
	"github.com/cuemby/nimbus/pkg/registry"
)

// WorkerService implements proto.WorkerServer, translating the worker
// plane's two RPCs into event.Event values on a shared queue. It holds no
// scheduler state of its own.
type WorkerService struct {
	proto.UnimplementedWorkerServer

	events chan<- event.Event
}

// NewWorkerService constructs a WorkerService that enqueues onto events.
func NewWorkerService(events chan<- event.Event) *WorkerService {
	return &WorkerService{events: events}
}

// Register opens a worker's dispatch stream. It blocks for the lifetime of
// the stream: the scheduler never calls Send directly on the worker's
// behalf beyond what the Scheduling Loop pushes through the returned sink.
func (s *WorkerService) Register(req *proto.WorkerRegistration, stream proto.Worker_RegisterServer) error {
	logger := log.WithComponent("gateway")
	if req.Hostname == "" {
		return status.Error(codes.FailedPrecondition, "worker hostname must not be empty")
	}
	sink := &dispatchSink{stream: stream}
	result := make(chan error, 1)

	s.events <- &event.Register{
		Hostname: req.Hostname,
		Addr:     peerAddr(stream.Context()),
		Sink:     sink,
		Result:   result,
	}

	select {
	case err := <-result:
		if err != nil {
			logger.Warn().Str("worker", req.Hostname).Err(err).Msg("registration rejected")
			return translateRegisterErr(err)
		}
	case <-stream.Context().Done():
		return stream.Context().Err()
	}

	logger.Info().Str("worker", req.Hostname).Msg("worker stream open")
	<-stream.Context().Done()
	return stream.Context().Err()
}

// SendStatusUpdates streams worker and instance metric reports. Each
// message becomes a fire-and-forget InboundNotify event; the client closes
// the stream to receive the single Empty acknowledgement.
func (s *WorkerService) SendStatusUpdates(stream proto.Worker_SendStatusUpdatesServer) error {
	for {
		msg, err := stream.Recv()
		if err == io.EOF {
			return stream.SendAndClose(&proto.Empty{})
		}
		if err != nil {
			return err
		}

		switch {
		case msg.GetWorker() != nil:
			s.events <- &event.WorkerMetricsUpdate{Hostname: msg.Identifier, Metric: msg.Worker}
		case msg.GetInstance() != nil:
			s.events <- &event.InstanceMetricsUpdate{InstanceID: msg.Identifier, Metric: msg.Instance}
		}
	}
}

func translateRegisterErr(err error) error {
	switch err {
	case registry.ErrAlreadyRegistered:
		return status.Error(codes.AlreadyExists, err.Error())
	case registry.ErrClusterFull:
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
