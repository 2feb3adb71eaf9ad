package gateway

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cuemby/nimbus/api/proto"
	"github.com/cuemby/nimbus/pkg/event"
	"github.com/cuemby/nimbus/pkg/log"
	"github.com/cuemby/nimbus/pkg/types"
)

// ControllerService implements proto.ControllerServer: the unary schedule
// RPC and the single status-fanout subscription.
type ControllerService struct {
	proto.UnimplementedControllerServer

	events chan<- event.Event
}

// NewControllerService constructs a ControllerService that enqueues onto
// events.
func NewControllerService(events chan<- event.Event) *ControllerService {
	return &ControllerService{events: events}
}

// ScheduleInstance submits a workload Create or Destroy request and waits
// for the Scheduling Loop's synchronous accept/reject decision.
func (s *ControllerService) ScheduleInstance(ctx context.Context, req *proto.WorkloadScheduling) (*proto.Empty, error) {
	var def types.WorkloadDefinition
	if err := json.Unmarshal([]byte(req.Definition), &def); err != nil {
		return nil, status.Error(codes.InvalidArgument, "malformed workload definition: "+err.Error())
	}

	result := make(chan error, 1)
	s.events <- &event.ScheduleRequest{
		WorkloadID: req.WorkloadId,
		InstanceID: req.InstanceId,
		Definition: def,
		Action:     types.ActionFromWire(req.Action),
		Result:     result,
	}

	select {
	case err := <-result:
		if err != nil {
			log.WithComponent("gateway").Warn().Str("workload", req.WorkloadId).Err(err).Msg("schedule request rejected")
			return nil, translateScheduleErr(err)
		}
		return &proto.Empty{}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// GetStatusUpdates opens the single controller subscription. Per invariant
// 6 only one may be open at a time; a second attempt while the first is
// live is rejected with FailedPrecondition.
func (s *ControllerService) GetStatusUpdates(_ *proto.Empty, stream proto.Controller_GetStatusUpdatesServer) error {
	sink := &statusSink{stream: stream}
	result := make(chan error, 1)

	s.events <- &event.Subscribe{
		Addr:   peerAddr(stream.Context()),
		Sink:   sink,
		Result: result,
	}

	select {
	case err := <-result:
		if err != nil {
			return status.Error(codes.FailedPrecondition, err.Error())
		}
	case <-stream.Context().Done():
		return stream.Context().Err()
	}

	log.WithComponent("gateway").Info().Msg("controller subscribed")
	<-stream.Context().Done()
	return stream.Context().Err()
}

func translateScheduleErr(err error) error {
	return status.Error(codes.FailedPrecondition, err.Error())
}
