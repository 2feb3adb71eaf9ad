package gateway

import (
	"github.com/cuemby/nimbus/api/proto"
)

// dispatchSink adapts a Worker_RegisterServer stream to registry.DispatchSink.
// Done fires off the stream's context, the only liveness signal a gRPC
// server-streaming handler exposes once the initial request has been read.
type dispatchSink struct {
	stream proto.Worker_RegisterServer
}

func (s *dispatchSink) Send(frame *proto.InstanceScheduling) error {
	return s.stream.Send(frame)
}

func (s *dispatchSink) Done() <-chan struct{} {
	return s.stream.Context().Done()
}

// statusSink adapts a Controller_GetStatusUpdatesServer stream to
// event.StatusSink.
type statusSink struct {
	stream proto.Controller_GetStatusUpdatesServer
}

func (s *statusSink) Send(msg *proto.WorkerStatus) error {
	return s.stream.Send(msg)
}

func (s *statusSink) Done() <-chan struct{} {
	return s.stream.Context().Done()
}
