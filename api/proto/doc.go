// Package proto holds the wire messages and gRPC service stubs for the
// Worker and Controller planes, hand-maintained in the pre-APIv2 generated
// style (legacy proto.Message marker methods plus protobuf struct tags)
// rather than against the modern raw-descriptor code generator output.
//
// init() registers a gogo/protobuf-backed grpc codec (codec.go) so these
// messages marshal over the wire without a descriptor registry.
package proto
