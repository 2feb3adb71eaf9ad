package proto

import (
	gogoproto "github.com/gogo/protobuf/proto"
	"google.golang.org/grpc/encoding"
)

// codecName matches the default codec name so this implementation replaces
// the built-in one for every gRPC call in the process, instead of requiring
// callers to opt in per-RPC.
const codecName = "proto"

// gogoCodec marshals the wire messages in this package using gogo/protobuf's
// reflection-based encoder, which only needs the classic Reset/String/
// ProtoMessage marker methods and the "protobuf" struct tags already present
// on every generated type here.
type gogoCodec struct{}

func (gogoCodec) Marshal(v interface{}) ([]byte, error) {
	pm, ok := v.(gogoproto.Message)
	if !ok {
		return nil, errNotProtoMessage(v)
	}
	return gogoproto.Marshal(pm)
}

func (gogoCodec) Unmarshal(data []byte, v interface{}) error {
	pm, ok := v.(gogoproto.Message)
	if !ok {
		return errNotProtoMessage(v)
	}
	return gogoproto.Unmarshal(data, pm)
}

func (gogoCodec) Name() string { return codecName }

func errNotProtoMessage(v interface{}) error {
	return &notProtoMessageError{v}
}

type notProtoMessageError struct{ v interface{} }

func (e *notProtoMessageError) Error() string {
	return "proto: message does not implement gogo/protobuf proto.Message"
}

func init() {
	encoding.RegisterCodec(gogoCodec{})
}
