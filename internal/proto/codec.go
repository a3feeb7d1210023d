// Package proto holds the wire contract of the restaurant console service:
// request/response messages, the gRPC service descriptor with its client and
// server bindings, and the JSON codec the messages travel in.
package proto

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	protobuf "google.golang.org/protobuf/proto"
)

// CodecName is the content-subtype both sides negotiate ("application/grpc+json").
const CodecName = "json"

func init() {
	encoding.RegisterCodec(codec{})
}

// codec encodes protobuf messages (emptypb.Empty and friends) with protojson
// and every other message with encoding/json.
type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(protobuf.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(protobuf.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

func (codec) Name() string { return CodecName }
