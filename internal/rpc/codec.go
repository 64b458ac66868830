package rpc

import (
	"fmt"

	"connectrpc.com/connect"

	"shotdiff/internal/reportv1"
)

// protoCodec and jsonCodec stand in for connect's defaults, which require
// generated proto.Message types.
type protoCodec struct{}

func (protoCodec) Name() string { return "proto" }

func (protoCodec) Marshal(v any) ([]byte, error) {
	m, err := asMessage(v)
	if err != nil {
		return nil, err
	}
	return m.Marshal()
}

func (protoCodec) Unmarshal(b []byte, v any) error {
	m, err := asMessage(v)
	if err != nil {
		return err
	}
	return m.Unmarshal(b)
}

type jsonCodec struct {
	name string
}

func (c jsonCodec) Name() string { return c.name }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	m, err := asMessage(v)
	if err != nil {
		return nil, err
	}
	return m.MarshalJSON()
}

func (jsonCodec) Unmarshal(b []byte, v any) error {
	m, err := asMessage(v)
	if err != nil {
		return err
	}
	return m.UnmarshalJSON(b)
}

func asMessage(v any) (reportv1.Message, error) {
	m, ok := v.(reportv1.Message)
	if !ok {
		return nil, fmt.Errorf("%T is not a shotdiff.report.v1 message", v)
	}
	return m, nil
}

func handlerCodecs() []connect.HandlerOption {
	return []connect.HandlerOption{
		connect.WithCodec(protoCodec{}),
		connect.WithCodec(jsonCodec{name: "json"}),
		connect.WithCodec(jsonCodec{name: "json; charset=utf-8"}),
	}
}

// WithJSON makes a Client send protobuf JSON instead of binary.
func WithJSON() connect.ClientOption {
	return connect.WithCodec(jsonCodec{name: "json"})
}
