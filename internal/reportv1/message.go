package reportv1

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"shotdiff/internal/protoobject"
)

// Message is implemented by every message type in this package.
type Message interface {
	Descriptor() protoreflect.MessageDescriptor
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
	MarshalJSON() ([]byte, error)
	UnmarshalJSON([]byte) error
	ToObject(protoobject.Options) map[string]any
	FromObject(map[string]any) error

	dynamicMessage
}

type messagePtr[T any] interface {
	*T
	Message
}

var (
	binaryMarshal   = proto.MarshalOptions{Deterministic: true}
	binaryUnmarshal = proto.UnmarshalOptions{}
	jsonMarshal     = protojson.MarshalOptions{}
	jsonUnmarshal   = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// Unmarshal decodes wire bytes into a new T.
func Unmarshal[T any, P messagePtr[T]](b []byte) (*T, error) {
	p := P(new(T))
	if err := p.Unmarshal(b); err != nil {
		return nil, err
	}
	return (*T)(p), nil
}

// FromObject builds a T from a plain object.
func FromObject[T any, P messagePtr[T]](obj map[string]any) (*T, error) {
	p := P(new(T))
	if err := p.FromObject(obj); err != nil {
		return nil, err
	}
	return (*T)(p), nil
}

// Verify checks obj against T's schema and returns the first violation.
func Verify[T any, P messagePtr[T]](obj any) error {
	var p P
	return protoobject.Verify(p.Descriptor(), obj)
}

// VerifyNamed is Verify for a message chosen at runtime by name.
func VerifyNamed(name string, obj any) error {
	md, ok := MessageDescriptor(name)
	if !ok {
		return fmt.Errorf("unknown message %q", name)
	}
	return protoobject.Verify(md, obj)
}

// Clone returns a deep copy of x.
func Clone[T any, P messagePtr[T]](x *T) *T {
	if x == nil {
		return nil
	}
	src := P(x).toDynamic()
	out := P(new(T))
	out.fromDynamic(proto.Clone(src.Interface()).ProtoReflect())
	return (*T)(out)
}

// Equal reports whether a and b hold the same message. Two nil messages of
// the same type are equal; nil and empty are not.
func Equal(a, b Message) bool {
	if a.Descriptor() != b.Descriptor() {
		return false
	}
	ma, mb := a.toDynamic(), b.toDynamic()
	if ma == nil || mb == nil {
		return ma == nil && mb == nil
	}
	return proto.Equal(ma.Interface(), mb.Interface())
}

// Dynamic returns x as a dynamicpb message backed by the report.proto
// descriptor. A nil x yields an empty message.
func Dynamic(x Message) *dynamicpb.Message {
	return orEmpty(x, x.Descriptor()).(*dynamicpb.Message)
}

func orEmpty(x dynamicMessage, md protoreflect.MessageDescriptor) protoreflect.Message {
	if m := x.toDynamic(); m != nil {
		return m
	}
	return dynamicpb.NewMessage(md)
}

func marshal(x dynamicMessage, md protoreflect.MessageDescriptor) ([]byte, error) {
	b, err := binaryMarshal.Marshal(orEmpty(x, md).Interface())
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", md.Name(), err)
	}
	return b, nil
}

func unmarshal(b []byte, x dynamicMessage, md protoreflect.MessageDescriptor) error {
	m := dynamicpb.NewMessage(md)
	if err := binaryUnmarshal.Unmarshal(b, m); err != nil {
		return fmt.Errorf("unmarshal %s: %w", md.Name(), err)
	}
	x.fromDynamic(m)
	return nil
}

func marshalJSON(x dynamicMessage, md protoreflect.MessageDescriptor) ([]byte, error) {
	return jsonMarshal.Marshal(orEmpty(x, md).Interface())
}

func unmarshalJSON(b []byte, x dynamicMessage, md protoreflect.MessageDescriptor) error {
	m := dynamicpb.NewMessage(md)
	if err := jsonUnmarshal.Unmarshal(b, m); err != nil {
		return fmt.Errorf("unmarshal %s json: %w", md.Name(), err)
	}
	x.fromDynamic(m)
	return nil
}

func toObject(x dynamicMessage, md protoreflect.MessageDescriptor, o protoobject.Options) map[string]any {
	return protoobject.ToObject(orEmpty(x, md), o)
}

func fromObject(obj map[string]any, x dynamicMessage, md protoreflect.MessageDescriptor) error {
	m, err := protoobject.FromObject(md, obj)
	if err != nil {
		return err
	}
	x.fromDynamic(m)
	return nil
}
