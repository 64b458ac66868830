package reportv1

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// dynamicMessage bridges a typed struct and its dynamicpb form. toDynamic
// returns a nil interface for a nil receiver.
type dynamicMessage interface {
	toDynamic() protoreflect.Message
	fromDynamic(protoreflect.Message)
}

type dynamicPtr[T any] interface {
	*T
	dynamicMessage
}

func fieldByName(m protoreflect.Message, name protoreflect.Name) protoreflect.FieldDescriptor {
	fd := m.Descriptor().Fields().ByName(name)
	if fd == nil {
		panic(fmt.Sprintf("reportv1: %s has no field %q", m.Descriptor().FullName(), name))
	}
	return fd
}

// Setters skip zero values: proto3 scalars without presence are not written.

func setString(m protoreflect.Message, name protoreflect.Name, v string) {
	if v != "" {
		m.Set(fieldByName(m, name), protoreflect.ValueOfString(v))
	}
}

func setBool(m protoreflect.Message, name protoreflect.Name, v bool) {
	if v {
		m.Set(fieldByName(m, name), protoreflect.ValueOfBool(v))
	}
}

func setInt32(m protoreflect.Message, name protoreflect.Name, v int32) {
	if v != 0 {
		m.Set(fieldByName(m, name), protoreflect.ValueOfInt32(v))
	}
}

func setUint32(m protoreflect.Message, name protoreflect.Name, v uint32) {
	if v != 0 {
		m.Set(fieldByName(m, name), protoreflect.ValueOfUint32(v))
	}
}

func setInt64(m protoreflect.Message, name protoreflect.Name, v int64) {
	if v != 0 {
		m.Set(fieldByName(m, name), protoreflect.ValueOfInt64(v))
	}
}

func setUint64(m protoreflect.Message, name protoreflect.Name, v uint64) {
	if v != 0 {
		m.Set(fieldByName(m, name), protoreflect.ValueOfUint64(v))
	}
}

// setFloat32 and setFloat64 compare bits so that -0 is kept.
func setFloat32(m protoreflect.Message, name protoreflect.Name, v float32) {
	if v != 0 || 1/v < 0 {
		m.Set(fieldByName(m, name), protoreflect.ValueOfFloat32(v))
	}
}

func setFloat64(m protoreflect.Message, name protoreflect.Name, v float64) {
	if v != 0 || 1/v < 0 {
		m.Set(fieldByName(m, name), protoreflect.ValueOfFloat64(v))
	}
}

func setBytes(m protoreflect.Message, name protoreflect.Name, v []byte) {
	if len(v) > 0 {
		m.Set(fieldByName(m, name), protoreflect.ValueOfBytes(append([]byte(nil), v...)))
	}
}

func setEnum(m protoreflect.Message, name protoreflect.Name, v protoreflect.EnumNumber) {
	if v != 0 {
		m.Set(fieldByName(m, name), protoreflect.ValueOfEnum(v))
	}
}

func setMessage(m protoreflect.Message, name protoreflect.Name, child protoreflect.Message) {
	if child != nil {
		m.Set(fieldByName(m, name), protoreflect.ValueOfMessage(child))
	}
}

func setStrings(m protoreflect.Message, name protoreflect.Name, vs []string) {
	if len(vs) == 0 {
		return
	}
	l := m.Mutable(fieldByName(m, name)).List()
	for _, v := range vs {
		l.Append(protoreflect.ValueOfString(v))
	}
}

func setFloat32s(m protoreflect.Message, name protoreflect.Name, vs []float32) {
	if len(vs) == 0 {
		return
	}
	l := m.Mutable(fieldByName(m, name)).List()
	for _, v := range vs {
		l.Append(protoreflect.ValueOfFloat32(v))
	}
}

// setMessages writes nil elements as empty messages so list length survives.
func setMessages[P dynamicMessage](m protoreflect.Message, name protoreflect.Name, items []P) {
	if len(items) == 0 {
		return
	}
	fd := fieldByName(m, name)
	l := m.Mutable(fd).List()
	for _, item := range items {
		child := item.toDynamic()
		if child == nil {
			child = dynamicpb.NewMessage(fd.Message())
		}
		l.Append(protoreflect.ValueOfMessage(child))
	}
}

func setStringMap(m protoreflect.Message, name protoreflect.Name, vs map[string]string) {
	if len(vs) == 0 {
		return
	}
	mp := m.Mutable(fieldByName(m, name)).Map()
	for k, v := range vs {
		mp.Set(protoreflect.ValueOfString(k).MapKey(), protoreflect.ValueOfString(v))
	}
}

func setMessageMap[P dynamicMessage](m protoreflect.Message, name protoreflect.Name, vs map[string]P) {
	if len(vs) == 0 {
		return
	}
	fd := fieldByName(m, name)
	mp := m.Mutable(fd).Map()
	for k, v := range vs {
		child := v.toDynamic()
		if child == nil {
			child = dynamicpb.NewMessage(fd.MapValue().Message())
		}
		mp.Set(protoreflect.ValueOfString(k).MapKey(), protoreflect.ValueOfMessage(child))
	}
}

func getString(m protoreflect.Message, name protoreflect.Name) string {
	return m.Get(fieldByName(m, name)).String()
}

func getBool(m protoreflect.Message, name protoreflect.Name) bool {
	return m.Get(fieldByName(m, name)).Bool()
}

func getInt32(m protoreflect.Message, name protoreflect.Name) int32 {
	return int32(m.Get(fieldByName(m, name)).Int())
}

func getUint32(m protoreflect.Message, name protoreflect.Name) uint32 {
	return uint32(m.Get(fieldByName(m, name)).Uint())
}

func getInt64(m protoreflect.Message, name protoreflect.Name) int64 {
	return m.Get(fieldByName(m, name)).Int()
}

func getUint64(m protoreflect.Message, name protoreflect.Name) uint64 {
	return m.Get(fieldByName(m, name)).Uint()
}

func getFloat32(m protoreflect.Message, name protoreflect.Name) float32 {
	return float32(m.Get(fieldByName(m, name)).Float())
}

func getFloat64(m protoreflect.Message, name protoreflect.Name) float64 {
	return m.Get(fieldByName(m, name)).Float()
}

func getBytes(m protoreflect.Message, name protoreflect.Name) []byte {
	b := m.Get(fieldByName(m, name)).Bytes()
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}

func getEnum(m protoreflect.Message, name protoreflect.Name) int32 {
	return int32(m.Get(fieldByName(m, name)).Enum())
}

func getMessage[T any, P dynamicPtr[T]](m protoreflect.Message, name protoreflect.Name) P {
	fd := fieldByName(m, name)
	if !m.Has(fd) {
		return nil
	}
	p := P(new(T))
	p.fromDynamic(m.Get(fd).Message())
	return p
}

func getStrings(m protoreflect.Message, name protoreflect.Name) []string {
	l := m.Get(fieldByName(m, name)).List()
	if l.Len() == 0 {
		return nil
	}
	out := make([]string, l.Len())
	for i := range out {
		out[i] = l.Get(i).String()
	}
	return out
}

func getFloat32s(m protoreflect.Message, name protoreflect.Name) []float32 {
	l := m.Get(fieldByName(m, name)).List()
	if l.Len() == 0 {
		return nil
	}
	out := make([]float32, l.Len())
	for i := range out {
		out[i] = float32(l.Get(i).Float())
	}
	return out
}

func getMessages[T any, P dynamicPtr[T]](m protoreflect.Message, name protoreflect.Name) []*T {
	l := m.Get(fieldByName(m, name)).List()
	if l.Len() == 0 {
		return nil
	}
	out := make([]*T, l.Len())
	for i := range out {
		p := P(new(T))
		p.fromDynamic(l.Get(i).Message())
		out[i] = (*T)(p)
	}
	return out
}

func getStringMap(m protoreflect.Message, name protoreflect.Name) map[string]string {
	mp := m.Get(fieldByName(m, name)).Map()
	if mp.Len() == 0 {
		return nil
	}
	out := make(map[string]string, mp.Len())
	mp.Range(func(k protoreflect.MapKey, v protoreflect.Value) bool {
		out[k.String()] = v.String()
		return true
	})
	return out
}

func getMessageMap[T any, P dynamicPtr[T]](m protoreflect.Message, name protoreflect.Name) map[string]*T {
	mp := m.Get(fieldByName(m, name)).Map()
	if mp.Len() == 0 {
		return nil
	}
	out := make(map[string]*T, mp.Len())
	mp.Range(func(k protoreflect.MapKey, v protoreflect.Value) bool {
		p := P(new(T))
		p.fromDynamic(v.Message())
		out[k.String()] = (*T)(p)
		return true
	})
	return out
}
