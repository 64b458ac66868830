package protoobject

import (
	"errors"
	"fmt"
	"strconv"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// ErrType is matched by every error FromObject returns.
var ErrType = errors.New("protoobject: type error")

// TypeError reports a value FromObject could not convert.
type TypeError struct {
	Path   string
	Reason string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *TypeError) Unwrap() error { return ErrType }

// FromObject builds a message of type md from a plain object. Keys may be
// lowerCamel or .proto names. Scalars are coerced the way a JavaScript
// object would be: strings from any value, booleans by truthiness, numbers
// from numeric strings, 32-bit integers truncated and wrapped, 64-bit
// integers saturated. Enums take a name or a number; an unknown name leaves
// the field unset, as does bytes input that is not base64. The only errors
// are a nested message that is not an object and a repeated or map field
// that is not an array or object. When several members of a oneof are
// present the last declared one wins.
func FromObject(md protoreflect.MessageDescriptor, obj map[string]any) (*dynamicpb.Message, error) {
	m := dynamicpb.NewMessage(md)
	if err := fill(m, obj, ""); err != nil {
		return nil, err
	}
	return m, nil
}

func fill(m protoreflect.Message, obj map[string]any, path string) error {
	fields := m.Descriptor().Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		v, ok := lookup(obj, fd)
		if !ok || v == nil {
			continue
		}
		p := join(path, fd.JSONName())
		switch {
		case fd.IsMap():
			mm, ok := asObject(v)
			if !ok {
				return &TypeError{Path: p, Reason: "object expected"}
			}
			mp := m.Mutable(fd).Map()
			for _, k := range sortedKeys(mm) {
				ep := fmt.Sprintf("%s[%s]", p, k)
				key, err := mapKey(fd.MapKey(), k)
				if err != nil {
					continue
				}
				val, ok, err := convert(fd.MapValue(), mm[k], ep, mp.NewValue)
				if err != nil {
					return err
				}
				if !ok {
					val = mp.NewValue()
				}
				mp.Set(key, val)
			}
		case fd.IsList():
			arr, ok := asList(v)
			if !ok {
				return &TypeError{Path: p, Reason: "array expected"}
			}
			l := m.Mutable(fd).List()
			for j, e := range arr {
				val, ok, err := convert(fd, e, fmt.Sprintf("%s[%d]", p, j), l.NewElement)
				if err != nil {
					return err
				}
				if !ok {
					val = l.NewElement()
				}
				l.Append(val)
			}
		default:
			val, ok, err := convert(fd, v, p, func() protoreflect.Value { return m.NewField(fd) })
			if err != nil {
				return err
			}
			if ok {
				m.Set(fd, val)
			}
		}
	}
	return nil
}

// convert returns ok=false for a value that cannot be coerced; the caller
// then leaves the field unset.
func convert(fd protoreflect.FieldDescriptor, v any, path string, newMessage func() protoreflect.Value) (protoreflect.Value, bool, error) {
	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		obj, ok := asObject(v)
		if !ok {
			return protoreflect.Value{}, false, &TypeError{Path: path, Reason: "object expected"}
		}
		mv := newMessage()
		if err := fill(mv.Message(), obj, path); err != nil {
			return protoreflect.Value{}, false, err
		}
		return mv, true, nil
	case protoreflect.EnumKind:
		n, ok := coerceEnum(fd.Enum(), v)
		return protoreflect.ValueOfEnum(n), ok, nil
	case protoreflect.StringKind:
		return protoreflect.ValueOfString(coerceString(v)), true, nil
	case protoreflect.BoolKind:
		return protoreflect.ValueOfBool(truthy(v)), true, nil
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return protoreflect.ValueOfInt32(coerceInt32(v)), true, nil
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return protoreflect.ValueOfUint32(uint32(coerceInt32(v))), true, nil
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return protoreflect.ValueOfInt64(coerceInt64(v)), true, nil
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return protoreflect.ValueOfUint64(coerceUint64(v)), true, nil
	case protoreflect.FloatKind:
		return protoreflect.ValueOfFloat32(float32(coerceFloat(v))), true, nil
	case protoreflect.DoubleKind:
		return protoreflect.ValueOfFloat64(coerceFloat(v)), true, nil
	case protoreflect.BytesKind:
		b, ok := coerceBytes(v)
		return protoreflect.ValueOfBytes(b), ok, nil
	}
	return protoreflect.Value{}, false, nil
}

// mapKey parses an object key into a map key of fd's kind.
func mapKey(fd protoreflect.FieldDescriptor, key string) (protoreflect.MapKey, error) {
	switch fd.Kind() {
	case protoreflect.StringKind:
		return protoreflect.ValueOfString(key).MapKey(), nil
	case protoreflect.BoolKind:
		b, err := strconv.ParseBool(key)
		if err != nil {
			return protoreflect.MapKey{}, errors.New("boolean key expected")
		}
		return protoreflect.ValueOfBool(b).MapKey(), nil
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		n, err := strconv.ParseInt(key, 10, 32)
		if err != nil {
			return protoreflect.MapKey{}, errors.New("integer key expected")
		}
		return protoreflect.ValueOfInt32(int32(n)).MapKey(), nil
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		n, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return protoreflect.MapKey{}, errors.New("integer key expected")
		}
		return protoreflect.ValueOfInt64(n).MapKey(), nil
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		n, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return protoreflect.MapKey{}, errors.New("integer key expected")
		}
		return protoreflect.ValueOfUint32(uint32(n)).MapKey(), nil
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		n, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return protoreflect.MapKey{}, errors.New("integer key expected")
		}
		return protoreflect.ValueOfUint64(n).MapKey(), nil
	}
	return protoreflect.MapKey{}, fmt.Errorf("unsupported map key kind %s", fd.Kind())
}
