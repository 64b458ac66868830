package protoobject

import (
	"encoding/base64"
	"strconv"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// ToObject renders m as a plain object. Scalars keep their Go width
// (int32, uint32, int64, uint64, float32, float64) unless o asks for
// strings. Unset fields are omitted unless o.Defaults is set.
func ToObject(m protoreflect.Message, o Options) map[string]any {
	out := make(map[string]any)
	fields := m.Descriptor().Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		key := fieldKey(fd, o.UseProtoNames)
		switch {
		case fd.IsMap():
			mp := m.Get(fd).Map()
			if mp.Len() == 0 {
				if o.Defaults || o.Objects {
					out[key] = map[string]any{}
				}
				continue
			}
			obj := make(map[string]any, mp.Len())
			mp.Range(func(k protoreflect.MapKey, v protoreflect.Value) bool {
				obj[k.String()] = valueToObject(fd.MapValue(), v, o)
				return true
			})
			out[key] = obj
		case fd.IsList():
			l := m.Get(fd).List()
			if l.Len() == 0 {
				if o.Defaults || o.Arrays {
					out[key] = []any{}
				}
				continue
			}
			arr := make([]any, l.Len())
			for j := range arr {
				arr[j] = valueToObject(fd, l.Get(j), o)
			}
			out[key] = arr
		case m.Has(fd):
			out[key] = valueToObject(fd, m.Get(fd), o)
			if od := fd.ContainingOneof(); od != nil && o.Oneofs && !od.IsSynthetic() {
				out[oneofKey(od, o.UseProtoNames)] = key
			}
		case o.Defaults && fd.ContainingOneof() == nil && fd.Message() == nil:
			out[key] = valueToObject(fd, fd.Default(), o)
		}
	}
	return out
}

func valueToObject(fd protoreflect.FieldDescriptor, v protoreflect.Value, o Options) any {
	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return ToObject(v.Message(), o)
	case protoreflect.EnumKind:
		n := v.Enum()
		if o.Enums == EnumsAsStrings {
			if ev := fd.Enum().Values().ByNumber(n); ev != nil {
				return string(ev.Name())
			}
		}
		return int32(n)
	case protoreflect.BoolKind:
		return v.Bool()
	case protoreflect.StringKind:
		return v.String()
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return int32(v.Int())
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return uint32(v.Uint())
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		if o.Longs == LongsAsStrings {
			return strconv.FormatInt(v.Int(), 10)
		}
		return v.Int()
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		if o.Longs == LongsAsStrings {
			return strconv.FormatUint(v.Uint(), 10)
		}
		return v.Uint()
	case protoreflect.FloatKind:
		return formatFloat(v.Float(), 32, o.JSON)
	case protoreflect.DoubleKind:
		return formatFloat(v.Float(), 64, o.JSON)
	case protoreflect.BytesKind:
		if o.Bytes == BytesAsBase64 {
			return base64.StdEncoding.EncodeToString(v.Bytes())
		}
		b := make([]byte, len(v.Bytes()))
		copy(b, v.Bytes())
		return b
	}
	return nil
}
