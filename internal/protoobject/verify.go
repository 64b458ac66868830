package protoobject

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// VerifyError describes the first value in an object that does not fit
// the schema. Path is the lowerCamel field path, with [i] or [key] for
// list and map elements.
type VerifyError struct {
	Path   string
	Reason string
}

func (e *VerifyError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return e.Path + ": " + e.Reason
}

// Verify checks obj against md. Fields are visited in declaration order
// and the first problem is returned. Absent and nil fields are skipped and
// keys that name no field are ignored.
func Verify(md protoreflect.MessageDescriptor, obj any) error {
	if err := verifyMessage(md, obj, ""); err != nil {
		return err
	}
	return nil
}

func verifyMessage(md protoreflect.MessageDescriptor, obj any, path string) *VerifyError {
	m, ok := asObject(obj)
	if !ok {
		return &VerifyError{Path: path, Reason: "object expected"}
	}
	var seen map[protoreflect.Name]bool
	fields := md.Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		v, ok := lookup(m, fd)
		if !ok || v == nil {
			continue
		}
		p := join(path, fd.JSONName())
		if od := fd.ContainingOneof(); od != nil && !od.IsSynthetic() {
			if seen[od.Name()] {
				return &VerifyError{Path: join(path, oneofKey(od, false)), Reason: "multiple values"}
			}
			if seen == nil {
				seen = make(map[protoreflect.Name]bool)
			}
			seen[od.Name()] = true
		}
		switch {
		case fd.IsMap():
			mm, ok := asObject(v)
			if !ok {
				return &VerifyError{Path: p, Reason: "object expected"}
			}
			for _, k := range sortedKeys(mm) {
				ep := fmt.Sprintf("%s[%s]", p, k)
				if err := verifyMapKey(fd.MapKey(), k, ep); err != nil {
					return err
				}
				if err := verifyValue(fd.MapValue(), mm[k], ep); err != nil {
					return err
				}
			}
		case fd.IsList():
			arr, ok := asList(v)
			if !ok {
				return &VerifyError{Path: p, Reason: "array expected"}
			}
			for j, e := range arr {
				if err := verifyValue(fd, e, fmt.Sprintf("%s[%d]", p, j)); err != nil {
					return err
				}
			}
		default:
			if err := verifyValue(fd, v, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func verifyMapKey(fd protoreflect.FieldDescriptor, key, path string) *VerifyError {
	switch fd.Kind() {
	case protoreflect.StringKind:
		return nil
	case protoreflect.BoolKind:
		if key == "true" || key == "false" {
			return nil
		}
		return &VerifyError{Path: path, Reason: "boolean key expected"}
	}
	if _, err := mapKey(fd, key); err != nil {
		return &VerifyError{Path: path, Reason: "integer key expected"}
	}
	return nil
}

func verifyValue(fd protoreflect.FieldDescriptor, v any, path string) *VerifyError {
	fail := func(reason string) *VerifyError { return &VerifyError{Path: path, Reason: reason} }
	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return verifyMessage(fd.Message(), v, path)
	case protoreflect.EnumKind:
		if _, ok := enumNumber(fd.Enum(), v, true); !ok {
			return fail("enum value expected")
		}
	case protoreflect.StringKind:
		if _, ok := v.(string); !ok {
			return fail("string expected")
		}
	case protoreflect.BoolKind:
		if _, ok := v.(bool); !ok {
			return fail("boolean expected")
		}
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		if n, ok := asInt64(v, false); !ok || n < math.MinInt32 || n > math.MaxInt32 {
			return fail("integer expected")
		}
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		if n, ok := asUint64(v, false); !ok || n > math.MaxUint32 {
			return fail("integer expected")
		}
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		if _, ok := asInt64(v, true); !ok {
			return fail("integer|Long expected")
		}
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		if _, ok := asUint64(v, true); !ok {
			return fail("integer|Long expected")
		}
	case protoreflect.FloatKind, protoreflect.DoubleKind:
		if _, ok := asFloat(v, true); !ok {
			return fail("number expected")
		}
	case protoreflect.BytesKind:
		if _, ok := asBytes(v); !ok {
			return fail("buffer expected")
		}
	}
	return nil
}

// enumNumber resolves an enum given by name or number. With known set,
// numbers must name a declared value.
func enumNumber(ed protoreflect.EnumDescriptor, v any, known bool) (protoreflect.EnumNumber, bool) {
	if s, ok := v.(string); ok {
		ev := ed.Values().ByName(protoreflect.Name(s))
		if ev == nil {
			return 0, false
		}
		return ev.Number(), true
	}
	n, ok := asInt64(v, false)
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	num := protoreflect.EnumNumber(n)
	if known && ed.Values().ByNumber(num) == nil {
		return 0, false
	}
	return num, true
}
