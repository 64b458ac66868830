// Package protoobject converts protobuf messages to and from plain objects
// (map[string]any trees, as produced by encoding/json) and checks such
// objects against a message descriptor before conversion.
package protoobject

import (
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// EnumFormat selects how enum values are written by ToObject.
type EnumFormat int

const (
	EnumsAsNumbers EnumFormat = iota
	EnumsAsStrings
)

// LongFormat selects how 64-bit integers are written by ToObject.
type LongFormat int

const (
	LongsAsNumbers LongFormat = iota
	LongsAsStrings
)

// BytesFormat selects how bytes fields are written by ToObject.
type BytesFormat int

const (
	BytesAsRaw BytesFormat = iota
	BytesAsBase64
)

// Options controls ToObject output.
type Options struct {
	Enums EnumFormat
	Longs LongFormat
	Bytes BytesFormat

	// Defaults writes unset scalars, lists and maps with their zero value.
	// Message fields and oneof members are never defaulted.
	Defaults bool
	// Arrays writes empty lists as [] even without Defaults.
	Arrays bool
	// Objects writes empty maps as {} even without Defaults.
	Objects bool
	// Oneofs adds a key per set oneof naming the member that is set.
	Oneofs bool
	// JSON writes NaN and infinities as strings.
	JSON bool
	// UseProtoNames keys fields by their .proto name instead of lowerCamel.
	UseProtoNames bool
}

// JSONOptions is the preset behind a message's toJSON view: enum names,
// int64 as decimal strings, bytes as base64.
var JSONOptions = Options{
	Enums: EnumsAsStrings,
	Longs: LongsAsStrings,
	Bytes: BytesAsBase64,
	JSON:  true,
}

func fieldKey(fd protoreflect.FieldDescriptor, protoNames bool) string {
	if protoNames {
		return string(fd.Name())
	}
	return fd.JSONName()
}

func oneofKey(od protoreflect.OneofDescriptor, protoNames bool) string {
	if protoNames {
		return string(od.Name())
	}
	return lowerCamel(string(od.Name()))
}

// lookup finds a field by lowerCamel name first, then by .proto name.
func lookup(obj map[string]any, fd protoreflect.FieldDescriptor) (any, bool) {
	if v, ok := obj[fd.JSONName()]; ok {
		return v, true
	}
	v, ok := obj[string(fd.Name())]
	return v, ok
}

func lowerCamel(name string) string {
	var b strings.Builder
	upper := false
	for _, r := range name {
		if r == '_' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
