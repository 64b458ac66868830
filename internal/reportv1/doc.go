// Package reportv1 holds the Go bindings for shotdiff/report/v1/report.proto,
// the report schema of the screenshot-diff tool.
//
// Every message is a plain struct with nil-safe getters and the same set of
// operations: Marshal/Unmarshal for the protobuf wire format,
// MarshalJSON/UnmarshalJSON for canonical protobuf JSON, and
// ToObject/FromObject for generic map[string]any values. Verify checks a
// plain object against a message schema before it is converted.
//
// The codecs run on dynamicpb messages built from a descriptor that mirrors
// report.proto, so wire and JSON behavior is that of the protobuf runtime:
// unknown fields are skipped on decode, unknown enum numbers are kept, and
// output is deterministic.
package reportv1
