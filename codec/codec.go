// Package codec provides pluggable (de)serialization of values to bytes for
// storage and transport. Geometry is the domain codec: it maps coordinate
// sequences to the encoded-polyline ASCII form. The generic codecs (JSON,
// CBOR, Msgpack, Protobuf) cover everything else callers persist alongside
// geometries - route solutions, analysis reports, arbitrary metadata.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
