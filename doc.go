// Package polyline implements the encoded-polyline format used by mapping and
// routing APIs: a sequence of geographic coordinates packed into a single
// printable ASCII string via delta + zigzag + 5-bit chunk encoding at a fixed
// 1e5 scale.
//
// Components:
//   - Decode / Encode: the codec itself. Pure functions, safe for concurrent use.
//   - IsValidEncoding: cheap character-class pre-filter (no parse attempt).
//   - codec: pluggable value serialization (JSON, CBOR, msgpack, protobuf,
//     and Geometry - the polyline string itself as a byte codec).
//   - shapecache: read-through memoization of decoded geometries over a
//     pluggable byte store (Ristretto, BigCache).
//   - geo, vrp: distance/bounds helpers and route-solution analysis built on
//     decoded geometries.
//
// Axis order is [longitude, latitude] throughout, matching geographic-JSON
// convention. A string that passes IsValidEncoding may still fail Decode if
// its final value is truncated mid-chunk; Decode reports that as ErrTruncated.
package polyline
