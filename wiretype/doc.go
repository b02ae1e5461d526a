// Package wiretype provides a small runtime type-descriptor framework used
// to describe and serialize the heterogeneous payloads relation blocks
// contribute to a proof's shared claim/response tapes.
//
// A Type describes the shape of a payload slot — a scalar, a group element,
// a fixed-size array of one inner type, an ordered composite of distinct
// named parts, or nothing at all. A Value is a concrete instance of some
// Type: it knows how to serialize itself to and parse itself from a byte
// stream in the library's canonical wire format (a 4-byte big-endian length
// prefix followed by the element's canonical encoding, for every scalar and
// group element; composites and arrays are the concatenation of their parts
// in declaration order).
package wiretype
