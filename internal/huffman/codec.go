// Package huffman implements the Huffman codec: canonical-by-construction
// code table derived from a per-call frequency tree (spec.md §3–§4),
// a self-describing bit-packed header, and an LSB-first bit-packed
// payload. It registers itself under codec id "huf" the same way the
// teacher package wires a format into the standard image registry from
// an init() function (see webp.go's image.RegisterFormat call).
package huffman

import "github.com/gorskim/huffarc/internal/codec"

func init() {
	codec.Register("huf", Codec{})
}

// Codec adapts the package-level encode/decode functions to the
// codec.Codec interface (spec.md §4.1). It holds no state: the tree,
// weight table, and code table are all local to a single call.
type Codec struct{}

// Encode implements codec.Codec.
func (Codec) Encode(data []byte) ([]byte, error) {
	return encode(data)
}

// Decode implements codec.Codec.
func (Codec) Decode(data []byte) ([]byte, error) {
	return decode(data)
}
