// Package zstdcodec wires github.com/klauspost/compress/zstd into the
// codec registry under id "zst". It exists to demonstrate that the
// Codec interface (spec.md §4.1) is a real pluggable boundary and not
// a one-implementation shim — see SPEC_FULL.md's DOMAIN STACK section
// for why this particular library was the one plausible candidate
// surfaced by the retrieval pack.
//
// Unlike the Huffman codec, zstd's own container format already carries
// everything it needs to decode itself, so this adapter is a thin shim
// over the library's one-shot buffer API rather than a bitstream
// implementation of its own.
package zstdcodec

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/gorskim/huffarc/internal/codec"
)

func init() {
	codec.Register("zst", Codec{})
}

// Codec adapts klauspost/compress/zstd's EncodeAll/DecodeAll to the
// codec.Codec interface.
type Codec struct{}

// Encode implements codec.Codec.
func (Codec) Encode(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("huffarc: zst: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, make([]byte, 0, len(data))), nil
}

// Decode implements codec.Codec.
func (Codec) Decode(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("huffarc: zst: %w", err)
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("huffarc: zst: %w", err)
	}
	return out, nil
}
