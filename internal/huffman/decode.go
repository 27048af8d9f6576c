package huffman

import (
	"fmt"
	"strings"

	"github.com/gorskim/huffarc/internal/bitio"
	"github.com/gorskim/huffarc/internal/errs"
)

// decode implements spec.md §4.4. It never reconstructs a tree — the
// code->symbol map parsed from the header is sufficient because codes
// are prefix-free.
//
// The read-a-bit / check-the-map / then-check-termination ordering
// below is deliberate: it mirrors the original implementation's loop
// (see SPEC_FULL.md) exactly, including checking the bits-to-trim
// termination condition only *after* advancing past the bit just read.
// Reordering this — checking termination before reading — silently
// drops or duplicates the final payload bit whenever bits_to_trim is
// nonzero. A bits_to_trim of 0 means the payload fills its final byte,
// so the loop then reads through the end of the buffer. A value above 7
// can never be reached by the cursor and is rejected as malformed.
func decode(data []byte) ([]byte, error) {
	r := bitio.NewReader(data)

	table, bitsToTrim, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	if bitsToTrim > 7 {
		return nil, fmt.Errorf("%w: bits_to_trim %d leaves the stream unterminated", errs.MalformedStream, bitsToTrim)
	}

	lastByteIdx := len(data) - 1

	var out []byte
	var cur strings.Builder

	for !r.Done() {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.MalformedStream, err)
		}
		if bit != 0 {
			cur.WriteByte('1')
		} else {
			cur.WriteByte('0')
		}

		if sym, ok := table[cur.String()]; ok {
			out = append(out, sym)
			cur.Reset()
		}

		byteIdx, bitIdx := r.Pos()
		if bitsToTrim != 0 && byteIdx == lastByteIdx && bitIdx >= bitsToTrim {
			break
		}
	}

	if cur.Len() != 0 {
		return nil, fmt.Errorf("%w: unmatched code prefix %q at end of stream", errs.MalformedStream, cur.String())
	}

	return out, nil
}
