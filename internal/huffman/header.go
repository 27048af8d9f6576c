package huffman

import (
	"fmt"

	"github.com/gorskim/huffarc/internal/bitio"
	"github.com/gorskim/huffarc/internal/errs"
)

// maxTableEntries is the header's 16-bit symbol-count ceiling
// (spec.md §3): "up to 65,536 distinct symbols are representable;
// emitting a table with more than 65,536 entries is a hard error."
const maxTableEntries = 65536

// encodeHeader writes the spec.md §4.3 header — bits-to-trim placeholder,
// 16-bit symbol count, then one (symbol, length, code) entry per table
// row, in ascending symbol order for determinism — into w. The
// placeholder at byte 0 is left as 0; the caller patches it in once the
// full stream (header + payload) has been written and the true trim
// count is known.
func encodeHeader(w *bitio.Writer, codes map[byte]string) error {
	if len(codes) > maxTableEntries {
		return errs.TableOverflow
	}

	w.WriteByteBits(0) // bits_to_trim placeholder, patched by the caller
	count := len(codes)
	w.WriteByteBits(byte(count))
	w.WriteByteBits(byte(count >> 8))

	for _, sym := range sortedCodeSymbols(codes) {
		code := codes[sym]
		if len(code) == 0 || len(code) > 255 {
			return fmt.Errorf("huffarc: code for symbol %d has invalid length %d", sym, len(code))
		}
		w.WriteByteBits(sym)
		w.WriteByteBits(byte(len(code)))
		w.WriteCode(code)
	}
	return nil
}

// decodeHeader parses the header spec.md §4.4 describes, returning the
// code->symbol lookup table the decoder needs and the bits-to-trim
// value stored in byte 0.
func decodeHeader(r *bitio.Reader) (table map[string]byte, bitsToTrim int, err error) {
	if r.Len() < 3 {
		return nil, 0, fmt.Errorf("%w: header shorter than 3 bytes", errs.MalformedStream)
	}

	trimByte, err := r.ReadByteBits()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", errs.MalformedStream, err)
	}
	lo, err := r.ReadByteBits()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", errs.MalformedStream, err)
	}
	hi, err := r.ReadByteBits()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", errs.MalformedStream, err)
	}

	count := int(lo) | int(hi)<<8
	table = make(map[string]byte, count)

	for i := 0; i < count; i++ {
		sym, err := r.ReadByteBits()
		if err != nil {
			return nil, 0, fmt.Errorf("%w: truncated before symbol %d/%d", errs.MalformedStream, i, count)
		}
		length, err := r.ReadByteBits()
		if err != nil {
			return nil, 0, fmt.Errorf("%w: truncated before code length for entry %d", errs.MalformedStream, i)
		}
		if length == 0 {
			return nil, 0, fmt.Errorf("%w: zero-length code for symbol %d", errs.MalformedStream, sym)
		}
		code, err := r.ReadCodeBits(int(length))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: truncated code bits for entry %d", errs.MalformedStream, i)
		}
		table[code] = sym
	}

	return table, int(trimByte), nil
}
