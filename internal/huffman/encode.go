package huffman

import "github.com/gorskim/huffarc/internal/bitio"

// encode implements spec.md §4.2: tabulate weights, reduce the forest to
// a tree, extract codes, emit the header, then the bit-packed payload,
// finally patching in the true bits-to-trim count.
func encode(data []byte) ([]byte, error) {
	w := bitio.NewWriter()

	if len(data) == 0 {
		// Symmetric with decode: a header declaring zero symbols and
		// an empty payload round-trips to empty output (SPEC_FULL.md,
		// "Empty input"). encode remains total rather than erroring.
		if err := encodeHeader(w, map[byte]string{}); err != nil {
			return nil, err
		}
		return finish(w), nil
	}

	weights := make(map[byte]int)
	for _, b := range data {
		weights[b]++
	}

	root := buildTree(weights)
	codes := buildCodes(root)

	if err := encodeHeader(w, codes); err != nil {
		return nil, err
	}

	for _, b := range data {
		w.WriteCode(codes[b])
	}

	return finish(w), nil
}

// finish records the true bits-to-trim count and patches it into byte 0
// of the header before returning the complete stream.
func finish(w *bitio.Writer) []byte {
	trim := w.UsedBitsInLastByte()
	out := w.Bytes()
	out[0] = byte(trim)
	return out
}
