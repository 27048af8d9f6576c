// Package errs defines the error kinds shared across huffarc's codecs,
// folder serializer, and driver (spec.md §7). They live in their own
// leaf package, with no dependency on anything else in the module, so
// that both the low-level packages that raise them and the top-level
// huffarc package that re-exports them can import a single definition
// without an import cycle.
package errs

import "errors"

var (
	// IoUnavailable means an input file or directory could not be
	// opened, or an output file could not be created or written.
	IoUnavailable = errors.New("huffarc: io unavailable")

	// MalformedStream means a Huffman bitstream's header could not be
	// parsed, or its payload contains an unmatched code prefix, or its
	// declared bits-to-trim would leave it unterminated.
	MalformedStream = errors.New("huffarc: malformed stream")

	// MalformedFolder means a serialized folder buffer's length field
	// reads past the end of the buffer, a name/length separator is
	// missing, or a recursion is otherwise inconsistent.
	MalformedFolder = errors.New("huffarc: malformed folder")

	// TableOverflow means a Huffman code table would need more than
	// 65536 entries to describe, exceeding the header's 16-bit count
	// field.
	TableOverflow = errors.New("huffarc: code table overflow")

	// MissingInput means the driver was invoked without an input path.
	MissingInput = errors.New("huffarc: missing input path")
)
