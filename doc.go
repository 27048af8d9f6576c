// Package huffarc implements a small, pluggable file/directory
// compressor built around a from-scratch Huffman codec. In encode mode,
// Run reads a file or, recursively, a directory tree, reduces it through
// a registered Codec (the built-in "huf" Huffman codec, or the "zst"
// zstd-backed codec), and writes a single compressed artifact. In decode
// mode it reverses the process.
//
// Importing this package registers both built-in codecs; additional
// codecs register themselves the same way by importing
// internal/codec and calling codec.Register from their own init().
package huffarc

import (
	_ "github.com/gorskim/huffarc/internal/huffman"
	_ "github.com/gorskim/huffarc/internal/zstdcodec"
)
