// Package folder implements the recursive, length-prefixed directory
// serialization format of spec.md §4.5: a single directory tree folds
// down into one opaque byte buffer suitable for feeding into a Codec,
// and unfolds back into files and subdirectories on disk.
//
// The package is split into a pure, disk-independent codec (Encode/
// Decode, operating on an in-memory Node tree) and a thin pair of
// disk-facing wrappers (FromDisk/ToDisk) built on internal/fileio —
// mirroring spec.md §2's split between the folder serializer and the
// byte/bit I/O helpers it sits on top of.
package folder

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"path/filepath"

	"github.com/gorskim/huffarc/internal/errs"
	"github.com/gorskim/huffarc/internal/fileio"
)

func baseName(path string) string {
	return filepath.Base(filepath.Clean(path))
}

func joinPath(parent, name string) string {
	return filepath.Join(parent, name)
}

// Node is an in-memory folder entry (spec.md §3): either a file, with
// Data holding its payload, or a directory, with Children holding its
// entries in serialization order.
type Node struct {
	Name     string
	Dir      bool
	Data     []byte
	Children []*Node
}

// lengthFieldSize is the width, in bytes, of the little-endian length
// prefix spec.md §4.5 mandates for every entry.
const lengthFieldSize = 8

// Encode serializes root into the format spec.md §4.5 describes: each
// entry is `<name> ['\'] '*' <length:8 bytes LE> <payload>`, with a
// directory's payload being the concatenation of its children's
// entries under the same rule. root itself becomes the single
// top-level entry of the returned buffer.
func Encode(root *Node) []byte {
	var buf bytes.Buffer
	encodeNode(&buf, root)
	return buf.Bytes()
}

func encodeNode(buf *bytes.Buffer, n *Node) {
	buf.WriteString(n.Name)
	if n.Dir {
		buf.WriteByte('\\')
	}
	buf.WriteByte('*')

	lengthAt := buf.Len()
	buf.Write(make([]byte, lengthFieldSize)) // placeholder, back-patched below
	payloadStart := buf.Len()

	if n.Dir {
		for _, child := range n.Children {
			encodeNode(buf, child)
		}
	} else {
		buf.Write(n.Data)
	}

	length := uint64(buf.Len() - payloadStart)
	binary.LittleEndian.PutUint64(buf.Bytes()[lengthAt:lengthAt+lengthFieldSize], length)
}

// Decode parses a buffer produced by Encode back into its Node tree.
// It does not reconstruct the tree on disk — see ToDisk for that.
//
// Per spec.md §4.5's "Known limitation," the scan for the next entry's
// name-terminating '*' only ever runs over bytes that have not yet been
// consumed as someone else's payload: after `<name>*<length>` is read,
// decodeEntries advances exactly length bytes before it is allowed to
// look for another '*'. A payload that happens to contain a literal
// '*' is therefore never mistaken for a new entry.
func Decode(data []byte) (*Node, error) {
	nodes, err := decodeEntries(data)
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one top-level entry, found %d", errs.MalformedFolder, len(nodes))
	}
	return nodes[0], nil
}

func decodeEntries(buf []byte) ([]*Node, error) {
	var out []*Node
	i := 0
	for i < len(buf) {
		star := bytes.IndexByte(buf[i:], '*')
		if star < 0 {
			return nil, fmt.Errorf("%w: missing '*' separator", errs.MalformedFolder)
		}
		star += i

		isDir := false
		nameEnd := star
		if star > i && buf[star-1] == '\\' {
			isDir = true
			nameEnd = star - 1
		}
		name := string(buf[i:nameEnd])

		lengthStart := star + 1
		if lengthStart+lengthFieldSize > len(buf) {
			return nil, fmt.Errorf("%w: fewer than %d bytes remain after '*'", errs.MalformedFolder, lengthFieldSize)
		}
		length := binary.LittleEndian.Uint64(buf[lengthStart : lengthStart+lengthFieldSize])

		payloadStart := lengthStart + lengthFieldSize
		if length > uint64(len(buf)-payloadStart) {
			return nil, fmt.Errorf("%w: declared length %d exceeds remaining buffer", errs.MalformedFolder, length)
		}
		payloadEnd := payloadStart + int(length)
		payload := buf[payloadStart:payloadEnd]

		if isDir {
			children, err := decodeEntries(payload)
			if err != nil {
				return nil, err
			}
			out = append(out, &Node{Name: name, Dir: true, Children: children})
		} else {
			data := make([]byte, len(payload))
			copy(data, payload)
			out = append(out, &Node{Name: name, Data: data})
		}

		i = payloadEnd // resume strictly after the payload just consumed
	}
	return out, nil
}

// FromDisk walks the real directory tree rooted at path into a Node,
// using the iteration order fileio.ReadDirEntries returns (spec.md
// §4.5: "not required to be sorted").
func FromDisk(path string) (*Node, error) {
	return fromDisk(path, baseName(path))
}

func fromDisk(path, name string) (*Node, error) {
	entries, err := fileio.ReadDirEntries(path)
	if err != nil {
		return nil, err
	}

	n := &Node{Name: name, Dir: true}
	for _, e := range entries {
		if e.IsDir {
			child, err := fromDisk(e.Path, e.Name)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
			continue
		}
		data, err := fileio.ReadFile(e.Path)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, &Node{Name: e.Name, Data: data})
	}
	return n, nil
}

// ToDisk recreates a decoded tree under outputParent. Following the
// original implementation (see SPEC_FULL.md), outputParent names the
// *parent* directory: root.Name is recreated as a child of
// outputParent, keeping its own top-level name, rather than outputParent
// itself becoming the tree's root.
func ToDisk(outputParent string, root *Node) error {
	return toDisk(outputParent, root)
}

func toDisk(parent string, n *Node) error {
	path := joinPath(parent, n.Name)
	if n.Dir {
		if err := fileio.MkdirAll(path); err != nil {
			return err
		}
		for _, child := range n.Children {
			if err := toDisk(path, child); err != nil {
				return err
			}
		}
		return nil
	}
	return fileio.WriteFile(path, n.Data)
}
