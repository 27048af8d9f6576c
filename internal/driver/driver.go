// Package driver wires the codec registry, the folder serializer, and
// the file I/O helpers together into the single end-to-end operation
// spec.md §4.6 describes: pick a source, pick a sink, run one codec
// transform in between.
package driver

import (
	"fmt"

	"github.com/gorskim/huffarc/internal/codec"
	"github.com/gorskim/huffarc/internal/errs"
	"github.com/gorskim/huffarc/internal/fileio"
	"github.com/gorskim/huffarc/internal/folder"
)

// Options configures a single Run call. It mirrors the command-line
// surface of spec.md §6 one field per flag.
type Options struct {
	Input    string // -i, required
	Output   string // -o
	Encode   bool   // -E (true) / -D (false)
	IsFolder bool   // -f
	CodecID  string // -m
}

// Run executes one encode or decode operation per Options.
func Run(opts Options) error {
	if opts.Input == "" {
		return fmt.Errorf("%w: -i is required", errs.MissingInput)
	}

	c, err := codec.Lookup(opts.CodecID)
	if err != nil {
		return err
	}

	if opts.Encode {
		return runEncode(opts, c)
	}
	return runDecode(opts, c)
}

func runEncode(opts Options, c codec.Codec) error {
	var plain []byte
	var err error

	if opts.IsFolder {
		root, ferr := folder.FromDisk(opts.Input)
		if ferr != nil {
			return ferr
		}
		plain = folder.Encode(root)
	} else {
		plain, err = fileio.ReadFile(opts.Input)
		if err != nil {
			return err
		}
	}

	out, err := c.Encode(plain)
	if err != nil {
		return err
	}
	return fileio.WriteFile(opts.Output, out)
}

func runDecode(opts Options, c codec.Codec) error {
	artifact, err := fileio.ReadFile(opts.Input)
	if err != nil {
		return err
	}

	plain, err := c.Decode(artifact)
	if err != nil {
		return err
	}

	if !opts.IsFolder {
		return fileio.WriteFile(opts.Output, plain)
	}

	root, err := folder.Decode(plain)
	if err != nil {
		return err
	}
	return folder.ToDisk(opts.Output, root)
}
