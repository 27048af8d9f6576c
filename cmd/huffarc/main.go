// Command huffarc compresses and decompresses files and directory
// trees through a pluggable codec.
//
// Usage:
//
//	huffarc -i <path> [-o <path>] [-E|-D] [-f] [-m <codec>]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gorskim/huffarc"
)

func main() {
	fs := flag.NewFlagSet("huffarc", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	input := fs.String("i", "", "input path (required)")
	output := fs.String("o", "", "output path")
	_ = fs.Bool("E", false, "encoding mode (default, implied unless -D is given)")
	decodeFlag := fs.Bool("D", false, "decoding mode")
	isFolder := fs.Bool("f", false, "treat input/output as a directory tree")
	codecID := fs.String("m", "huf", "codec identifier")
	help := fs.Bool("h", false, "print help and exit")
	fs.BoolVar(help, "help", false, "print help and exit")
	fs.BoolVar(help, "man", false, "print help and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if *help {
		printUsage()
		os.Exit(0)
	}

	opts := huffarc.Options{
		Input:    *input,
		Output:   *output,
		Encode:   !*decodeFlag,
		IsFolder: *isFolder,
		CodecID:  *codecID,
	}
	if err := huffarc.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "huffarc: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  huffarc -i <path> [-o <path>] [-E|-D] [-f] [-m <codec>]

Flags:
  -i path     input path (required)
  -o path     output path
  -E          encoding mode (default)
  -D          decoding mode
  -f          treat input/output as a directory tree
  -m id       codec identifier (default "huf")
  -h, -help, -man   print this message
`)
}
