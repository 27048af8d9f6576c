package huffarc

import "github.com/gorskim/huffarc/internal/driver"

// Options configures a single Run call. It mirrors the command-line
// surface of spec.md §6 one field per flag.
type Options struct {
	Input    string
	Output   string
	Encode   bool
	IsFolder bool
	CodecID  string
}

// Run executes one encode or decode operation: read from Input (a
// file, or with IsFolder set, a directory tree), pass the bytes
// through the codec named by CodecID, and write the result to Output.
func Run(opts Options) error {
	return driver.Run(driver.Options(opts))
}
