// Package codec defines the abstract contract every compression backend
// implements (spec.md §4.1) and a small self-registration registry, in
// the same spirit as the standard library's image.RegisterFormat: a
// codec package imports codec and calls Register from its own init(),
// so the driver can dispatch by id without importing every codec's
// concrete type.
package codec

import "fmt"

// Codec is the pluggable compression backend contract. Encode is total
// over any finite byte sequence, including empty input. Decode is
// partial: it returns an error when its input cannot be parsed as a
// stream of that codec.
type Codec interface {
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}

var registry = map[string]Codec{}

// Register associates a codec id (as passed to the driver's -m flag)
// with a concrete Codec. It is meant to be called from a codec
// package's init().
func Register(id string, c Codec) {
	registry[id] = c
}

// Lookup returns the codec registered under id, or an error naming the
// id if none is registered.
func Lookup(id string) (Codec, error) {
	c, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("huffarc: unknown codec %q", id)
	}
	return c, nil
}
