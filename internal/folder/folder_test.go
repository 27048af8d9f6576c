package folder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorskim/huffarc/internal/errs"
)

// S4 — folder with one file.
func TestEncode_SingleFile(t *testing.T) {
	root := &Node{
		Name: "dir",
		Dir:  true,
		Children: []*Node{
			{Name: "hello.txt", Data: []byte("Hi!")},
		},
	}
	buf := Encode(root)

	if !bytes.HasPrefix(buf, []byte("dir\\*")) {
		t.Fatalf("expected buffer to start with %q, got %q", "dir\\*", buf[:min(len(buf), 10)])
	}
	outerLen := binary.LittleEndian.Uint64(buf[5:13])

	inner := buf[13:]
	if !bytes.HasPrefix(inner, []byte("hello.txt*")) {
		t.Fatalf("expected inner entry to start with %q, got %q", "hello.txt*", inner[:min(len(inner), 12)])
	}
	innerLen := binary.LittleEndian.Uint64(inner[10:18])
	if innerLen != 3 {
		t.Fatalf("inner length = %d, want 3", innerLen)
	}
	payload := inner[18 : 18+innerLen]
	if string(payload) != "Hi!" {
		t.Fatalf("payload = %q, want %q", payload, "Hi!")
	}
	if outerLen != uint64(len(inner)) {
		t.Fatalf("outer length = %d, want %d", outerLen, len(inner))
	}

	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	assertTreeEqual(t, root, decoded)
}

// S5 — nested folder.
func TestEncodeDecode_Nested(t *testing.T) {
	root := &Node{
		Name: "a",
		Dir:  true,
		Children: []*Node{
			{
				Name: "b",
				Dir:  true,
				Children: []*Node{
					{Name: "c.bin", Data: []byte{0x00, 0x01, 0x02}},
				},
			},
		},
	}
	buf := Encode(root)
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	assertTreeEqual(t, root, decoded)
}

// A literal '*' inside a file payload must not be mistaken for an entry
// boundary: the decoder must skip strictly by declared length.
func TestEncodeDecode_PayloadContainsAsterisk(t *testing.T) {
	root := &Node{
		Name: "d",
		Dir:  true,
		Children: []*Node{
			{Name: "weird.bin", Data: []byte("pre*fix*00000000trailing")},
			{Name: "after.txt", Data: []byte("ok")},
		},
	}
	buf := Encode(root)
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	assertTreeEqual(t, root, decoded)
}

func TestDecode_MissingSeparator(t *testing.T) {
	_, err := Decode([]byte("nostar"))
	if !errors.Is(err, errs.MalformedFolder) {
		t.Fatalf("got %v, want MalformedFolder", err)
	}
}

func TestDecode_TruncatedLength(t *testing.T) {
	_, err := Decode([]byte("name*123"))
	if !errors.Is(err, errs.MalformedFolder) {
		t.Fatalf("got %v, want MalformedFolder", err)
	}
}

func TestDecode_LengthExceedsBuffer(t *testing.T) {
	buf := []byte("name*")
	buf = binary.LittleEndian.AppendUint64(buf, 100)
	_, err := Decode(buf)
	if !errors.Is(err, errs.MalformedFolder) {
		t.Fatalf("got %v, want MalformedFolder", err)
	}
}

func TestFromDiskToDisk_RoundTrip(t *testing.T) {
	src := t.TempDir()
	if err := os.MkdirAll(filepath.Join(src, "tree", "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "tree", "top.txt"), []byte("top"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "tree", "sub", "nested.bin"), []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}

	root, err := FromDisk(filepath.Join(src, "tree"))
	if err != nil {
		t.Fatalf("FromDisk: %v", err)
	}
	if root.Name != "tree" || !root.Dir {
		t.Fatalf("unexpected root: %+v", root)
	}

	buf := Encode(root)
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	dst := t.TempDir()
	if err := ToDisk(dst, decoded); err != nil {
		t.Fatalf("ToDisk: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dst, "tree", "top.txt"))
	if err != nil {
		t.Fatalf("reading recreated top.txt: %v", err)
	}
	if string(got) != "top" {
		t.Fatalf("top.txt = %q, want %q", got, "top")
	}
	got, err = os.ReadFile(filepath.Join(dst, "tree", "sub", "nested.bin"))
	if err != nil {
		t.Fatalf("reading recreated nested.bin: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("nested.bin = %v, want %v", got, []byte{1, 2, 3})
	}
}

func assertTreeEqual(t *testing.T, want, got *Node) {
	t.Helper()
	if want.Name != got.Name || want.Dir != got.Dir {
		t.Fatalf("node mismatch: want %+v, got %+v", want, got)
	}
	if !want.Dir {
		if !bytes.Equal(want.Data, got.Data) {
			t.Fatalf("data mismatch for %q: want %q, got %q", want.Name, want.Data, got.Data)
		}
		return
	}
	if len(want.Children) != len(got.Children) {
		t.Fatalf("child count mismatch for %q: want %d, got %d", want.Name, len(want.Children), len(got.Children))
	}
	for i := range want.Children {
		assertTreeEqual(t, want.Children[i], got.Children[i])
	}
}
