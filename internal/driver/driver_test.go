package driver_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorskim/huffarc/internal/driver"
	"github.com/gorskim/huffarc/internal/errs"
	_ "github.com/gorskim/huffarc/internal/huffman"
)

func TestRun_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	artifact := filepath.Join(dir, "out.huf")
	restored := filepath.Join(dir, "restored.txt")

	content := []byte("mississippi river banks freeze in december")
	if err := os.WriteFile(in, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := driver.Run(driver.Options{Input: in, Output: artifact, Encode: true, CodecID: "huf"}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := driver.Run(driver.Options{Input: artifact, Output: restored, Encode: false, CodecID: "huf"}); err != nil {
		t.Fatalf("decode: %v", err)
	}

	got, err := os.ReadFile(restored)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("got %q, want %q", got, content)
	}
}

func TestRun_FolderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	srcTree := filepath.Join(dir, "tree")
	if err := os.MkdirAll(filepath.Join(srcTree, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(srcTree, "a.txt"), []byte("alpha"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(srcTree, "sub", "b.txt"), []byte("beta"), 0o644); err != nil {
		t.Fatal(err)
	}

	artifact := filepath.Join(dir, "tree.huf")
	outParent := filepath.Join(dir, "restored")

	if err := driver.Run(driver.Options{Input: srcTree, Output: artifact, Encode: true, IsFolder: true, CodecID: "huf"}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := driver.Run(driver.Options{Input: artifact, Output: outParent, Encode: false, IsFolder: true, CodecID: "huf"}); err != nil {
		t.Fatalf("decode: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(outParent, "tree", "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "alpha" {
		t.Fatalf("a.txt = %q, want %q", got, "alpha")
	}
	got, err = os.ReadFile(filepath.Join(outParent, "tree", "sub", "b.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "beta" {
		t.Fatalf("b.txt = %q, want %q", got, "beta")
	}
}

func TestRun_MissingInput(t *testing.T) {
	err := driver.Run(driver.Options{CodecID: "huf", Encode: true})
	if !errors.Is(err, errs.MissingInput) {
		t.Fatalf("got %v, want MissingInput", err)
	}
}

func TestRun_UnknownCodec(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(in, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := driver.Run(driver.Options{Input: in, Output: filepath.Join(dir, "out"), Encode: true, CodecID: "bogus"})
	if err == nil {
		t.Fatalf("expected an error for an unknown codec id")
	}
}
