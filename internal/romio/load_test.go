package romio_test

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/joserochadev/emuchan-go/internal/romio"
)

func TestLoadPassthroughGB(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.gb")
	want := []byte{0x00, 0xC3, 0x50, 0x01}
	if err := os.WriteFile(path, want, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := romio.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load(%s) = %v, want %v", path, got, want)
	}
}

func TestLoadDecompressesGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.gz")
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	gw.Write(want)
	gw.Close()
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := romio.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load(%s) = %v, want %v", path, got, want)
	}
}

func TestLoadDecompressesZipFirstEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.zip")
	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("game.gb")
	if err != nil {
		t.Fatal(err)
	}
	f.Write(want)
	zw.Close()
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := romio.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load(%s) = %v, want %v", path, got, want)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := romio.Load("/nonexistent/path/game.gb")
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}
