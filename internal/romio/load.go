// Package romio loads a cartridge image from disk, transparently
// unwrapping the single-file archive formats that ROM dumps commonly
// circulate in.
package romio

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// Load reads filename and returns the raw cartridge image, transparently
// decompressing .zip, .7z, and .gz containers that wrap a single ROM
// file. .gb/.gbc files pass through untouched.
func Load(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("romio: reading %s: %w", filename, err)
	}

	switch filepath.Ext(filename) {
	case ".gb", ".gbc":
		return data, nil
	case ".gz":
		return decompressGzip(data)
	case ".zip":
		return decompressZip(data)
	case ".7z":
		return decompress7z(data)
	default:
		return data, nil
	}
}

func decompressGzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("romio: opening gzip stream: %w", err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("romio: reading gzip stream: %w", err)
	}
	return out, nil
}

func decompressZip(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("romio: opening zip archive: %w", err)
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("romio: zip archive is empty")
	}
	f, err := r.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("romio: opening zip entry %s: %w", r.File[0].Name, err)
	}
	defer f.Close()
	out, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("romio: reading zip entry %s: %w", r.File[0].Name, err)
	}
	return out, nil
}

func decompress7z(data []byte) ([]byte, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("romio: opening 7z archive: %w", err)
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("romio: 7z archive is empty")
	}
	f, err := r.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("romio: opening 7z entry %s: %w", r.File[0].Name, err)
	}
	defer f.Close()
	out, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("romio: reading 7z entry %s: %w", r.File[0].Name, err)
	}
	return out, nil
}
