package storage

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// Magic bytes to identify our blob format
	MagicBytes = "LHLD"
	// Current version
	FormatVersion = 1
)

// Flag bits carried in the header.
const (
	// FlagUncompressed marks a payload stored raw because lz4 could not
	// shrink it.
	FlagUncompressed uint8 = 1 << 0
)

// BlobHeader represents the header of a persisted document blob
type BlobHeader struct {
	Magic    [4]byte // "LHLD"
	Version  uint8   // Format version
	Flags    uint8   // Compression flags
	Reserved [2]byte // Reserved for future use
}

// WriteHeader writes the blob header to the given writer
func WriteHeader(w io.Writer, flags uint8) error {
	header := BlobHeader{
		Magic:    [4]byte{'L', 'H', 'L', 'D'},
		Version:  FormatVersion,
		Flags:    flags,
		Reserved: [2]byte{0, 0},
	}

	return binary.Write(w, binary.LittleEndian, header)
}

// ReadHeader reads and validates the blob header
func ReadHeader(r io.Reader) (*BlobHeader, error) {
	var header BlobHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Validate magic bytes
	if string(header.Magic[:]) != MagicBytes {
		return nil, fmt.Errorf("invalid blob format: expected %s, got %s", MagicBytes, string(header.Magic[:]))
	}

	// Validate version
	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported blob version: %d", header.Version)
	}

	return &header, nil
}
