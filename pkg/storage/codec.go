package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lilhale/sitestore/pkg/domain"
)

// encodeDocument serializes the whole document into the persisted blob
// format: header, uncompressed payload size, then the lz4-compressed
// msgpack payload (or the raw payload when lz4 cannot shrink it).
func encodeDocument(doc *domain.Document) ([]byte, error) {
	msgpackData, err := msgpack.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode MessagePack: %w", err)
	}

	compressedData := make([]byte, lz4.CompressBlockBound(len(msgpackData)))
	var hashTable [1 << 16]int
	n, err := lz4.CompressBlock(msgpackData, compressedData, hashTable[:])
	if err != nil {
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}

	var flags uint8
	payload := compressedData[:n]
	if n == 0 {
		// Incompressible payload, store it raw
		flags |= FlagUncompressed
		payload = msgpackData
	}

	var buf bytes.Buffer
	if err := WriteHeader(&buf, flags); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(msgpackData))); err != nil {
		return nil, fmt.Errorf("failed to write payload size: %w", err)
	}
	if _, err := buf.Write(payload); err != nil {
		return nil, fmt.Errorf("failed to write payload: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeDocument parses a persisted blob back into a document.
func decodeDocument(data []byte) (*domain.Document, error) {
	reader := bytes.NewReader(data)
	header, err := ReadHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("invalid blob header: %w", err)
	}

	var rawSize uint32
	if err := binary.Read(reader, binary.LittleEndian, &rawSize); err != nil {
		return nil, fmt.Errorf("failed to read payload size: %w", err)
	}

	payload, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	msgpackData := payload
	if header.Flags&FlagUncompressed == 0 {
		decompressedData := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(payload, decompressedData)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress data: %w", err)
		}
		msgpackData = decompressedData[:n]
	}

	doc := domain.NewDocument()
	if err := msgpack.Unmarshal(msgpackData, doc); err != nil {
		return nil, fmt.Errorf("failed to decode MessagePack: %w", err)
	}
	if doc.Collections == nil {
		doc.Collections = make(map[string][]domain.Record)
	}
	return doc, nil
}
