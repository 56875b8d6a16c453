package storage

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilhale/sitestore/pkg/domain"
)

func TestBlobHeader_WriteAndRead(t *testing.T) {
	// Test writing header
	var buf bytes.Buffer
	err := WriteHeader(&buf, 0)
	require.NoError(t, err)

	// Verify header was written
	data := buf.Bytes()
	assert.Len(t, data, 8) // 4 bytes magic + 1 byte version + 1 byte flags + 2 bytes reserved

	// Test reading header
	header, err := ReadHeader(&buf)
	require.NoError(t, err)

	// Verify header contents
	assert.Equal(t, MagicBytes, string(header.Magic[:]))
	assert.EqualValues(t, FormatVersion, header.Version)
	assert.Equal(t, uint8(0), header.Flags)
}

func TestBlobHeader_InvalidMagic(t *testing.T) {
	var buf bytes.Buffer
	invalidHeader := BlobHeader{
		Magic:   [4]byte{'I', 'N', 'V', 'L'},
		Version: FormatVersion,
	}

	err := binary.Write(&buf, binary.LittleEndian, invalidHeader)
	require.NoError(t, err)

	_, err = ReadHeader(&buf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid blob format")
}

func TestBlobHeader_InvalidVersion(t *testing.T) {
	var buf bytes.Buffer
	invalidHeader := BlobHeader{
		Magic:   [4]byte{'L', 'H', 'L', 'D'},
		Version: 99,
	}

	err := binary.Write(&buf, binary.LittleEndian, invalidHeader)
	require.NoError(t, err)

	_, err = ReadHeader(&buf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported blob version")
}

func TestCodec_RoundTrip(t *testing.T) {
	doc := domain.NewDocument()
	doc.Settings = defaultSettings()
	doc.Collections["courses"] = []domain.Record{
		{"id": "a", "title": "Tiny Explorers", "capacity": 10},
		{"id": "b", "title": "Story Seedlings", "capacity": 12},
	}

	blob, err := encodeDocument(doc)
	require.NoError(t, err)

	decoded, err := decodeDocument(blob)
	require.NoError(t, err)

	assert.Equal(t, doc.Settings, decoded.Settings)
	require.Len(t, decoded.Collections["courses"], 2)
	assert.Equal(t, "a", decoded.Collections["courses"][0].ID())
	assert.Equal(t, "Tiny Explorers", decoded.Collections["courses"][0]["title"])
	assert.EqualValues(t, 12, decoded.Collections["courses"][1]["capacity"])
}

func TestCodec_EmptyDocument(t *testing.T) {
	blob, err := encodeDocument(domain.NewDocument())
	require.NoError(t, err)

	decoded, err := decodeDocument(blob)
	require.NoError(t, err)
	assert.NotNil(t, decoded.Collections)
	assert.Empty(t, decoded.Collections)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := decodeDocument([]byte("definitely not a blob"))
	assert.Error(t, err)
}

func TestDecode_Truncated(t *testing.T) {
	doc := domain.NewDocument()
	doc.Collections["gallery"] = []domain.Record{{"id": "x", "caption": "pic"}}
	blob, err := encodeDocument(doc)
	require.NoError(t, err)

	_, err = decodeDocument(blob[:len(blob)/2])
	assert.Error(t, err)
}
