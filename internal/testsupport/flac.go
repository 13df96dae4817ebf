package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// StreamBlock is one synthetic metadata block for BuildStream.
type StreamBlock struct {
	Type    byte
	Payload []byte
	Last    bool
}

// VorbisCommentBlock builds a minimal VORBIS_COMMENT payload carrying the
// given vendor string and zero user comment fields.
func VorbisCommentBlock(vendor string, last bool) StreamBlock {
	var payload bytes.Buffer
	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(vendor)))
	payload.Write(length[:])
	payload.WriteString(vendor)
	binary.LittleEndian.PutUint32(length[:], 0)
	payload.Write(length[:])
	return StreamBlock{Type: 4, Payload: payload.Bytes(), Last: last}
}

// PaddingBlock builds a zero-filled metadata block of the given size.
func PaddingBlock(size int, last bool) StreamBlock {
	return StreamBlock{Type: 1, Payload: make([]byte, size), Last: last}
}

// BuildStream assembles a byte sequence with the fLaC marker followed by the
// provided metadata blocks. It does not append audio frames; readers under
// test stop at the metadata boundary.
func BuildStream(blocks ...StreamBlock) []byte {
	var buf bytes.Buffer
	buf.WriteString("fLaC")
	for _, block := range blocks {
		header := block.Type & 0x7f
		if block.Last {
			header |= 0x80
		}
		buf.WriteByte(header)
		length := len(block.Payload)
		buf.WriteByte(byte(length >> 16))
		buf.WriteByte(byte(length >> 8))
		buf.WriteByte(byte(length))
		buf.Write(block.Payload)
	}
	return buf.Bytes()
}

// WriteFLAC writes a synthetic FLAC file whose vendor string is the given
// text, padded with extraBytes of trailing zeros to control the file size.
func WriteFLAC(t testing.TB, path, vendor string, extraBytes int) {
	t.Helper()

	data := BuildStream(
		PaddingBlock(16, false),
		VorbisCommentBlock(vendor, true),
	)
	if extraBytes > 0 {
		data = append(data, make([]byte, extraBytes)...)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
