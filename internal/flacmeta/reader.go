// Package flacmeta extracts the encoder vendor string from FLAC files.
//
// Only the minimal slice of the stream format needed to locate the first
// VORBIS_COMMENT block is implemented: the fLaC marker, the metadata block
// header walk, and the length-prefixed vendor field. Audio frames are never
// touched; unrelated metadata blocks are seeked over rather than read.
// Reference: https://xiph.org/flac/format.html#stream
package flacmeta

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	streamMarker = "fLaC"

	// blockVorbisComment is the metadata block type carrying the vendor
	// string as its first field.
	blockVorbisComment = 4

	// lastBlockFlag is the top bit of the block header's first byte.
	lastBlockFlag = 0x80
)

// FormatError reports a file that does not carry the FLAC stream marker or
// whose metadata section is structurally broken.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("not a recognized FLAC stream: %s (%s)", e.Path, e.Reason)
}

// IsFormatError reports whether err is a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// ReadVendorString returns the vendor string from the first VORBIS_COMMENT
// block of the file at path. A well-formed stream without a comment block
// yields an empty string and no error. Unreadable or truncated files return
// the underlying IO error; files without the stream marker return a
// FormatError.
func ReadVendorString(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var marker [4]byte
	if _, err := io.ReadFull(file, marker[:]); err != nil {
		return "", &FormatError{Path: path, Reason: "missing stream marker"}
	}
	if string(marker[:]) != streamMarker {
		return "", &FormatError{Path: path, Reason: "missing stream marker"}
	}

	for {
		var header [4]byte
		if _, err := io.ReadFull(file, header[:]); err != nil {
			return "", fmt.Errorf("read block header %s: %w", path, err)
		}

		last := header[0]&lastBlockFlag != 0
		blockType := int(header[0] &^ lastBlockFlag)
		blockLength := int64(header[1])<<16 | int64(header[2])<<8 | int64(header[3])

		if blockType == blockVorbisComment {
			return readVendorField(file, path)
		}

		// Seek past payloads of unrelated blocks instead of reading them.
		if _, err := file.Seek(blockLength, io.SeekCurrent); err != nil {
			return "", fmt.Errorf("seek block payload %s: %w", path, err)
		}
		if last {
			return "", nil
		}
	}
}

// readVendorField decodes the length-prefixed vendor string that opens a
// VORBIS_COMMENT payload. The rest of the block is ignored.
func readVendorField(r io.Reader, path string) (string, error) {
	var lengthBuf [4]byte
	if _, err := io.ReadFull(r, lengthBuf[:]); err != nil {
		return "", fmt.Errorf("read vendor length %s: %w", path, err)
	}
	vendorLength := binary.LittleEndian.Uint32(lengthBuf[:])

	vendor := make([]byte, vendorLength)
	if _, err := io.ReadFull(r, vendor); err != nil {
		return "", fmt.Errorf("read vendor string %s: %w", path, err)
	}
	return decodeLossy(vendor), nil
}

// decodeLossy converts bytes to a string, replacing invalid UTF-8 sequences
// rather than failing; garbled tags are a policy concern, not a read error.
func decodeLossy(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
