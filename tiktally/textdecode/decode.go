// Package textdecode turns raw file bytes into text, detecting the byte-level
// character encoding first. The "encoding" in this package is always a charset
// (UTF-8, UTF-16, ...), unrelated to the tokenizer encodings in package
// encoding.
package textdecode

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// UnsupportedEncodingError reports a file whose bytes could not be decoded to
// text. Encoding is the detected charset name, not a tokenizer encoding.
type UnsupportedEncodingError struct {
	Encoding string
	Path     string
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("unsupported encoding %q in file %s", e.Encoding, e.Path)
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ReadTextFile reads the file at path and decodes its contents to text.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Decode(data, path)
}

// Decode converts raw bytes to text. UTF-8 and BOM-marked UTF-16 are handled
// directly; anything else goes through charset detection and is decoded when a
// decoder for the detected charset exists. path is only used in error reports.
func Decode(data []byte, path string) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	switch {
	case bytes.HasPrefix(data, bomUTF8):
		rest := data[len(bomUTF8):]
		if utf8.Valid(rest) {
			return string(rest), nil
		}
		return "", &UnsupportedEncodingError{Encoding: "UTF-8", Path: path}
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder(), data, "UTF-16LE", path)
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder(), data, "UTF-16BE", path)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	detected := detectCharset(data)
	switch detected {
	case "UTF-16LE":
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder(), data, detected, path)
	case "UTF-16BE":
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(), data, detected, path)
	case "ISO-8859-1", "windows-1252":
		if bytes.IndexByte(data, 0) == -1 {
			return decodeWith(charmap.Windows1252.NewDecoder(), data, detected, path)
		}
	}

	return "", &UnsupportedEncodingError{Encoding: detected, Path: path}
}

// detectCharset names the most likely charset of data, or "binary" when
// detection fails entirely.
func detectCharset(data []byte) string {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil || result.Charset == "" {
		return "binary"
	}
	return result.Charset
}

func decodeWith(dec *xencoding.Decoder, data []byte, name, path string) (string, error) {
	out, err := dec.Bytes(data)
	if err != nil {
		return "", &UnsupportedEncodingError{Encoding: name, Path: path}
	}
	return string(out), nil
}
