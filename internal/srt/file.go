package srt

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"subfix/internal/textutil"
	"subfix/internal/timeline"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile loads and parses an SRT file. The byte stream is decoded by BOM
// sniffing: UTF-8 and UTF-16 (either byte order) are honored, and bytes that
// are not valid UTF-8 fall back to Windows-1252, the most common legacy
// encoding for subtitle files in the wild.
func ReadFile(path string, limits timeline.Limits) (timeline.Document, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return timeline.Document{}, nil, fmt.Errorf("read srt: %w", err)
	}
	text, err := decode(data)
	if err != nil {
		return timeline.Document{}, nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	doc, warnings := Parse(text, limits)
	for i := range doc.Segments {
		doc.Segments[i].SourceFile = filepath.Base(path)
	}
	return doc, warnings, nil
}

func decode(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		return string(data[len(utf8BOM):]), nil
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}), bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		decoded, err := decoder.Bytes(data)
		if err != nil {
			return "", fmt.Errorf("utf-16: %w", err)
		}
		return string(decoded), nil
	case utf8.Valid(data):
		return string(data), nil
	default:
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("windows-1252: %w", err)
		}
		return string(decoded), nil
	}
}

// WriteFile serializes the document to path, prefixed with a UTF-8 BOM for
// player compatibility.
func WriteFile(path string, doc timeline.Document) error {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	buf.WriteString(Serialize(doc))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}

// EditedName derives the output filename for a corrected copy of path:
// the same location and extension with an "_edited" suffix on the stem.
func EditedName(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := textutil.SanitizeFileName(strings.TrimSuffix(base, ext))
	if ext == "" {
		ext = ".srt"
	}
	return filepath.Join(dir, stem+"_edited"+ext)
}
