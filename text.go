package exifer

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
)

// Text returns the payload of entry as a display string
//
// payloads are nominally 7-bit ASCII but producers routinely write Latin-1, so bytes are
// decoded as ISO-8859-1. UserComment payloads have their character code prefix removed
func (e TagEntry) Text(b *Buffer) string {
	raw, ok := b.Slice(e.Data)
	if !ok {
		return ""
	}
	if e.Type == TypeUserComment && len(raw) > commentCodeSize && isCharacterCode(raw[:commentCodeSize]) {
		raw = raw[commentCodeSize:]
	}
	return stringed(raw)
}

var characterCodes = [][]byte{
	[]byte("ASCII\x00\x00\x00"),
	[]byte("UNICODE\x00"),
	[]byte("JIS\x00\x00\x00\x00\x00"),
}

func isCharacterCode(prefix []byte) bool {
	for _, code := range characterCodes {
		if bytes.Equal(prefix, code) {
			return true
		}
	}
	return false
}

func stringed(raw []byte) string {
	raw = bytes.TrimRight(raw, "\x00 ")
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(s)
}
