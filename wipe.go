package exifer

import (
	"crypto/rand"
	"fmt"
	"io"
)

// WipePasses is the number of random-byte passes made before the final zero pass
const WipePasses = 8

// Wipe overwrites the range with WipePasses random byte values and finally with zeros
//
// the range must be non-empty and lie within the buffer - ranges produced by Resolve always
// do. Any other range is a programming error and panics
func Wipe(b *Buffer, r Range) error {
	return WipeWith(b, r, rand.Reader)
}

// WipeWith is Wipe with the supplied entropy source
//
// each pass reads one byte from entropy and fills the whole range with it
func WipeWith(b *Buffer, r Range, entropy io.Reader) error {
	data, ok := b.Slice(r)
	if !ok || r.Start >= r.End {
		panic(fmt.Sprintf("wipe: invalid range [%d, %d) for buffer of length %d", r.Start, r.End, b.Len()))
	}
	var pass [1]byte
	for i := 0; i < WipePasses; i++ {
		if _, err := io.ReadFull(entropy, pass[:]); err != nil {
			fill(data, 0)
			return fmt.Errorf("wipe pass %d: failed to read entropy: %w", i+1, err)
		}
		fill(data, pass[0])
	}
	fill(data, 0)
	return nil
}

func fill(data []byte, v byte) {
	for i := range data {
		data[i] = v
	}
}
