package exifer

import (
	"fmt"
)

// TagType is the data type code of a directory entry
type TagType uint16

const (
	TypeASCII       TagType = 0x0002
	TypeShort       TagType = 0x0003
	TypeRational    TagType = 0x0005
	TypeUserComment TagType = 0x0007 // UNDEFINED - used by UserComment and MakerNote
	TypeSRational   TagType = 0x000a
)

func (t TagType) String() string {
	switch t {
	case TypeASCII:
		return "ASCII"
	case TypeShort:
		return "SHORT"
	case TypeRational:
		return "RATIONAL"
	case TypeUserComment:
		return "UNDEFINED"
	case TypeSRational:
		return "SRATIONAL"
	}
	return fmt.Sprintf("0x%04X", uint16(t))
}

// directory entry layout
const (
	entrySize         = 12
	entryTypeOffset   = 2
	entryLengthOffset = 4
	entryValueOffset  = 8
	// UserComment payloads start with an 8 byte character code, e.g. "ASCII\x00\x00\x00"
	commentCodeSize = 8
)

// TagEntry is a resolved directory entry together with the extent of its payload
type TagEntry struct {
	Position    int     // offset of the identifier within the buffer
	Type        TagType // data type code
	Length      uint32  // declared component count
	ValueOffset uint32  // payload offset, relative to the TIFF header
	Data        Range   // payload extent within the buffer
}

// ResolveOptions represents the options passed to Resolve
type ResolveOptions struct {
	// NoReswap disables the Reswap heuristic - fields are decoded strictly in the declared byte order
	NoReswap bool
}

// Reswap decodes raw in the declared byte order, unless the bytes look like they were
// written in the opposite order
//
// some producers write individual fields in the wrong byte order. A field whose declared
// least-significant byte is zero while its declared most-significant byte is not would
// be a suspiciously large value, so it is decoded in the opposite order instead.
// Legitimate values of that shape (e.g. a little-endian 0x01000000) are misread; this
// is a known limitation of the heuristic
func Reswap(raw []byte, order ByteOrder) uint32 {
	if len(raw) == 0 {
		return 0
	}
	first, last := raw[0], raw[len(raw)-1]
	lsb, msb := last, first
	if order == LittleEndian {
		lsb, msb = first, last
	}
	if lsb == 0 && msb != 0 {
		order = order.Opposite()
	}
	return decodeUint(raw, order)
}

func decodeUint(raw []byte, order ByteOrder) uint32 {
	switch len(raw) {
	case 2:
		return uint32(order.binary().Uint16(raw))
	case 4:
		return order.binary().Uint32(raw)
	}
	panic(fmt.Sprintf("decodeUint: unsupported field width %d", len(raw)))
}

// Resolve searches the segment for the directory entry starting with identifier and
// decodes it
//
// when the APP1 marker was found the search starts at the TIFF header, so the segment
// length bytes can never be mistaken for an identifier
//
// returns false when the identifier does not occur below the segment's scan limit, when
// the entry or its payload would lie outside the buffer, or when the payload is empty or
// unterminated. A TagEntry is only returned when its payload range is valid
func Resolve(b *Buffer, seg Segment, identifier [2]byte, order ByteOrder, options *ResolveOptions) (TagEntry, bool) {
	if options == nil {
		options = &ResolveOptions{}
	}
	limit := min(seg.Limit, b.Len())
	pos := b.Index(identifier[:], seg.searchStart(), limit)
	if pos < 0 {
		return TagEntry{}, false
	}
	raw, ok := b.Slice(Range{Start: pos, End: pos + entrySize})
	if !ok {
		return TagEntry{}, false
	}
	entry := TagEntry{Position: pos}
	if options.NoReswap {
		typ, _ := b.Uint16At(pos+entryTypeOffset, order)
		entry.Type = TagType(typ)
		entry.Length, _ = b.Uint32At(pos+entryLengthOffset, order)
		entry.ValueOffset, _ = b.Uint32At(pos+entryValueOffset, order)
	} else {
		entry.Type = TagType(Reswap(raw[entryTypeOffset:entryLengthOffset], order))
		entry.Length = Reswap(raw[entryLengthOffset:entryValueOffset], order)
		entry.ValueOffset = Reswap(raw[entryValueOffset:entrySize], order)
	}
	if !validOffset(b, seg, entry.ValueOffset) {
		return TagEntry{}, false
	}
	var found bool
	if entry.Data, found = payloadRange(b, seg, entry, limit); !found {
		return TagEntry{}, false
	}
	return entry, true
}

// validOffset rejects payload offsets that cannot lie within the buffer, whether
// taken relative to the block start or to the buffer start
func validOffset(b *Buffer, seg Segment, offset uint32) bool {
	if seg.Start < 0 || seg.Start > b.Len() {
		return false
	}
	size := uint64(b.Len())
	return uint64(offset) < size-uint64(seg.Start) && uint64(offset) < size
}

func payloadRange(b *Buffer, seg Segment, entry TagEntry, limit int) (Range, bool) {
	start, ok := addOffset(seg.TIFFHeader(), uint64(entry.ValueOffset))
	if !ok || start >= limit {
		return Range{}, false
	}
	var end int
	if entry.Type == TypeUserComment {
		// undefined payloads are not null terminated, the declared length is their extent
		if end, ok = addOffset(start, uint64(entry.Length)); !ok || end > limit {
			return Range{}, false
		}
	} else if end, ok = b.TerminatorAt(start, limit); !ok {
		return Range{}, false
	}
	if end <= start {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}
